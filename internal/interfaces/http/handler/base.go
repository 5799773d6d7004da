package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/domain/shared"
	"github.com/vyapar/backend/internal/infrastructure/logger"
	"github.com/vyapar/backend/internal/interfaces/http/dto"
	"github.com/vyapar/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// ValidationError sends a 400 validation error response with details
func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		middleware.GetRequestID(c),
		details,
	))
}

// HandleError writes a DomainError with its mapped status. Anything else is
// logged and answered with a 500 carrying fallback, so storage and gateway
// details never reach the client.
func (h *BaseHandler) HandleError(c *gin.Context, err error, fallback string) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	logger.GetGinLogger(c).Error(fallback, zap.Error(err))
	_ = c.Error(err)
	h.InternalError(c, fallback)
}

// bindJSON binds the body into req and answers 400 when it cannot
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if details := middleware.ValidationDetails(err); details != nil {
			h.ValidationError(c, details)
		} else {
			h.BadRequest(c, "Invalid request body")
		}
		return false
	}
	return true
}

// tenantID returns the authenticated tenant or answers 401
func (h *BaseHandler) tenantID(c *gin.Context) (uuid.UUID, bool) {
	id, err := middleware.TenantUUID(c)
	if err != nil {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeTokenInvalid, middleware.MsgTokenInvalid)
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses the :id segment. A malformed id reports notFound, since no
// record can carry it.
func (h *BaseHandler) pathID(c *gin.Context, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.HandleError(c, notFound, "")
		return uuid.Nil, false
	}
	return id, true
}
