package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	identityapp "github.com/vyapar/backend/internal/application/identity"
	"github.com/vyapar/backend/internal/interfaces/http/dto"
)

// Auth response messages
const (
	MsgRegistered    = "User registered successfully!"
	MsgPasswordReset = "Password has been reset successfully."
	msgServerError   = "Server error"
)

// AuthHandler handles the account endpoints under /api/auth
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/auth/register
// @Summary      Register a shop owner
// @Description  Create an account with a security question for password recovery
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identityapp.RegisterInput true "Account details"
// @Success      201 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req identityapp.RegisterInput
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.authService.Register(c.Request.Context(), req); err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: MsgRegistered})
}

// Login handles POST /api/auth/login
// @Summary      Log in
// @Description  Exchange email and password for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identityapp.LoginInput true "Credentials"
// @Success      200 {object} identityapp.LoginResult
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginInput
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSecurityQuestion handles POST /api/auth/get-question
// @Summary      Get security question
// @Description  Return the security question stored for an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identityapp.SecurityQuestionInput true "Account email"
// @Success      200 {object} identityapp.SecurityQuestionResult
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /api/auth/get-question [post]
func (h *AuthHandler) GetSecurityQuestion(c *gin.Context) {
	var req identityapp.SecurityQuestionInput
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.authService.GetSecurityQuestion(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusOK, result)
}

// VerifyAnswer handles POST /api/auth/verify-answer
// @Summary      Verify security answer
// @Description  Check the answer and issue a short-lived reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identityapp.VerifyAnswerInput true "Email and answer"
// @Success      200 {object} identityapp.VerifyAnswerResult
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /api/auth/verify-answer [post]
func (h *AuthHandler) VerifyAnswer(c *gin.Context) {
	var req identityapp.VerifyAnswerInput
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.authService.VerifyAnswer(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ResetPassword handles POST /api/auth/reset-password
// @Summary      Reset password
// @Description  Set a new password using a reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identityapp.ResetPasswordInput true "Reset token and new password"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req identityapp.ResetPasswordInput
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.authService.ResetPassword(c.Request.Context(), req); err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: MsgPasswordReset})
}
