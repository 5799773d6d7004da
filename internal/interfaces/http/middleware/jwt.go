package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/infrastructure/auth"
	"github.com/vyapar/backend/internal/infrastructure/logger"
	"github.com/vyapar/backend/internal/interfaces/http/dto"
)

// Gin context keys set by the auth gate
const (
	ClaimsKey   = "auth_claims"
	UserIDKey   = "auth_user_id"
	TenantIDKey = "auth_tenant_id"
)

// Token headers. The web client sends x-auth-token; other clients use a bearer header.
const (
	AuthHeaderKey = "Authorization"
	AuthTokenKey  = "x-auth-token"
	BearerPrefix  = "Bearer "
)

// Gate failure messages shown by existing clients
const (
	MsgNoToken      = "No token, authorization denied."
	MsgTokenInvalid = "Token is not valid."
)

var errNoTenant = errors.New("request is not authenticated")

// JWTAuthMiddleware admits requests carrying a valid access token and puts
// the shop owner's identity on the gin and request contexts. Reset tokens
// are refused like any other bad token.
func JWTAuthMiddleware(tokens *auth.JWTService, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		raw := tokenFrom(c.Request.Header.Get(AuthHeaderKey), c.Request.Header.Get(AuthTokenKey))
		if raw == "" {
			deny(c, log, nil, dto.ErrCodeUnauthorized, MsgNoToken)
			return
		}
		claims, err := tokens.ValidateAccessToken(raw)
		if err != nil {
			deny(c, log, err, dto.ErrCodeTokenInvalid, MsgTokenInvalid)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.UserID)
		c.Set(TenantIDKey, claims.TenantID)

		ctx := c.Request.Context()
		ctx, reqLog := logger.WithUserID(ctx, logger.FromContext(ctx), claims.UserID)
		ctx, _ = logger.WithTenantID(ctx, reqLog, claims.TenantID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// tokenFrom prefers a bearer Authorization header over x-auth-token
func tokenFrom(authorization, authToken string) string {
	if t, ok := strings.CutPrefix(authorization, BearerPrefix); ok {
		if t = strings.TrimSpace(t); t != "" {
			return t
		}
	}
	return strings.TrimSpace(authToken)
}

func deny(c *gin.Context, log *zap.Logger, err error, code, message string) {
	log.Warn("Request refused by auth gate",
		zap.String("path", c.Request.URL.Path),
		zap.String("code", code),
		zap.Error(err),
	)
	c.AbortWithStatusJSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}

// ClaimsFrom returns the validated claims, or nil on an unauthenticated request.
func ClaimsFrom(c *gin.Context) *auth.Claims {
	claims, _ := c.Value(ClaimsKey).(*auth.Claims)
	return claims
}

func UserID(c *gin.Context) string   { return c.GetString(UserIDKey) }
func TenantID(c *gin.Context) string { return c.GetString(TenantIDKey) }

// TenantUUID is the id every repository call is scoped by.
func TenantUUID(c *gin.Context) (uuid.UUID, error) {
	id := TenantID(c)
	if id == "" {
		return uuid.Nil, errNoTenant
	}
	return uuid.Parse(id)
}
