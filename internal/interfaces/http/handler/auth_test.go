package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	identityapp "github.com/vyapar/backend/internal/application/identity"
	"github.com/vyapar/backend/internal/domain/identity"
	"github.com/vyapar/backend/internal/infrastructure/auth"
	"github.com/vyapar/backend/internal/infrastructure/config"
	"github.com/vyapar/backend/internal/interfaces/http/dto"
	"github.com/vyapar/backend/internal/interfaces/http/middleware"
)

type authFixture struct {
	users   *MockUserRepository
	hasher  *auth.BcryptHasher
	jwt     *auth.JWTService
	handler *AuthHandler
	router  *gin.Engine
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:  new(MockUserRepository),
		hasher: auth.NewBcryptHasher(bcrypt.MinCost),
		jwt: auth.NewJWTService(config.JWTConfig{
			Secret:                "test-secret-key-at-least-32-chars",
			AccessTokenExpiration: time.Hour,
			ResetTokenExpiration:  15 * time.Minute,
			Issuer:                "test",
		}),
	}
	f.handler = NewAuthHandler(identityapp.NewAuthService(f.users, f.hasher, f.jwt, zap.NewNop()))

	f.router = gin.New()
	f.router.Use(middleware.RequestID())
	g := f.router.Group("/api/auth")
	g.POST("/register", f.handler.Register)
	g.POST("/login", f.handler.Login)
	g.POST("/get-question", f.handler.GetSecurityQuestion)
	g.POST("/verify-answer", f.handler.VerifyAnswer)
	g.POST("/reset-password", f.handler.ResetPassword)
	return f
}

func (f *authFixture) user(t *testing.T, password, answer string) *identity.User {
	t.Helper()
	pw, err := f.hasher.Hash(password)
	require.NoError(t, err)
	ans, err := f.hasher.Hash(answer)
	require.NoError(t, err)
	u, err := identity.NewUser("owner@shop.in", pw, "First school?", ans, identity.BusinessInfo{Name: "Sharma Kirana"})
	require.NoError(t, err)
	return u
}

const registerBody = `{
	"email": " Owner@Shop.in ",
	"password": "secret123",
	"securityQuestion": "First school?",
	"securityAnswer": "DPS",
	"businessInfo": {"name": "Sharma Kirana", "gstin": "27ABCDE1234F1Z5"}
}`

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("ExistsByEmail", mock.Anything, "owner@shop.in").Return(false, nil)
		f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *identity.User) bool {
			return u.Email == "owner@shop.in" && u.BusinessInfo.GSTIN == "27ABCDE1234F1Z5"
		})).Return(nil)

		w := doJSON(f.router, http.MethodPost, "/api/auth/register", registerBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, MsgRegistered, decodeBody[dto.MessageResponse](t, w).Message)
		f.users.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("ExistsByEmail", mock.Anything, "owner@shop.in").Return(true, nil)

		w := doJSON(f.router, http.MethodPost, "/api/auth/register", registerBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeErr(t, w)
		assert.Equal(t, "User with this email already exists.", body.Message)
		assert.Equal(t, dto.ErrCodeAlreadyExists, body.Code)
	})

	t.Run("missing business name", func(t *testing.T) {
		f := newAuthFixture()
		w := doJSON(f.router, http.MethodPost, "/api/auth/register",
			`{"email":"a@b.in","password":"x","securityQuestion":"q","securityAnswer":"a","businessInfo":{}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeErr(t, w)
		assert.Equal(t, dto.ErrCodeValidation, body.Code)
		require.Len(t, body.Details, 1)
		assert.Equal(t, "name", body.Details[0].Field)
	})

	t.Run("malformed email", func(t *testing.T) {
		f := newAuthFixture()
		w := doJSON(f.router, http.MethodPost, "/api/auth/register",
			`{"email":" owner-at-shop ","password":"x","securityQuestion":"q","securityAnswer":"a","businessInfo":{"name":"S"}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeErr(t, w)
		assert.Equal(t, dto.ErrCodeValidation, body.Code)
		assert.Equal(t, "Email is not valid", body.Message)
		f.users.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	})

	t.Run("store failure is hidden", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("ExistsByEmail", mock.Anything, "owner@shop.in").Return(false, errors.New("connection refused"))

		w := doJSON(f.router, http.MethodPost, "/api/auth/register", registerBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeErr(t, w)
		assert.Equal(t, msgServerError, body.Message)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	f := newAuthFixture()
	u := f.user(t, "secret123", "DPS")
	f.users.On("FindByEmail", mock.Anything, "owner@shop.in").Return(u, nil)
	f.users.On("FindByEmail", mock.Anything, "nobody@shop.in").Return(nil, identity.ErrUserNotFound)

	w := doJSON(f.router, http.MethodPost, "/api/auth/login", `{"email":"OWNER@shop.in","password":"secret123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	result := decodeBody[identityapp.LoginResult](t, w)
	assert.Equal(t, "Sharma Kirana", result.BusinessInfo.Name)
	claims, err := f.jwt.ValidateAccessToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.TenantID)

	for _, body := range []string{
		`{"email":"owner@shop.in","password":"wrong"}`,
		`{"email":"nobody@shop.in","password":"secret123"}`,
	} {
		w := doJSON(f.router, http.MethodPost, "/api/auth/login", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid credentials.", decodeErr(t, w).Message)
	}
}

func TestAuthHandler_PasswordRecovery(t *testing.T) {
	f := newAuthFixture()
	u := f.user(t, "secret123", "DPS")
	f.users.On("FindByEmail", mock.Anything, "owner@shop.in").Return(u, nil)
	f.users.On("FindByEmail", mock.Anything, "nobody@shop.in").Return(nil, identity.ErrUserNotFound)
	f.users.On("FindByID", mock.Anything, u.ID).Return(u, nil)
	f.users.On("UpdatePassword", mock.Anything, u).Return(nil)

	w := doJSON(f.router, http.MethodPost, "/api/auth/get-question", `{"email":"owner@shop.in"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "First school?", decodeBody[identityapp.SecurityQuestionResult](t, w).SecurityQuestion)

	w = doJSON(f.router, http.MethodPost, "/api/auth/get-question", `{"email":"nobody@shop.in"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found.", decodeErr(t, w).Message)

	w = doJSON(f.router, http.MethodPost, "/api/auth/verify-answer", `{"email":"owner@shop.in","securityAnswer":"KV"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Incorrect answer.", decodeErr(t, w).Message)

	w = doJSON(f.router, http.MethodPost, "/api/auth/verify-answer", `{"email":"owner@shop.in","securityAnswer":"DPS"}`)
	require.Equal(t, http.StatusOK, w.Code)
	resetToken := decodeBody[identityapp.VerifyAnswerResult](t, w).ResetToken
	require.NotEmpty(t, resetToken)

	w = doJSON(f.router, http.MethodPost, "/api/auth/reset-password",
		`{"resetToken":"`+resetToken+`","newPassword":"n3w-pass"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MsgPasswordReset, decodeBody[dto.MessageResponse](t, w).Message)
	assert.True(t, f.hasher.Compare(u.PasswordHash, "n3w-pass"))
}

func TestAuthHandler_ResetPassword_TokenFailures(t *testing.T) {
	f := newAuthFixture()
	accessToken, _, err := f.jwt.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	w := doJSON(f.router, http.MethodPost, "/api/auth/reset-password", `{"newPassword":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token, authorization denied.", decodeErr(t, w).Message)

	w = doJSON(f.router, http.MethodPost, "/api/auth/reset-password", `{"resetToken":"`+accessToken+`","newPassword":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is not valid or has expired.", decodeErr(t, w).Message)
}
