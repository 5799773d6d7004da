package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vyapar/backend/internal/infrastructure/config"
)

// TokenType separates session tokens from password reset tokens so one can
// never stand in for the other.
type TokenType string

const (
	TokenTypeAccess TokenType = "access"
	TokenTypeReset  TokenType = "reset"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrMissingUserID    = errors.New("missing user_id in claims")
)

// Claims represents custom JWT claims.
// A user is its own tenant, so TenantID and UserID carry the same value;
// both are kept so the gate never has to know that.
type Claims struct {
	jwt.RegisteredClaims
	TenantID  string    `json:"tenant_id"`
	UserID    string    `json:"user_id"`
	TokenType TokenType `json:"token_type"`
}

// JWTService signs and checks HS256 tokens.
type JWTService struct {
	secret           []byte
	accessExpiration time.Duration
	resetExpiration  time.Duration
	issuer           string
	now              func() time.Time
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:           []byte(cfg.Secret),
		accessExpiration: cfg.AccessTokenExpiration,
		resetExpiration:  cfg.ResetTokenExpiration,
		issuer:           cfg.Issuer,
		now:              time.Now,
	}
}

// GenerateAccessToken issues the session token returned by login
func (s *JWTService) GenerateAccessToken(userID uuid.UUID) (string, time.Time, error) {
	return s.generate(userID, TokenTypeAccess, s.accessExpiration)
}

// GenerateResetToken issues the short-lived token returned by verify-answer
func (s *JWTService) GenerateResetToken(userID uuid.UUID) (string, time.Time, error) {
	return s.generate(userID, TokenTypeReset, s.resetExpiration)
}

func (s *JWTService) generate(userID uuid.UUID, tokenType TokenType, ttl time.Duration) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		TenantID:  userID.String(),
		UserID:    userID.String(),
		TokenType: tokenType,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateAccessToken accepts only session tokens.
func (s *JWTService) ValidateAccessToken(raw string) (*Claims, error) {
	return s.parse(raw, TokenTypeAccess)
}

// ValidateResetToken accepts only the short-lived password reset tokens.
func (s *JWTService) ValidateResetToken(raw string) (*Claims, error) {
	return s.parse(raw, TokenTypeReset)
}

func (s *JWTService) parse(raw string, want TokenType) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.TokenType != want:
		return nil, ErrInvalidTokenType
	case claims.UserID == "":
		return nil, ErrMissingUserID
	}
	return claims, nil
}

func (c *Claims) GetUserUUID() (uuid.UUID, error)   { return uuid.Parse(c.UserID) }
func (c *Claims) GetTenantUUID() (uuid.UUID, error) { return uuid.Parse(c.TenantID) }
