package identity

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/vyapar/backend/internal/domain/shared"
)

// BusinessInfo is the business profile printed on bills
type BusinessInfo struct {
	Name    string
	Tagline string
	Address string
	Phone   string
	GSTIN   string
}

// User is a registered business account. Each user is its own tenant:
// the user ID is the tenant ID that scopes every other record.
type User struct {
	shared.BaseAggregateRoot
	Email              string
	PasswordHash       string
	SecurityQuestion   string
	SecurityAnswerHash string
	BusinessInfo       BusinessInfo
}

// Errors raised by the identity context
var (
	ErrUserAlreadyExists  = shared.NewDomainError("USER_ALREADY_EXISTS", "User with this email already exists.")
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid credentials.")
	ErrUserNotFound       = shared.NewDomainError("USER_NOT_FOUND", "User not found.")
	ErrIncorrectAnswer    = shared.NewDomainError("INCORRECT_ANSWER", "Incorrect answer.")
	ErrResetTokenMissing  = shared.NewDomainError("RESET_TOKEN_MISSING", "No token, authorization denied.")
	ErrResetTokenInvalid  = shared.NewDomainError("RESET_TOKEN_INVALID", "Token is not valid or has expired.")
)

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser creates a user from already-hashed credentials
func NewUser(email, passwordHash, question, answerHash string, info BusinessInfo) (*User, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password is required")
	}
	if strings.TrimSpace(question) == "" {
		return nil, shared.NewDomainError("INVALID_SECURITY_QUESTION", "Security question is required")
	}
	if answerHash == "" {
		return nil, shared.NewDomainError("INVALID_SECURITY_ANSWER", "Security answer is required")
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}

	return &User{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		Email:              email,
		PasswordHash:       passwordHash,
		SecurityQuestion:   strings.TrimSpace(question),
		SecurityAnswerHash: answerHash,
		BusinessInfo:       info,
	}, nil
}

// TenantID returns the tenant this user owns
func (u *User) TenantID() uuid.UUID {
	return u.ID
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password is required")
	}
	u.PasswordHash = passwordHash
	u.IncrementVersion()
	return nil
}

// Validate checks the business profile
func (b BusinessInfo) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name is required")
	}
	if len(b.Name) > 200 {
		return shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name cannot exceed 200 characters")
	}
	if len(b.GSTIN) > 15 {
		return shared.NewDomainError("INVALID_GSTIN", "GSTIN cannot exceed 15 characters")
	}
	return nil
}

// ValidateEmail checks an already normalized address
func ValidateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return shared.NewDomainError("INVALID_EMAIL", "Email is not valid")
	}
	return nil
}
