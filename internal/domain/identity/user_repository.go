package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository persists users
type UserRepository interface {
	// FindByID finds a user by ID, returning ErrUserNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by normalized email, returning ErrUserNotFound when absent
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail reports whether the normalized email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a new user. A duplicate email yields ErrUserAlreadyExists.
	Create(ctx context.Context, user *User) error

	// UpdatePassword persists a new password hash
	UpdatePassword(ctx context.Context, user *User) error
}

// PasswordHasher hashes and compares secrets (passwords and security answers)
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}
