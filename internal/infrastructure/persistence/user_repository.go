package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vyapar/backend/internal/domain/identity"
	"github.com/vyapar/backend/internal/infrastructure/persistence/models"
)

// GormUserRepository stores shop owner accounts. Users are not tenant
// scoped: each user is the tenant of its own records.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) first(ctx context.Context, query string, arg any) (*identity.User, error) {
	var row models.UserModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error; err != nil {
		return nil, translateNotFound(err, identity.ErrUserNotFound)
	}
	return row.ToDomain(), nil
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	return r.first(ctx, "id = ?", id)
}

// FindByEmail matches case-insensitively; emails are stored normalized.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	return r.first(ctx, "email = ?", identity.NormalizeEmail(email))
}

func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("email = ?", identity.NormalizeEmail(email)).
		Count(&n).Error
	return n > 0, err
}

// Create inserts user. A unique email violation means someone registered first.
func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	err := r.db.WithContext(ctx).Create(models.UserModelFromDomain(user)).Error
	if isDuplicateKey(err) {
		return identity.ErrUserAlreadyExists
	}
	return err
}

// UpdatePassword writes the new hash and bumps the version.
func (r *GormUserRepository) UpdatePassword(ctx context.Context, user *identity.User) error {
	res := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"password_hash": user.PasswordHash,
			"version":       user.Version,
			"updated_at":    user.UpdatedAt.UTC(),
		})
	switch {
	case res.Error != nil:
		return res.Error
	case res.RowsAffected == 0:
		return identity.ErrUserNotFound
	}
	return nil
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
