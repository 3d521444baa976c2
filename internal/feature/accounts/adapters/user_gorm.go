// Package adapters provides the repository implementations for the accounts
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nexuscare_backend/internal/feature/accounts/domain/entity"
	"nexuscare_backend/internal/feature/accounts/usecase"
)

// userGorm is the relational implementation of usecase.UserRepository.
// Email uniqueness is enforced by the unique index on the users table, so a
// duplicate signup fails atomically at insert time.
type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a userGorm backed by the given connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. A unique-index violation on email is mapped to
// usecase.ErrEmailTaken; this relies on gorm.Config.TranslateError being
// enabled on the connection.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailTaken
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
