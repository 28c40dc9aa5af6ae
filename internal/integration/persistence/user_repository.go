// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	"github.com/moneybook/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.UserFromEntity(user)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*entity.User, error) {
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var userModel model.UserModel
	result := query.First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindByEmail retrieves a user by email, case-insensitively.
func (r *userRepository) FindByEmail(ctx context.Context, email string, includeDeleted bool) (*entity.User, error) {
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email))
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var userModel model.UserModel
	result := query.First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindDeletedBefore retrieves soft-deleted users whose deletedAt is at or
// before the cutoff.
func (r *userRepository) FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]*entity.User, error) {
	var userModels []model.UserModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("is_deleted = ? AND deleted_at <= ?", true, cutoff).
		Find(&userModels)
	if result.Error != nil {
		return nil, result.Error
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = userModels[i].ToEntity()
	}
	return users, nil
}

// Update persists the state of an existing user.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := model.UserFromEntity(user)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Save(userModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ExistsByEmail checks if a user with the given email exists, including
// soft-deleted users so a reclaimed address cannot collide on restore.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&model.UserModel{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// HardDelete irreversibly removes a user row.
func (r *userRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	return result.Error
}
