package repository

import (
	"context"
	"errors"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/mapper"
	"github.com/Master1941/foodgram-project-react/model"

	"gorm.io/gorm"
)

// UserRepository is a struct that holds the database connection.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates and returns a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

// CreateUser creates a new user in the database. A duplicate username or
// email is reported as entity.ErrConflict.
func (r *UserRepository) CreateUser(ctx context.Context, userEntity *entity.User) error {
	userModel := mapper.UserEntityToModel(userEntity)

	if err := r.DB.WithContext(ctx).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrConflict
		}
		return err
	}
	userEntity.ID = userModel.ID
	return nil
}

// GetUserByID fetches a user from the database by ID.
func (r *UserRepository) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	var userModel model.User
	if err := r.DB.WithContext(ctx).First(&userModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return mapper.UserModelToEntity(&userModel), nil
}

// GetUserByEmail fetches a user from the database by email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return mapper.UserModelToEntity(&userModel), nil
}

// ListUsers returns one page of users ordered by username, plus the
// total count.
func (r *UserRepository) ListUsers(ctx context.Context, page, limit int) ([]entity.User, int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var userModels []model.User
	err := r.DB.WithContext(ctx).
		Order("username").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&userModels).Error
	if err != nil {
		return nil, 0, err
	}

	users := make([]entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, *mapper.UserModelToEntity(&userModels[i]))
	}
	return users, count, nil
}

// UpdatePassword overwrites the stored password hash of a user.
func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, hash []byte) error {
	res := r.DB.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
