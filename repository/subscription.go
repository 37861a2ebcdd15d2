package repository

import (
	"context"
	"errors"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/mapper"
	"github.com/Master1941/foodgram-project-react/model"

	"gorm.io/gorm"
)

// SubscriptionRepository is a struct that holds the database connection.
type SubscriptionRepository struct {
	DB *gorm.DB
}

// NewSubscriptionRepository creates and returns a new SubscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		DB: db,
	}
}

// AddSubscription records that the user follows the author. A duplicate
// pair is reported as entity.ErrConflict.
func (r *SubscriptionRepository) AddSubscription(ctx context.Context, userID, authorID uint) error {
	err := r.DB.WithContext(ctx).Create(&model.Subscription{UserID: userID, AuthorID: authorID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entity.ErrConflict
	}
	return err
}

// RemoveSubscription removes a subscription; entity.ErrNotFound when
// the user was not subscribed.
func (r *SubscriptionRepository) RemoveSubscription(ctx context.Context, userID, authorID uint) error {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.Subscription{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// SubscribedAuthorIDs returns which of the given authors the user is
// subscribed to, as a set.
func (r *SubscriptionRepository) SubscribedAuthorIDs(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error) {
	set := make(map[uint]bool, len(authorIDs))
	if userID == 0 || len(authorIDs) == 0 {
		return set, nil
	}
	var ids []uint
	err := r.DB.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("user_id = ? AND author_id IN ?", userID, authorIDs).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// ListSubscribedAuthors returns one page of the authors the user is
// subscribed to, ordered by username, plus the total count.
func (r *SubscriptionRepository) ListSubscribedAuthors(ctx context.Context, userID uint, page, limit int) ([]entity.User, int64, error) {
	base := r.DB.WithContext(ctx).
		Model(&model.User{}).
		Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
		Where("subscriptions.user_id = ?", userID)

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var userModels []model.User
	err := base.
		Order("users.username").
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
