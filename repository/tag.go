package repository

import (
	"context"
	"errors"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/mapper"
	"github.com/Master1941/foodgram-project-react/model"

	"gorm.io/gorm"
)

// TagRepository is a struct that holds the database connection.
type TagRepository struct {
	DB *gorm.DB
}

// NewTagRepository creates and returns a new TagRepository.
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{
		DB: db,
	}
}

// CreateTag creates a new tag. Used by the bulk import path only; tags
// are immutable reference data on the serving surface.
func (r *TagRepository) CreateTag(ctx context.Context, tagEntity *entity.Tag) error {
	tagModel := mapper.TagEntityToModel(tagEntity)
	if err := r.DB.WithContext(ctx).Create(tagModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrConflict
		}
		return err
	}
	tagEntity.ID = tagModel.ID
	return nil
}

// GetTagByID fetches a tag by ID.
func (r *TagRepository) GetTagByID(ctx context.Context, id uint) (*entity.Tag, error) {
	var tagModel model.Tag
	if err := r.DB.WithContext(ctx).First(&tagModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return mapper.TagModelToEntity(&tagModel), nil
}

// ListTags returns all tags ordered by name.
func (r *TagRepository) ListTags(ctx context.Context) ([]entity.Tag, error) {
	var tagModels []model.Tag
	if err := r.DB.WithContext(ctx).Order("name").Find(&tagModels).Error; err != nil {
		return nil, err
	}
	tags := make([]entity.Tag, 0, len(tagModels))
	for i := range tagModels {
		tags = append(tags, *mapper.TagModelToEntity(&tagModels[i]))
	}
	return tags, nil
}

// GetTagsByIDs fetches the tags with the given ids. Callers compare the
// result length against the requested ids to detect unknown tags.
func (r *TagRepository) GetTagsByIDs(ctx context.Context, ids []uint) ([]entity.Tag, error) {
	var tagModels []model.Tag
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&tagModels).Error; err != nil {
		return nil, err
	}
	tags := make([]entity.Tag, 0, len(tagModels))
	for i := range tagModels {
		tags = append(tags, *mapper.TagModelToEntity(&tagModels[i]))
	}
	return tags, nil
}
