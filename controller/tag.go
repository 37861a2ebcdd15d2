package controller

import (
	"context"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/repository"
)

// TagController interface
type TagController interface {
	ListTags(ctx context.Context) ([]entity.Tag, error)
	GetTag(ctx context.Context, id uint) (*entity.Tag, error)
}

// tagController struct
type tagController struct {
	tagRepository *repository.TagRepository
}

// NewTagController creates and returns a new TagController.
func NewTagController(tagRepository *repository.TagRepository) TagController {
	return &tagController{
		tagRepository: tagRepository,
	}
}

func (c *tagController) ListTags(ctx context.Context) ([]entity.Tag, error) {
	return c.tagRepository.ListTags(ctx)
}

func (c *tagController) GetTag(ctx context.Context, id uint) (*entity.Tag, error) {
	return c.tagRepository.GetTagByID(ctx, id)
}
