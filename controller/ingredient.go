package controller

import (
	"context"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/repository"
)

// IngredientController interface
type IngredientController interface {
	ListIngredients(ctx context.Context, search string) ([]entity.Ingredient, error)
	GetIngredient(ctx context.Context, id uint) (*entity.Ingredient, error)
}

// ingredientController struct
type ingredientController struct {
	ingredientRepository *repository.IngredientRepository
}

// NewIngredientController creates and returns a new IngredientController.
func NewIngredientController(ingredientRepository *repository.IngredientRepository) IngredientController {
	return &ingredientController{
		ingredientRepository: ingredientRepository,
	}
}

func (c *ingredientController) ListIngredients(ctx context.Context, search string) ([]entity.Ingredient, error) {
	return c.ingredientRepository.ListIngredients(ctx, search)
}

func (c *ingredientController) GetIngredient(ctx context.Context, id uint) (*entity.Ingredient, error) {
	return c.ingredientRepository.GetIngredientByID(ctx, id)
}
