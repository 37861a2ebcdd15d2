package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/mapper"
	"github.com/Master1941/foodgram-project-react/model"

	"gorm.io/gorm"
)

// IngredientRepository is a struct that holds the database connection.
type IngredientRepository struct {
	DB *gorm.DB
}

// NewIngredientRepository creates and returns a new IngredientRepository.
func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{
		DB: db,
	}
}

// CreateIngredient creates a new ingredient. Used by the bulk import
// path only.
func (r *IngredientRepository) CreateIngredient(ctx context.Context, ingredientEntity *entity.Ingredient) error {
	ingredientModel := mapper.IngredientEntityToModel(ingredientEntity)
	if err := r.DB.WithContext(ctx).Create(ingredientModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrConflict
		}
		return err
	}
	ingredientEntity.ID = ingredientModel.ID
	return nil
}

// GetIngredientByID fetches an ingredient by ID.
func (r *IngredientRepository) GetIngredientByID(ctx context.Context, id uint) (*entity.Ingredient, error) {
	var ingredientModel model.Ingredient
	if err := r.DB.WithContext(ctx).First(&ingredientModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return mapper.IngredientModelToEntity(&ingredientModel), nil
}

// ListIngredients returns ingredients ordered by name, optionally
// filtered by a case-insensitive name prefix.
func (r *IngredientRepository) ListIngredients(ctx context.Context, search string) ([]entity.Ingredient, error) {
	q := r.DB.WithContext(ctx).Model(&model.Ingredient{}).Order("name")
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", strings.ToLower(search)+"%")
	}

	var ingredientModels []model.Ingredient
	if err := q.Find(&ingredientModels).Error; err != nil {
		return nil, err
	}
	ingredients := make([]entity.Ingredient, 0, len(ingredientModels))
	for i := range ingredientModels {
		ingredients = append(ingredients, *mapper.IngredientModelToEntity(&ingredientModels[i]))
	}
	return ingredients, nil
}

// GetIngredientsByIDs fetches the ingredients with the given ids.
func (r *IngredientRepository) GetIngredientsByIDs(ctx context.Context, ids []uint) ([]entity.Ingredient, error) {
	var ingredientModels []model.Ingredient
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&ingredientModels).Error; err != nil {
		return nil, err
	}
	ingredients := make([]entity.Ingredient, 0, len(ingredientModels))
	for i := range ingredientModels {
		ingredients = append(ingredients, *mapper.IngredientModelToEntity(&ingredientModels[i]))
	}
	return ingredients, nil
}
