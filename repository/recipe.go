package repository

import (
	"context"
	"errors"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/mapper"
	"github.com/Master1941/foodgram-project-react/model"

	"gorm.io/gorm"
)

// RecipeRepository is a struct that holds the database connection.
type RecipeRepository struct {
	DB *gorm.DB
}

// NewRecipeRepository creates and returns a new RecipeRepository.
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{
		DB: db,
	}
}

// CreateRecipe persists the recipe row plus its full ingredient-amount
// and tag sets as one atomic unit. If any step fails nothing is
// committed. A duplicate (author, name) pair is reported as
// entity.ErrConflict.
func (r *RecipeRepository) CreateRecipe(ctx context.Context, rec *entity.Recipe) error {
	recipeModel := mapper.RecipeEntityToModel(rec)

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipeModel).Error; err != nil {
			return err
		}
		return r.replaceChildren(tx, recipeModel.ID, rec)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrConflict
		}
		return err
	}
	rec.ID = recipeModel.ID
	return nil
}

// UpdateRecipe overwrites the scalar fields and replaces the full
// ingredient-amount and tag sets of an existing recipe, atomically.
// Children are never patched in place: the old join rows are deleted
// and the submitted sets recreated.
func (r *RecipeRepository) UpdateRecipe(ctx context.Context, rec *entity.Recipe) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Recipe{}).Where("id = ?", rec.ID).Updates(map[string]interface{}{
			"name":         rec.Name,
			"image":        rec.Image,
			"text":         rec.Text,
			"cooking_time": rec.CookingTime,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrNotFound
		}
		return r.replaceChildren(tx, rec.ID, rec)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entity.ErrConflict
	}
	return err
}

// replaceChildren deletes and recreates the ingredient-amount rows and
// tag associations of a recipe. Must run inside the caller's transaction.
func (r *RecipeRepository) replaceChildren(tx *gorm.DB, recipeID uint, rec *entity.Recipe) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{}).Error; err != nil {
		return err
	}

	rows := make([]model.RecipeIngredient, 0, len(rec.Ingredients))
	for _, ing := range rec.Ingredients {
		rows = append(rows, model.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ing.IngredientID,
			Amount:       ing.Amount,
		})
	}
	if len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	tagModels := make([]model.Tag, 0, len(rec.Tags))
	for _, t := range rec.Tags {
		tagModels = append(tagModels, model.Tag{ID: t.ID})
	}
	return tx.Model(&model.Recipe{ID: recipeID}).Association("Tags").Replace(&tagModels)
}

// GetRecipeByID fetches a recipe with its author, tags and ingredients.
func (r *RecipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	var recipeModel model.Recipe
	err := r.DB.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&recipeModel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return mapper.RecipeModelToEntity(&recipeModel), nil
}

// DeleteRecipe removes the recipe together with its join rows and any
// favorite / shopping-cart memberships referencing it.
func (r *RecipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Recipe{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.ShoppingListItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrNotFound
		}
		return nil
	})
}

// ListRecipes returns one page of recipes matching the filter, plus the
// total count of matches. The membership filters are scoped to
// filter.UserID and skipped for anonymous requesters, matching the
// behavior of the public listing.
func (r *RecipeRepository) ListRecipes(ctx context.Context, filter entity.RecipeFilter) ([]entity.Recipe, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.Recipe{})

	if filter.AuthorID != 0 {
		q = q.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		tagged := r.DB.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
		q = q.Where("recipes.id IN (?)", tagged)
	}
	if filter.UserID != 0 && filter.OnlyFavorited {
		favorited := r.DB.Table("favorites").
			Select("favorites.recipe_id").
			Where("favorites.user_id = ?", filter.UserID)
		q = q.Where("recipes.id IN (?)", favorited)
	}
	if filter.UserID != 0 && filter.OnlyInCart {
		inCart := r.DB.Table("shopping_list_items").
			Select("shopping_list_items.recipe_id").
			Where("shopping_list_items.user_id = ?", filter.UserID)
		q = q.Where("recipes.id IN (?)", inCart)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var recipeModels []model.Recipe
	err := q.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("recipes.name").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&recipeModels).Error
	if err != nil {
		return nil, 0, err
	}

	recipes := make([]entity.Recipe, 0, len(recipeModels))
	for i := range recipeModels {
		recipes = append(recipes, *mapper.RecipeModelToEntity(&recipeModels[i]))
	}
	return recipes, count, nil
}

// ListRecipesByAuthor returns an author's recipes ordered by name,
// optionally capped. limit <= 0 means no cap.
func (r *RecipeRepository) ListRecipesByAuthor(ctx context.Context, authorID uint, limit int) ([]entity.Recipe, error) {
	q := r.DB.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("name")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recipeModels []model.Recipe
	if err := q.Find(&recipeModels).Error; err != nil {
		return nil, err
	}
	recipes := make([]entity.Recipe, 0, len(recipeModels))
	for i := range recipeModels {
		recipes = append(recipes, *mapper.RecipeModelToEntity(&recipeModels[i]))
	}
	return recipes, nil
}

// CountRecipesByAuthor returns the total number of recipes of an author.
func (r *RecipeRepository) CountRecipesByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
