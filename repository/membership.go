package repository

import (
	"context"
	"errors"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/model"

	"gorm.io/gorm"
)

// MembershipRepository manages the per-user recipe membership sets:
// favorites and the shopping cart. Both are structurally identical
// (user, recipe) pairs with a uniqueness constraint; concurrent
// duplicate inserts are resolved by that constraint and surface as
// entity.ErrConflict.
type MembershipRepository struct {
	DB *gorm.DB
}

// NewMembershipRepository creates and returns a new MembershipRepository.
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{
		DB: db,
	}
}

func (r *MembershipRepository) add(ctx context.Context, row interface{}) error {
	if err := r.DB.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrConflict
		}
		return err
	}
	return nil
}

func (r *MembershipRepository) remove(ctx context.Context, userID, recipeID uint, m interface{}) error {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// AddFavorite records that the user favorited the recipe.
func (r *MembershipRepository) AddFavorite(ctx context.Context, userID, recipeID uint) error {
	return r.add(ctx, &model.Favorite{UserID: userID, RecipeID: recipeID})
}

// RemoveFavorite removes a favorite; entity.ErrNotFound when absent.
func (r *MembershipRepository) RemoveFavorite(ctx context.Context, userID, recipeID uint) error {
	return r.remove(ctx, userID, recipeID, &model.Favorite{})
}

// AddToCart records that the recipe is in the user's shopping cart.
func (r *MembershipRepository) AddToCart(ctx context.Context, userID, recipeID uint) error {
	return r.add(ctx, &model.ShoppingListItem{UserID: userID, RecipeID: recipeID})
}

// RemoveFromCart removes a cart entry; entity.ErrNotFound when absent.
func (r *MembershipRepository) RemoveFromCart(ctx context.Context, userID, recipeID uint) error {
	return r.remove(ctx, userID, recipeID, &model.ShoppingListItem{})
}

// FavoriteRecipeIDs returns which of the given recipes the user has
// favorited, as a set. Used to compute the is_favorited flags for one
// page of recipes in a single query.
func (r *MembershipRepository) FavoriteRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	return r.memberIDs(ctx, &model.Favorite{}, userID, recipeIDs)
}

// CartRecipeIDs returns which of the given recipes are in the user's
// shopping cart, as a set.
func (r *MembershipRepository) CartRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	return r.memberIDs(ctx, &model.ShoppingListItem{}, userID, recipeIDs)
}

func (r *MembershipRepository) memberIDs(ctx context.Context, m interface{}, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	set := make(map[uint]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return set, nil
	}
	var ids []uint
	err := r.DB.WithContext(ctx).
		Model(m).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// AggregateShoppingList flattens every recipe in the user's shopping
// cart to its ingredient rows, groups by (ingredient name, measurement
// unit) and sums the amounts. An empty cart yields an empty slice.
func (r *MembershipRepository) AggregateShoppingList(ctx context.Context, userID uint) ([]entity.ShoppingItem, error) {
	var items []entity.ShoppingItem
	err := r.DB.WithContext(ctx).
		Model(&model.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_list_items ON shopping_list_items.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_list_items.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
