package repository_test

import (
	"context"
	"testing"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/repository"
	"github.com/Master1941/foodgram-project-react/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRecipe(t *testing.T, gormDB *gorm.DB, repo *repository.RecipeRepository, authorID uint, name string, ingredients []entity.RecipeIngredient) *entity.Recipe {
	t.Helper()

	tag := testutil.SeedTag(t, gormDB, "Tag "+name, "tag-"+name)
	rec := &entity.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Image:       "images/x.png",
		Text:        "Cook.",
		CookingTime: 10,
		Tags:        []entity.Tag{{ID: tag.ID}},
		Ingredients: ingredients,
	}
	require.NoError(t, repo.CreateRecipe(context.Background(), rec))
	return rec
}

func TestAddFavoriteTwiceConflicts(t *testing.T) {
	gormDB := testutil.OpenTestDB(t)
	recipes := repository.NewRecipeRepository(gormDB)
	members := repository.NewMembershipRepository(gormDB)
	ctx := context.Background()

	alice := testutil.SeedUser(t, gormDB, "alice")
	bob := testutil.SeedUser(t, gormDB, "bob")
	flour := testutil.SeedIngredient(t, gormDB, "Flour", "g")
	rec := seedRecipe(t, gormDB, recipes, alice.ID, "Cake",
		[]entity.RecipeIngredient{{IngredientID: flour.ID, Amount: 100}})

	require.NoError(t, members.AddFavorite(ctx, bob.ID, rec.ID))
	assert.ErrorIs(t, members.AddFavorite(ctx, bob.ID, rec.ID), entity.ErrConflict)
}

func TestCartRoundTrip(t *testing.T) {
	gormDB := testutil.OpenTestDB(t)
	recipes := repository.NewRecipeRepository(gormDB)
	members := repository.NewMembershipRepository(gormDB)
	ctx := context.Background()

	alice := testutil.SeedUser(t, gormDB, "alice")
	bob := testutil.SeedUser(t, gormDB, "bob")
	flour := testutil.SeedIngredient(t, gormDB, "Flour", "g")
	rec := seedRecipe(t, gormDB, recipes, alice.ID, "Cake",
		[]entity.RecipeIngredient{{IngredientID: flour.ID, Amount: 100}})

	require.NoError(t, members.AddToCart(ctx, bob.ID, rec.ID))

	inCart, err := members.CartRecipeIDs(ctx, bob.ID, []uint{rec.ID})
	require.NoError(t, err)
	assert.True(t, inCart[rec.ID])

	require.NoError(t, members.RemoveFromCart(ctx, bob.ID, rec.ID))

	inCart, err = members.CartRecipeIDs(ctx, bob.ID, []uint{rec.ID})
	require.NoError(t, err)
	assert.False(t, inCart[rec.ID])

	// Removing again reports not-found.
	assert.ErrorIs(t, members.RemoveFromCart(ctx, bob.ID, rec.ID), entity.ErrNotFound)
}

func TestAggregateShoppingListSumsByNameAndUnit(t *testing.T) {
	gormDB := testutil.OpenTestDB(t)
	recipes := repository.NewRecipeRepository(gormDB)
	members := repository.NewMembershipRepository(gormDB)
	ctx := context.Background()

	alice := testutil.SeedUser(t, gormDB, "alice")
	salt := testutil.SeedIngredient(t, gormDB, "Salt", "g")
	sugar := testutil.SeedIngredient(t, gormDB, "Sugar", "g")

	cake := seedRecipe(t, gormDB, recipes, alice.ID, "Cake", []entity.RecipeIngredient{
		{IngredientID: salt.ID, Amount: 5},
		{IngredientID: sugar.ID, Amount: 100},
	})
	soup := seedRecipe(t, gormDB, recipes, alice.ID, "Soup", []entity.RecipeIngredient{
		{IngredientID: salt.ID, Amount: 10},
	})

	require.NoError(t, members.AddToCart(ctx, alice.ID, cake.ID))
	require.NoError(t, members.AddToCart(ctx, alice.ID, soup.ID))

	items, err := members.AggregateShoppingList(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Ordered by name; Salt contributions are summed into one line.
	assert.Equal(t, entity.ShoppingItem{Name: "Salt", MeasurementUnit: "g", Amount: 15}, items[0])
	assert.Equal(t, entity.ShoppingItem{Name: "Sugar", MeasurementUnit: "g", Amount: 100}, items[1])
}

func TestAggregateShoppingListEmptyCart(t *testing.T) {
	gormDB := testutil.OpenTestDB(t)
	members := repository.NewMembershipRepository(gormDB)

	alice := testutil.SeedUser(t, gormDB, "alice")

	items, err := members.AggregateShoppingList(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
