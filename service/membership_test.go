package service_test

import (
	"context"
	"testing"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/repository"
	"github.com/Master1941/foodgram-project-react/service"
	"github.com/Master1941/foodgram-project-react/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavoriteReturnsMinifiedBody(t *testing.T) {
	gormDB := testutil.OpenTestDB(t)
	svc := service.NewMembershipService(
		repository.NewMembershipRepository(gormDB),
		repository.NewRecipeRepository(gormDB),
	)
	ctx := context.Background()

	alice := testutil.SeedUser(t, gormDB, "alice")
	flour := testutil.SeedIngredient(t, gormDB, "Flour", "g")
	rec := seedCartRecipe(t, gormDB, alice.ID, "Cake",
		[]entity.RecipeIngredient{{IngredientID: flour.ID, Amount: 100}})

	minified, err := svc.AddFavorite(ctx, alice.ID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, minified.ID)
	assert.Equal(t, "Cake", minified.Name)
	assert.Equal(t, 10, minified.CookingTime)

	_, err = svc.AddFavorite(ctx, alice.ID, rec.ID)
	assert.ErrorIs(t, err, entity.ErrConflict)

	require.NoError(t, svc.RemoveFavorite(ctx, alice.ID, rec.ID))
	assert.ErrorIs(t, svc.RemoveFavorite(ctx, alice.ID, rec.ID), entity.ErrNotFound)
}

func TestMembershipAddUnknownRecipe(t *testing.T) {
	gormDB := testutil.OpenTestDB(t)
	svc := service.NewMembershipService(
		repository.NewMembershipRepository(gormDB),
		repository.NewRecipeRepository(gormDB),
	)

	alice := testutil.SeedUser(t, gormDB, "alice")

	_, err := svc.AddFavorite(context.Background(), alice.ID, 12345)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = svc.AddToCart(context.Background(), alice.ID, 12345)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
