package repository_test

import (
	"context"
	"testing"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/model"
	"github.com/Master1941/foodgram-project-react/repository"
	"github.com/Master1941/foodgram-project-react/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipeRoundTrip(t *testing.T) {
	gormDB := testutil.OpenTestDB(t)
	repo := repository.NewRecipeRepository(gormDB)
	ctx := context.Background()

	author := testutil.SeedUser(t, gormDB, "alice")
	dessert := testutil.SeedTag(t, gormDB, "Dessert", "dessert")
	flour := testutil.SeedIngredient(t, gormDB, "Flour", "g")
	sugar := testutil.SeedIngredient(t, gormDB, "Sugar", "g")

	rec := &entity.Recipe{
		AuthorID:    author.ID,
		Name:        "Cake",
		Image:       "images/cake.png",
		Text:        "Mix and bake.",
		CookingTime: 40,
		Tags:        []entity.Tag{{ID: dessert.ID}},
		Ingredients: []entity.RecipeIngredient{
			{IngredientID: flour.ID, Amount: 200},
			{IngredientID: sugar.ID, Amount: 100},
		},
	}
	require.NoError(t, repo.CreateRecipe(ctx, rec))
	require.NotZero(t, rec.ID)

	got, err := repo.GetRecipeByID(ctx, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, "Cake", got.Name)
	assert.Equal(t, author.ID, got.AuthorID)
	require.NotNil(t, got.Author)
	assert.Equal(t, "alice", got.Author.Username)

	require.Len(t, got.Tags, 1)
	assert.Equal(t, "dessert", got.Tags[0].Slug)

	require.Len(t, got.Ingredients, 2)
	amounts := map[string]float64{}
	for _, ing := range got.Ingredients {
		amounts[ing.Name] = ing.Amount
	}
	assert.Equal(t, 200.0, amounts["Flour"])
	assert.Equal(t, 100.0, amounts["Sugar"])
}

func TestUpdateRecipeReplacesChildren(t *testing.T) {
	gormDB := testutil.OpenTestDB(t)
	repo := repository.NewRecipeRepository(gormDB)
	ctx := context.Background()

	author := testutil.SeedUser(t, gormDB, "alice")
	dessert := testutil.SeedTag(t, gormDB, "Dessert", "dessert")
	breakfast := testutil.SeedTag(t, gormDB, "Breakfast", "breakfast")
	flour := testutil.SeedIngredient(t, gormDB, "Flour", "g")
	sugar := testutil.SeedIngredient(t, gormDB, "Sugar", "g")
	salt := testutil.SeedIngredient(t, gormDB, "Salt", "g")

	rec := &entity.Recipe{
		AuthorID:    author.ID,
		Name:        "Cake",
		Image:       "images/cake.png",
		Text:        "Mix and bake.",
		CookingTime: 40,
		Tags:        []entity.Tag{{ID: dessert.ID}},
		Ingredients: []entity.RecipeIngredient{
			{IngredientID: flour.ID, Amount: 200},
			{IngredientID: sugar.ID, Amount: 100},
		},
	}
	require.NoError(t, repo.CreateRecipe(ctx, rec))

	updated := &entity.Recipe{
		ID:          rec.ID,
		AuthorID:    author.ID,
		Name:        "Salted Cake",
		Image:       "images/salted.png",
		Text:        "Mix, salt, bake.",
		CookingTime: 50,
		Tags:        []entity.Tag{{ID: breakfast.ID}},
		Ingredients: []entity.RecipeIngredient{
			{IngredientID: salt.ID, Amount: 5},
		},
	}
	require.NoError(t, repo.UpdateRecipe(ctx, updated))

	got, err := repo.GetRecipeByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Salted Cake", got.Name)
	assert.Equal(t, 50, got.CookingTime)

	// No residual rows from the prior version survive.
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "breakfast", got.Tags[0].Slug)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, "Salt", got.Ingredients[0].Name)
	assert.Equal(t, 5.0, got.Ingredients[0].Amount)

	var joinCount int64
	require.NoError(t, gormDB.Model(&model.RecipeIngredient{}).
		Where("recipe_id = ?", rec.ID).Count(&joinCount).Error)
	assert.Equal(t, int64(1), joinCount)
}

func TestCreateRecipeDuplicateNamePerAuthor(t *testing.T) {
	gormDB := testutil.OpenTestDB(t)
	repo := repository.NewRecipeRepository(gormDB)
	ctx := context.Background()

	author := testutil.SeedUser(t, gormDB, "alice")
	other := testutil.SeedUser(t, gormDB, "bob")
	tag := testutil.SeedTag(t, gormDB, "Dessert", "dessert")
	flour := testutil.SeedIngredient(t, gormDB, "Flour", "g")

	build := func(authorID uint) *entity.Recipe {
		return &entity.Recipe{
			AuthorID:    authorID,
			Name:        "Cake",
			Image:       "images/cake.png",
			Text:        "Bake.",
			CookingTime: 30,
			Tags:        []entity.Tag{{ID: tag.ID}},
			Ingredients: []entity.RecipeIngredient{{IngredientID: flour.ID, Amount: 100}},
		}
	}

	require.NoError(t, repo.CreateRecipe(ctx, build(author.ID)))

	err := repo.CreateRecipe(ctx, build(author.ID))
	assert.ErrorIs(t, err, entity.ErrConflict)

	// A different author may reuse the name.
	require.NoError(t, repo.CreateRecipe(ctx, build(other.ID)))
}

func TestListRecipesFilters(t *testing.T) {
	gormDB := testutil.OpenTestDB(t)
	repo := repository.NewRecipeRepository(gormDB)
	members := repository.NewMembershipRepository(gormDB)
	ctx := context.Background()

	alice := testutil.SeedUser(t, gormDB, "alice")
	bob := testutil.SeedUser(t, gormDB, "bob")
	dessert := testutil.SeedTag(t, gormDB, "Dessert", "dessert")
	lunch := testutil.SeedTag(t, gormDB, "Lunch", "lunch")
	flour := testutil.SeedIngredient(t, gormDB, "Flour", "g")

	seed := func(authorID uint, name string, tagID uint) *entity.Recipe {
		rec := &entity.Recipe{
			AuthorID:    authorID,
			Name:        name,
			Image:       "images/x.png",
			Text:        "Cook.",
			CookingTime: 10,
			Tags:        []entity.Tag{{ID: tagID}},
			Ingredients: []entity.RecipeIngredient{{IngredientID: flour.ID, Amount: 10}},
		}
		require.NoError(t, repo.CreateRecipe(ctx, rec))
		return rec
	}

	cake := seed(alice.ID, "Cake", dessert.ID)
	seed(alice.ID, "Soup", lunch.ID)
	seed(bob.ID, "Stew", lunch.ID)

	list := func(filter entity.RecipeFilter) []entity.Recipe {
		filter.Page = 1
		filter.Limit = 10
		recipes, _, err := repo.ListRecipes(ctx, filter)
		require.NoError(t, err)
		return recipes
	}

	byAuthor := list(entity.RecipeFilter{AuthorID: alice.ID})
	assert.Len(t, byAuthor, 2)

	byTag := list(entity.RecipeFilter{TagSlugs: []string{"lunch"}})
	assert.Len(t, byTag, 2)

	byBoth := list(entity.RecipeFilter{AuthorID: alice.ID, TagSlugs: []string{"lunch"}})
	require.Len(t, byBoth, 1)
	assert.Equal(t, "Soup", byBoth[0].Name)

	require.NoError(t, members.AddFavorite(ctx, bob.ID, cake.ID))
	favorited := list(entity.RecipeFilter{UserID: bob.ID, OnlyFavorited: true})
	require.Len(t, favorited, 1)
	assert.Equal(t, "Cake", favorited[0].Name)

	// Anonymous requesters get the unfiltered list.
	anonymous := list(entity.RecipeFilter{OnlyFavorited: true})
	assert.Len(t, anonymous, 3)
}

func TestDeleteRecipeRemovesMemberships(t *testing.T) {
	gormDB := testutil.OpenTestDB(t)
	repo := repository.NewRecipeRepository(gormDB)
	members := repository.NewMembershipRepository(gormDB)
	ctx := context.Background()

	alice := testutil.SeedUser(t, gormDB, "alice")
	bob := testutil.SeedUser(t, gormDB, "bob")
	tag := testutil.SeedTag(t, gormDB, "Dessert", "dessert")
	flour := testutil.SeedIngredient(t, gormDB, "Flour", "g")

	rec := &entity.Recipe{
		AuthorID:    alice.ID,
		Name:        "Cake",
		Image:       "images/cake.png",
		Text:        "Bake.",
		CookingTime: 30,
		Tags:        []entity.Tag{{ID: tag.ID}},
		Ingredients: []entity.RecipeIngredient{{IngredientID: flour.ID, Amount: 100}},
	}
	require.NoError(t, repo.CreateRecipe(ctx, rec))
	require.NoError(t, members.AddFavorite(ctx, bob.ID, rec.ID))
	require.NoError(t, members.AddToCart(ctx, bob.ID, rec.ID))

	require.NoError(t, repo.DeleteRecipe(ctx, rec.ID))

	_, err := repo.GetRecipeByID(ctx, rec.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	var favorites, cart int64
	require.NoError(t, gormDB.Model(&model.Favorite{}).Count(&favorites).Error)
	require.NoError(t, gormDB.Model(&model.ShoppingListItem{}).Count(&cart).Error)
	assert.Zero(t, favorites)
	assert.Zero(t, cart)
}
