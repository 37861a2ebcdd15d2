package controller

import (
	"context"
	"fmt"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/mapper"
	"github.com/Master1941/foodgram-project-react/repository"
	"github.com/Master1941/foodgram-project-react/util"
)

// RecipeController owns the recipe write transaction and the read
// representations.
type RecipeController interface {
	ListRecipes(ctx context.Context, filter entity.RecipeFilter) ([]entity.RecipeView, int64, error)
	GetRecipe(ctx context.Context, id, viewerID uint) (*entity.RecipeView, error)
	CreateRecipe(ctx context.Context, authorID uint, req *entity.RecipeRequest) (*entity.RecipeView, error)
	UpdateRecipe(ctx context.Context, recipeID, userID uint, req *entity.RecipeRequest) (*entity.RecipeView, error)
	DeleteRecipe(ctx context.Context, recipeID, userID uint) error
}

// recipeController struct
type recipeController struct {
	recipeRepository       *repository.RecipeRepository
	tagRepository          *repository.TagRepository
	ingredientRepository   *repository.IngredientRepository
	membershipRepository   *repository.MembershipRepository
	subscriptionRepository *repository.SubscriptionRepository
	limits                 entity.LimitsConfig
	mediaRoot              string
}

// NewRecipeController creates and returns a new RecipeController.
func NewRecipeController(
	recipeRepository *repository.RecipeRepository,
	tagRepository *repository.TagRepository,
	ingredientRepository *repository.IngredientRepository,
	membershipRepository *repository.MembershipRepository,
	subscriptionRepository *repository.SubscriptionRepository,
	cfg *entity.Config,
) RecipeController {
	return &recipeController{
		recipeRepository:       recipeRepository,
		tagRepository:          tagRepository,
		ingredientRepository:   ingredientRepository,
		membershipRepository:   membershipRepository,
		subscriptionRepository: subscriptionRepository,
		limits:                 cfg.Limits,
		mediaRoot:              cfg.MediaRoot,
	}
}

// validatePayload checks the write payload against the rules that must
// reject before anything is persisted: empty or duplicated tag and
// ingredient lists, unknown ids, out-of-range amounts and cooking time.
// It returns the resolved tag entities for the association replace.
func (c *recipeController) validatePayload(ctx context.Context, req *entity.RecipeRequest) ([]entity.Tag, error) {
	if req.Name == "" {
		return nil, entity.NewValidationError("name", "name must not be empty")
	}
	if req.Text == "" {
		return nil, entity.NewValidationError("text", "text must not be empty")
	}
	if req.CookingTime < c.limits.MinCookingTime || req.CookingTime > c.limits.MaxCookingTime {
		return nil, entity.NewValidationError("cooking_time", fmt.Sprintf(
			"cooking time must be between %d and %d", c.limits.MinCookingTime, c.limits.MaxCookingTime))
	}

	if len(req.Tags) == 0 {
		return nil, entity.NewValidationError("tags", "recipe must have at least one tag")
	}
	seenTags := make(map[uint]bool, len(req.Tags))
	for _, id := range req.Tags {
		if seenTags[id] {
			return nil, entity.NewValidationError("tags", fmt.Sprintf("tag %d submitted twice", id))
		}
		seenTags[id] = true
	}
	tags, err := c.tagRepository.GetTagsByIDs(ctx, req.Tags)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(req.Tags) {
		return nil, entity.NewValidationError("tags", "unknown tag id")
	}

	if len(req.Ingredients) == 0 {
		return nil, entity.NewValidationError("ingredients", "recipe must have at least one ingredient")
	}
	ids := make([]uint, 0, len(req.Ingredients))
	seen := make(map[uint]bool, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		if seen[ing.ID] {
			return nil, entity.NewValidationError("ingredients", fmt.Sprintf("ingredient %d submitted twice", ing.ID))
		}
		seen[ing.ID] = true
		if ing.Amount < c.limits.MinAmount || ing.Amount > c.limits.MaxAmount {
			return nil, entity.NewValidationError("ingredients", fmt.Sprintf(
				"amount must be between %v and %v", c.limits.MinAmount, c.limits.MaxAmount))
		}
		ids = append(ids, ing.ID)
	}
	known, err := c.ingredientRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(known) != len(ids) {
		return nil, entity.NewValidationError("ingredients", "unknown ingredient id")
	}

	return tags, nil
}

// CreateRecipe validates the payload, stores the image and persists the
// recipe with its full child sets in one transaction.
func (c *recipeController) CreateRecipe(ctx context.Context, authorID uint, req *entity.RecipeRequest) (*entity.RecipeView, error) {
	tags, err := c.validatePayload(ctx, req)
	if err != nil {
		return nil, err
	}

	imagePath, err := util.SaveBase64Image(c.mediaRoot, req.Image)
	if err != nil {
		return nil, entity.NewValidationError("image", err.Error())
	}

	rec := c.buildEntity(authorID, req, tags, imagePath)
	if err := c.recipeRepository.CreateRecipe(ctx, rec); err != nil {
		return nil, err
	}
	return c.GetRecipe(ctx, rec.ID, authorID)
}

// UpdateRecipe is a full replace: only the recipe's author may update
// it, and the submitted child sets overwrite the stored ones entirely.
func (c *recipeController) UpdateRecipe(ctx context.Context, recipeID, userID uint, req *entity.RecipeRequest) (*entity.RecipeView, error) {
	existing, err := c.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != userID {
		return nil, entity.ErrForbidden
	}

	tags, err := c.validatePayload(ctx, req)
	if err != nil {
		return nil, err
	}

	imagePath, err := util.SaveBase64Image(c.mediaRoot, req.Image)
	if err != nil {
		return nil, entity.NewValidationError("image", err.Error())
	}

	rec := c.buildEntity(existing.AuthorID, req, tags, imagePath)
	rec.ID = recipeID
	if err := c.recipeRepository.UpdateRecipe(ctx, rec); err != nil {
		return nil, err
	}
	return c.GetRecipe(ctx, recipeID, userID)
}

func (c *recipeController) buildEntity(authorID uint, req *entity.RecipeRequest, tags []entity.Tag, imagePath string) *entity.Recipe {
	rec := &entity.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       imagePath,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Tags:        tags,
	}
	for _, ing := range req.Ingredients {
		rec.Ingredients = append(rec.Ingredients, entity.RecipeIngredient{
			IngredientID: ing.ID,
			Amount:       ing.Amount,
		})
	}
	return rec
}

// DeleteRecipe removes a recipe; only the author may delete it.
func (c *recipeController) DeleteRecipe(ctx context.Context, recipeID, userID uint) error {
	existing, err := c.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if existing.AuthorID != userID {
		return entity.ErrForbidden
	}
	return c.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (c *recipeController) GetRecipe(ctx context.Context, id, viewerID uint) (*entity.RecipeView, error) {
	rec, err := c.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := c.buildViews(ctx, []entity.Recipe{*rec}, viewerID)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (c *recipeController) ListRecipes(ctx context.Context, filter entity.RecipeFilter) ([]entity.RecipeView, int64, error) {
	recipes, count, err := c.recipeRepository.ListRecipes(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	views, err := c.buildViews(ctx, recipes, filter.UserID)
	if err != nil {
		return nil, 0, err
	}
	return views, count, nil
}

// buildViews computes the viewer-relative flags for one page of recipes
// with three batch queries instead of per-row lookups.
func (c *recipeController) buildViews(ctx context.Context, recipes []entity.Recipe, viewerID uint) ([]entity.RecipeView, error) {
	recipeIDs := make([]uint, 0, len(recipes))
	authorIDs := make([]uint, 0, len(recipes))
	for i := range recipes {
		recipeIDs = append(recipeIDs, recipes[i].ID)
		authorIDs = append(authorIDs, recipes[i].AuthorID)
	}

	favorited, err := c.membershipRepository.FavoriteRecipeIDs(ctx, viewerID, recipeIDs)
	if err != nil {
		return nil, err
	}
	inCart, err := c.membershipRepository.CartRecipeIDs(ctx, viewerID, recipeIDs)
	if err != nil {
		return nil, err
	}
	subscribed, err := c.subscriptionRepository.SubscribedAuthorIDs(ctx, viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]entity.RecipeView, 0, len(recipes))
	for i := range recipes {
		rec := &recipes[i]
		view := entity.RecipeView{
			ID:               rec.ID,
			Tags:             rec.Tags,
			Ingredients:      rec.Ingredients,
			IsFavorited:      favorited[rec.ID],
			IsInShoppingCart: inCart[rec.ID],
			Name:             rec.Name,
			Image:            rec.Image,
			Text:             rec.Text,
			CookingTime:      rec.CookingTime,
		}
		if rec.Author != nil {
			view.Author = mapper.UserEntityToView(rec.Author, subscribed[rec.AuthorID])
		}
		views = append(views, view)
	}
	return views, nil
}
