package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Master1941/foodgram-project-react/controller"
	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/middleware"
	"github.com/Master1941/foodgram-project-react/service"

	"github.com/gin-gonic/gin"
)

// RecipeHandler interface
type RecipeHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	AddFavorite(c *gin.Context)
	RemoveFavorite(c *gin.Context)
	AddToCart(c *gin.Context)
	RemoveFromCart(c *gin.Context)
	DownloadShoppingCart(c *gin.Context)
}

// recipeHandler struct
type recipeHandler struct {
	recipeController    controller.RecipeController
	userController      controller.UserController
	membershipService   service.MembershipService
	shoppingListService service.ShoppingListService
	pageSize            int
}

// NewRecipeHandler creates and returns a new RecipeHandler.
func NewRecipeHandler(
	recipeController controller.RecipeController,
	userController controller.UserController,
	membershipService service.MembershipService,
	shoppingListService service.ShoppingListService,
	cfg *entity.Config,
) RecipeHandler {
	return &recipeHandler{
		recipeController:    recipeController,
		userController:      userController,
		membershipService:   membershipService,
		shoppingListService: shoppingListService,
		pageSize:            cfg.Limits.PageSize,
	}
}

// List returns one page of recipes. Supported filters: author (exact
// id), tags (repeated slug), is_favorited and is_in_shopping_cart
// (booleans scoped to the authenticated requester).
func (h *recipeHandler) List(c *gin.Context) {
	page, limit := parsePage(c, h.pageSize)

	filter := entity.RecipeFilter{
		UserID:   middleware.CurrentUserID(c),
		TagSlugs: c.QueryArray("tags"),
		Page:     page,
		Limit:    limit,
	}
	if s := c.Query("author"); s != "" {
		id, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author id"})
			return
		}
		filter.AuthorID = uint(id)
	}
	filter.OnlyFavorited = boolFlag(c.Query("is_favorited"))
	filter.OnlyInCart = boolFlag(c.Query("is_in_shopping_cart"))

	views, count, err := h.recipeController.ListRecipes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paginated(c, count, page, limit, views))
}

// Get returns a single recipe.
func (h *recipeHandler) Get(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	view, err := h.recipeController.GetRecipe(c.Request.Context(), id, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Create persists a new recipe authored by the authenticated user.
func (h *recipeHandler) Create(c *gin.Context) {
	var req entity.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.recipeController.CreateRecipe(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// Update fully replaces a recipe; only its author may update it.
func (h *recipeHandler) Update(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	var req entity.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.recipeController.UpdateRecipe(c.Request.Context(), id, middleware.CurrentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Delete removes a recipe; only its author may delete it.
func (h *recipeHandler) Delete(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	if err := h.recipeController.DeleteRecipe(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddFavorite adds the recipe to the requester's favorites. Repeating
// the call reports a conflict, not a second success.
func (h *recipeHandler) AddFavorite(c *gin.Context) {
	h.addMembership(c, h.membershipService.AddFavorite)
}

// RemoveFavorite removes the recipe from the requester's favorites.
func (h *recipeHandler) RemoveFavorite(c *gin.Context) {
	h.removeMembership(c, h.membershipService.RemoveFavorite)
}

// AddToCart adds the recipe to the requester's shopping cart.
func (h *recipeHandler) AddToCart(c *gin.Context) {
	h.addMembership(c, h.membershipService.AddToCart)
}

// RemoveFromCart removes the recipe from the requester's shopping cart.
func (h *recipeHandler) RemoveFromCart(c *gin.Context) {
	h.removeMembership(c, h.membershipService.RemoveFromCart)
}

// DownloadShoppingCart streams the aggregated shopping list as an
// attached plain-text file.
func (h *recipeHandler) DownloadShoppingCart(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	user, err := h.userController.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	export, err := h.shoppingListService.Export(c.Request.Context(), user, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export.Content))
}

func (h *recipeHandler) addMembership(c *gin.Context, add func(ctx context.Context, userID, recipeID uint) (*entity.RecipeMinified, error)) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	minified, err := add(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, minified)
}

func (h *recipeHandler) removeMembership(c *gin.Context, remove func(ctx context.Context, userID, recipeID uint) error) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	if err := remove(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func recipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return 0, false
	}
	return uint(id), true
}

// boolFlag interprets the 0/1 (or true/false) filter parameters.
func boolFlag(v string) bool {
	return v == "1" || v == "true"
}
