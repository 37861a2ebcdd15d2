package handler

import (
	"net/http"
	"strconv"

	"github.com/Master1941/foodgram-project-react/controller"

	"github.com/gin-gonic/gin"
)

// IngredientHandler interface
type IngredientHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
}

// ingredientHandler struct
type ingredientHandler struct {
	ingredientController controller.IngredientController
}

// NewIngredientHandler creates and returns a new IngredientHandler.
func NewIngredientHandler(ingredientController controller.IngredientController) IngredientHandler {
	return &ingredientHandler{
		ingredientController: ingredientController,
	}
}

// List returns ingredients, optionally filtered by a case-insensitive
// name prefix supplied in the `name` query parameter.
func (h *ingredientHandler) List(c *gin.Context) {
	ingredients, err := h.ingredientController.ListIngredients(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// Get returns a single ingredient by ID.
func (h *ingredientHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	ingredient, err := h.ingredientController.GetIngredient(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}
