package handler

import (
	"net/http"
	"strconv"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/middleware"
	"github.com/Master1941/foodgram-project-react/service"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler interface
type SubscriptionHandler interface {
	Subscribe(c *gin.Context)
	Unsubscribe(c *gin.Context)
	List(c *gin.Context)
}

// subscriptionHandler struct
type subscriptionHandler struct {
	subscriptionService service.SubscriptionService
	pageSize            int
}

// NewSubscriptionHandler creates and returns a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService service.SubscriptionService, cfg *entity.Config) SubscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: subscriptionService,
		pageSize:            cfg.Limits.PageSize,
	}
}

// Subscribe follows the user named in the path. The returned body
// embeds the author's recipes, optionally capped by `recipes_limit`.
func (h *subscriptionHandler) Subscribe(c *gin.Context) {
	authorID, ok := pathUserID(c)
	if !ok {
		return
	}

	view, err := h.subscriptionService.Subscribe(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		authorID,
		recipesLimit(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// Unsubscribe stops following the user named in the path.
func (h *subscriptionHandler) Unsubscribe(c *gin.Context) {
	authorID, ok := pathUserID(c)
	if !ok {
		return
	}
	if err := h.subscriptionService.Unsubscribe(c.Request.Context(), middleware.CurrentUserID(c), authorID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List returns one page of the authors the requester follows, with
// their recipes embedded.
func (h *subscriptionHandler) List(c *gin.Context) {
	page, limit := parsePage(c, h.pageSize)

	views, count, err := h.subscriptionService.Subscriptions(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		page,
		limit,
		recipesLimit(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paginated(c, count, page, limit, views))
}

func pathUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return uint(id), true
}

func recipesLimit(c *gin.Context) int {
	if v, err := strconv.Atoi(c.Query("recipes_limit")); err == nil && v > 0 {
		return v
	}
	return 0
}
