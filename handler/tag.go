package handler

import (
	"net/http"
	"strconv"

	"github.com/Master1941/foodgram-project-react/controller"

	"github.com/gin-gonic/gin"
)

// TagHandler interface
type TagHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
}

// tagHandler struct
type tagHandler struct {
	tagController controller.TagController
}

// NewTagHandler creates and returns a new TagHandler.
func NewTagHandler(tagController controller.TagController) TagHandler {
	return &tagHandler{
		tagController: tagController,
	}
}

// List returns all tags. Tags are reference data and are not paginated.
func (h *tagHandler) List(c *gin.Context) {
	tags, err := h.tagController.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// Get returns a single tag by ID.
func (h *tagHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag id"})
		return
	}

	tag, err := h.tagController.GetTag(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}
