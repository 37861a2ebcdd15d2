package handler

import (
	"net/http"
	"strconv"

	"github.com/Master1941/foodgram-project-react/controller"
	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/middleware"

	"github.com/gin-gonic/gin"
)

// UserHandler interface
type UserHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Me(c *gin.Context)
	SetPassword(c *gin.Context)
}

// userHandler struct
type userHandler struct {
	userController controller.UserController
	pageSize       int
}

// NewUserHandler creates and returns a new UserHandler.
func NewUserHandler(userController controller.UserController, cfg *entity.Config) UserHandler {
	return &userHandler{
		userController: userController,
		pageSize:       cfg.Limits.PageSize,
	}
}

// Create handles user registration.
func (h *userHandler) Create(c *gin.Context) {
	var req entity.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userController.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"email":      user.Email,
		"id":         user.ID,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}

// List returns one page of users.
func (h *userHandler) List(c *gin.Context) {
	page, limit := parsePage(c, h.pageSize)
	viewerID := middleware.CurrentUserID(c)

	views, count, err := h.userController.ListUsers(c.Request.Context(), viewerID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paginated(c, count, page, limit, views))
}

// Get returns a single user by ID.
func (h *userHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	view, err := h.userController.GetUserView(c.Request.Context(), uint(id), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Me returns the authenticated user.
func (h *userHandler) Me(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	view, err := h.userController.GetUserView(c.Request.Context(), userID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetPassword changes the authenticated user's password.
func (h *userHandler) SetPassword(c *gin.Context) {
	var req entity.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.CurrentUserID(c)
	if err := h.userController.SetPassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
