package controller

import (
	"context"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/mapper"
	"github.com/Master1941/foodgram-project-react/repository"
	"github.com/Master1941/foodgram-project-react/util"
)

// UserController interface
type UserController interface {
	CreateUser(ctx context.Context, req *entity.CreateUserRequest) (*entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context, viewerID uint, page, limit int) ([]entity.UserView, int64, error)
	GetUserView(ctx context.Context, id, viewerID uint) (*entity.UserView, error)
	SetPassword(ctx context.Context, userID uint, current, newPassword string) error
}

// userController struct
type userController struct {
	userRepository         *repository.UserRepository
	subscriptionRepository *repository.SubscriptionRepository
}

// NewUserController creates and returns a new UserController.
func NewUserController(
	userRepository *repository.UserRepository,
	subscriptionRepository *repository.SubscriptionRepository,
) UserController {
	return &userController{
		userRepository:         userRepository,
		subscriptionRepository: subscriptionRepository,
	}
}

// CreateUser registers a new user. The login character set and password
// strength are validated before the hash is stored; duplicate username
// or email surfaces from the repository as a conflict.
func (c *userController) CreateUser(ctx context.Context, req *entity.CreateUserRequest) (*entity.User, error) {
	if err := util.ValidateUsername(req.Username); err != nil {
		return nil, entity.NewValidationError("username", err.Error())
	}
	if err := util.ValidatePassword(req.Password); err != nil {
		return nil, entity.NewValidationError("password", err.Error())
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hash),
	}
	if err := c.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *userController) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return c.userRepository.GetUserByID(ctx, id)
}

func (c *userController) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.userRepository.GetUserByEmail(ctx, email)
}

// ListUsers returns one page of user views with is_subscribed computed
// relative to the viewer (0 = anonymous).
func (c *userController) ListUsers(ctx context.Context, viewerID uint, page, limit int) ([]entity.UserView, int64, error) {
	users, count, err := c.userRepository.ListUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint, 0, len(users))
	for i := range users {
		ids = append(ids, users[i].ID)
	}
	subscribed, err := c.subscriptionRepository.SubscribedAuthorIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, 0, err
	}

	views := make([]entity.UserView, 0, len(users))
	for i := range users {
		views = append(views, mapper.UserEntityToView(&users[i], subscribed[users[i].ID]))
	}
	return views, count, nil
}

func (c *userController) GetUserView(ctx context.Context, id, viewerID uint) (*entity.UserView, error) {
	user, err := c.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	subscribed, err := c.subscriptionRepository.SubscribedAuthorIDs(ctx, viewerID, []uint{id})
	if err != nil {
		return nil, err
	}
	view := mapper.UserEntityToView(user, subscribed[id])
	return &view, nil
}

// SetPassword verifies the current password and stores the new hash.
func (c *userController) SetPassword(ctx context.Context, userID uint, current, newPassword string) error {
	user, err := c.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !util.CheckPasswordHash(current, []byte(user.Password)) {
		return entity.NewValidationError("current_password", "wrong password")
	}
	if err := util.ValidatePassword(newPassword); err != nil {
		return entity.NewValidationError("new_password", err.Error())
	}
	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return c.userRepository.UpdatePassword(ctx, userID, hash)
}
