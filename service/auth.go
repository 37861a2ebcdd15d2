package service

import (
	"context"
	"errors"

	"github.com/Master1941/foodgram-project-react/controller"
	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/util"
)

// AuthService interface
type AuthService interface {
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

// authService struct
type authService struct {
	userController controller.UserController
	jwtSecretKey   []byte
}

// NewAuthService creates and returns a new AuthService.
func NewAuthService(userController controller.UserController, config *entity.Config) AuthService {
	return &authService{
		userController: userController,
		jwtSecretKey:   []byte(config.JWTSecretKey),
	}
}

// Login handles user authentication. Unknown email and wrong password
// are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := a.userController.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !util.CheckPasswordHash(password, []byte(user.Password)) {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user.ID, user.Email, a.jwtSecretKey)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
