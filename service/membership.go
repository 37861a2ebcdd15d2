package service

import (
	"context"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/mapper"
	"github.com/Master1941/foodgram-project-react/repository"
)

// MembershipService implements the favorite and shopping-cart toggles.
// Adding is deliberately not idempotent: repeating an add reports a
// conflict instead of succeeding silently. Referencing an unknown
// recipe is a not-found client error, never a server error.
type MembershipService interface {
	AddFavorite(ctx context.Context, userID, recipeID uint) (*entity.RecipeMinified, error)
	RemoveFavorite(ctx context.Context, userID, recipeID uint) error
	AddToCart(ctx context.Context, userID, recipeID uint) (*entity.RecipeMinified, error)
	RemoveFromCart(ctx context.Context, userID, recipeID uint) error
}

// membershipService struct
type membershipService struct {
	membershipRepository *repository.MembershipRepository
	recipeRepository     *repository.RecipeRepository
}

// NewMembershipService creates and returns a new MembershipService.
func NewMembershipService(
	membershipRepository *repository.MembershipRepository,
	recipeRepository *repository.RecipeRepository,
) MembershipService {
	return &membershipService{
		membershipRepository: membershipRepository,
		recipeRepository:     recipeRepository,
	}
}

func (s *membershipService) AddFavorite(ctx context.Context, userID, recipeID uint) (*entity.RecipeMinified, error) {
	return s.add(ctx, userID, recipeID, s.membershipRepository.AddFavorite)
}

func (s *membershipService) RemoveFavorite(ctx context.Context, userID, recipeID uint) error {
	return s.membershipRepository.RemoveFavorite(ctx, userID, recipeID)
}

func (s *membershipService) AddToCart(ctx context.Context, userID, recipeID uint) (*entity.RecipeMinified, error) {
	return s.add(ctx, userID, recipeID, s.membershipRepository.AddToCart)
}

func (s *membershipService) RemoveFromCart(ctx context.Context, userID, recipeID uint) error {
	return s.membershipRepository.RemoveFromCart(ctx, userID, recipeID)
}

func (s *membershipService) add(
	ctx context.Context,
	userID, recipeID uint,
	insert func(context.Context, uint, uint) error,
) (*entity.RecipeMinified, error) {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := insert(ctx, userID, recipeID); err != nil {
		return nil, err
	}
	minified := mapper.RecipeEntityToMinified(rec)
	return &minified, nil
}
