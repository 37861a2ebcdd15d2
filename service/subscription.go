package service

import (
	"context"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/mapper"
	"github.com/Master1941/foodgram-project-react/repository"
)

// SubscriptionService implements the follow/unfollow toggles and the
// subscriptions listing with embedded recipes.
type SubscriptionService interface {
	Subscribe(ctx context.Context, userID, authorID uint, recipesLimit int) (*entity.UserWithRecipes, error)
	Unsubscribe(ctx context.Context, userID, authorID uint) error
	Subscriptions(ctx context.Context, userID uint, page, limit, recipesLimit int) ([]entity.UserWithRecipes, int64, error)
}

// subscriptionService struct
type subscriptionService struct {
	subscriptionRepository *repository.SubscriptionRepository
	userRepository         *repository.UserRepository
	recipeRepository       *repository.RecipeRepository
}

// NewSubscriptionService creates and returns a new SubscriptionService.
func NewSubscriptionService(
	subscriptionRepository *repository.SubscriptionRepository,
	userRepository *repository.UserRepository,
	recipeRepository *repository.RecipeRepository,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
		recipeRepository:       recipeRepository,
	}
}

// Subscribe follows an author. Self-subscription is rejected before any
// lookup or persistence attempt.
func (s *subscriptionService) Subscribe(ctx context.Context, userID, authorID uint, recipesLimit int) (*entity.UserWithRecipes, error) {
	if userID == authorID {
		return nil, entity.NewValidationError("", "you cannot subscribe to yourself")
	}

	author, err := s.userRepository.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if err := s.subscriptionRepository.AddSubscription(ctx, userID, authorID); err != nil {
		return nil, err
	}
	return s.buildView(ctx, author, recipesLimit)
}

// Unsubscribe stops following an author. An unknown author is
// not-found; so is a missing subscription.
func (s *subscriptionService) Unsubscribe(ctx context.Context, userID, authorID uint) error {
	if _, err := s.userRepository.GetUserByID(ctx, authorID); err != nil {
		return err
	}
	return s.subscriptionRepository.RemoveSubscription(ctx, userID, authorID)
}

// Subscriptions returns one page of the authors the user follows, each
// with an optionally capped recipe list and a total recipe count.
func (s *subscriptionService) Subscriptions(ctx context.Context, userID uint, page, limit, recipesLimit int) ([]entity.UserWithRecipes, int64, error) {
	authors, count, err := s.subscriptionRepository.ListSubscribedAuthors(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	views := make([]entity.UserWithRecipes, 0, len(authors))
	for i := range authors {
		view, err := s.buildView(ctx, &authors[i], recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}
	return views, count, nil
}

func (s *subscriptionService) buildView(ctx context.Context, author *entity.User, recipesLimit int) (*entity.UserWithRecipes, error) {
	recipes, err := s.recipeRepository.ListRecipesByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := s.recipeRepository.CountRecipesByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	view := &entity.UserWithRecipes{
		// The list only ever contains subscribed authors.
		UserView:     mapper.UserEntityToView(author, true),
		Recipes:      make([]entity.RecipeMinified, 0, len(recipes)),
		RecipesCount: count,
	}
	for i := range recipes {
		view.Recipes = append(view.Recipes, mapper.RecipeEntityToMinified(&recipes[i]))
	}
	return view, nil
}
