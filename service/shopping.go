package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/repository"
)

// ShoppingListService renders the aggregated shopping list of a user as
// a downloadable plain-text document.
type ShoppingListService interface {
	Export(ctx context.Context, user *entity.User, now time.Time) (*entity.ShoppingListExport, error)
}

// shoppingListService struct
type shoppingListService struct {
	membershipRepository *repository.MembershipRepository
}

// NewShoppingListService creates and returns a new ShoppingListService.
func NewShoppingListService(membershipRepository *repository.MembershipRepository) ShoppingListService {
	return &shoppingListService{
		membershipRepository: membershipRepository,
	}
}

// Export aggregates the user's shopping cart into one line per
// (ingredient, unit) pair with summed amounts. An empty cart produces a
// header-only document.
func (s *shoppingListService) Export(ctx context.Context, user *entity.User, now time.Time) (*entity.ShoppingListExport, error) {
	items, err := s.membershipRepository.AggregateShoppingList(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	date := now.Format("2006-01-02")

	var b strings.Builder
	fmt.Fprintf(&b, "Список продуктов на %s:\n\n", date)
	for _, item := range items {
		fmt.Fprintf(&b, "%s: %s %s\n", item.Name, FormatAmount(item.Amount), item.MeasurementUnit)
	}

	return &entity.ShoppingListExport{
		Filename: fmt.Sprintf("%s_shopping_list_%s.txt", user.Username, date),
		Content:  b.String(),
	}, nil
}

// FormatAmount renders a summed amount with the fewest digits that
// round-trip: whole sums print without a decimal point, fractional sums
// keep only the digits they need.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
