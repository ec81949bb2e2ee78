package application

import (
	"context"
	"fmt"

	"restoBotClient/internal/modules/menu/domain"
)

// ImportDishes creates dishes one by one and stops at the first failure, returning the
// dishes created so far. The failure keeps the collaborator error reachable via errors.Is/As.
func (s *MenuService) ImportDishes(ctx context.Context, dishes []domain.DishCreate) ([]domain.Dish, error) {
	created := make([]domain.Dish, 0, len(dishes))
	for i, input := range dishes {
		dish, err := s.CreateDish(ctx, input)
		if err != nil {
			return created, fmt.Errorf("import dish %d (%s): %w", i+1, input.Name, err)
		}
		created = append(created, *dish)
	}
	return created, nil
}
