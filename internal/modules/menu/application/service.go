package application

import (
	"context"
	"fmt"

	"restoBotClient/internal/modules/menu/domain"
	"restoBotClient/internal/shared/pagination"
	"restoBotClient/internal/shared/port"
	"restoBotClient/internal/shared/querystring"
)

const defaultPopularLimit = 10

// MenuService maps dish and category operations onto the backend's /menu endpoints.
// It keeps no state and returns collaborator errors untouched.
type MenuService struct {
	client port.APIClient
}

func NewMenuService(client port.APIClient) *MenuService {
	return &MenuService{client: client}
}

func dishPath(id int) string {
	return fmt.Sprintf("/menu/dishes/%d", id)
}

func categoryPath(id int) string {
	return fmt.Sprintf("/menu/categories/%d", id)
}

func (s *MenuService) ListDishes(ctx context.Context, filter domain.DishFilter) (*pagination.Page[domain.Dish], error) {
	var page pagination.Page[domain.Dish]
	if err := s.client.Get(ctx, "/menu/dishes", filter.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *MenuService) GetDish(ctx context.Context, id int) (*domain.Dish, error) {
	var dish domain.Dish
	if err := s.client.Get(ctx, dishPath(id), nil, &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (s *MenuService) CreateDish(ctx context.Context, input domain.DishCreate) (*domain.Dish, error) {
	var dish domain.Dish
	if err := s.client.Post(ctx, "/menu/dishes", input, &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

// UpdateDish sends only the fields set on input.
func (s *MenuService) UpdateDish(ctx context.Context, id int, input domain.DishUpdate) (*domain.Dish, error) {
	var dish domain.Dish
	if err := s.client.Put(ctx, dishPath(id), input, &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (s *MenuService) DeleteDish(ctx context.Context, id int) error {
	return s.client.Delete(ctx, dishPath(id))
}

// ToggleDishAvailability asks the server to flip is_available. No body is sent.
func (s *MenuService) ToggleDishAvailability(ctx context.Context, id int) (*domain.Dish, error) {
	var dish domain.Dish
	if err := s.client.Patch(ctx, dishPath(id)+"/toggle-availability", nil, &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (s *MenuService) ListCategories(ctx context.Context, filter domain.CategoryFilter) (*pagination.Page[domain.MenuCategory], error) {
	var page pagination.Page[domain.MenuCategory]
	if err := s.client.Get(ctx, "/menu/categories", filter.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *MenuService) GetCategory(ctx context.Context, id int) (*domain.MenuCategory, error) {
	var category domain.MenuCategory
	if err := s.client.Get(ctx, categoryPath(id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *MenuService) CreateCategory(ctx context.Context, input domain.CategoryCreate) (*domain.MenuCategory, error) {
	var category domain.MenuCategory
	if err := s.client.Post(ctx, "/menu/categories", input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *MenuService) UpdateCategory(ctx context.Context, id int, input domain.CategoryUpdate) (*domain.MenuCategory, error) {
	var category domain.MenuCategory
	if err := s.client.Put(ctx, categoryPath(id), input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *MenuService) DeleteCategory(ctx context.Context, id int) error {
	return s.client.Delete(ctx, categoryPath(id))
}

// PublicMenu returns categories and dishes in one call; no authentication is required.
func (s *MenuService) PublicMenu(ctx context.Context) (*domain.PublicMenu, error) {
	var menu domain.PublicMenu
	if err := s.client.Get(ctx, "/menu/public", nil, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// PopularDishes returns up to limit dishes; limit <= 0 means 10.
func (s *MenuService) PopularDishes(ctx context.Context, limit int) ([]domain.Dish, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	var dishes []domain.Dish
	if err := s.client.Get(ctx, fmt.Sprintf("/menu/popular?limit=%d", limit), nil, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (s *MenuService) FeaturedDishes(ctx context.Context) ([]domain.Dish, error) {
	var dishes []domain.Dish
	if err := s.client.Get(ctx, "/menu/featured", nil, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (s *MenuService) SearchDishes(ctx context.Context, query string) ([]domain.Dish, error) {
	var dishes []domain.Dish
	if err := s.client.Get(ctx, "/menu/search?q="+querystring.EscapeComponent(query), nil, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}
