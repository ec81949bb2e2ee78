package infrastructure

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"restoBotClient/internal/modules/devbackend/domain"
	menu "restoBotClient/internal/modules/menu/domain"
)

const defaultPopularLimit = 10

// DishQuery narrows ListDishes. Zero values match everything.
type DishQuery struct {
	CategoryID  int
	Search      string
	IsAvailable *bool
}

func (s *Store) ListDishes(q DishQuery) []menu.Dish {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]menu.Dish, 0, len(s.dishes))
	for _, dish := range ordered(s.dishes) {
		if q.CategoryID > 0 && dish.CategoryID != q.CategoryID {
			continue
		}
		if q.IsAvailable != nil && dish.IsAvailable != *q.IsAvailable {
			continue
		}
		if needle != "" && !dishMatches(dish, needle) {
			continue
		}
		out = append(out, dish)
	}
	return out
}

func dishMatches(dish menu.Dish, needle string) bool {
	return strings.Contains(strings.ToLower(dish.Name), needle) ||
		strings.Contains(strings.ToLower(dish.Description), needle)
}

// GetDish also counts a view, which drives PopularDishes.
func (s *Store) GetDish(id int) (menu.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dish, ok := s.dishes[id]
	if !ok {
		return menu.Dish{}, fmt.Errorf("dish %d: %w", id, domain.ErrNotFound)
	}
	s.dishViews[id]++
	return dish, nil
}

func (s *Store) CreateDish(in menu.DishCreate) (menu.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dish := menu.Dish{
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		Price:           in.Price,
		CategoryID:      in.CategoryID,
		ImageURL:        in.ImageURL,
		IsAvailable:     in.IsAvailable,
		PreparationTime: in.PreparationTime,
	}
	if err := s.validateDish(dish); err != nil {
		return menu.Dish{}, err
	}
	s.lastDishID++
	dish.ID = s.lastDishID
	now := s.now().UTC()
	dish.CreatedAt = &now
	dish.UpdatedAt = &now
	s.dishes[dish.ID] = dish
	return dish, nil
}

func (s *Store) UpdateDish(id int, in menu.DishUpdate) (menu.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dish, ok := s.dishes[id]
	if !ok {
		return menu.Dish{}, fmt.Errorf("dish %d: %w", id, domain.ErrNotFound)
	}
	in.Apply(&dish)
	dish.Name = strings.TrimSpace(dish.Name)
	if err := s.validateDish(dish); err != nil {
		return menu.Dish{}, err
	}
	now := s.now().UTC()
	dish.UpdatedAt = &now
	s.dishes[id] = dish
	return dish, nil
}

func (s *Store) DeleteDish(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dishes[id]; !ok {
		return fmt.Errorf("dish %d: %w", id, domain.ErrNotFound)
	}
	delete(s.dishes, id)
	delete(s.dishViews, id)
	return nil
}

func (s *Store) ToggleDishAvailability(id int) (menu.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dish, ok := s.dishes[id]
	if !ok {
		return menu.Dish{}, fmt.Errorf("dish %d: %w", id, domain.ErrNotFound)
	}
	dish.IsAvailable = !dish.IsAvailable
	now := s.now().UTC()
	dish.UpdatedAt = &now
	s.dishes[id] = dish
	return dish, nil
}

// validateDish expects the lock to be held.
func (s *Store) validateDish(dish menu.Dish) error {
	if dish.Name == "" {
		return fmt.Errorf("%w: dish name is required", domain.ErrInvalid)
	}
	if dish.Price <= 0 {
		return fmt.Errorf("%w: dish price must be positive", domain.ErrInvalid)
	}
	if _, ok := s.categories[dish.CategoryID]; !ok {
		return fmt.Errorf("%w: category %d does not exist", domain.ErrInvalid, dish.CategoryID)
	}
	return nil
}

func (s *Store) ListCategories(isActive *bool) []menu.MenuCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]menu.MenuCategory, 0, len(s.categories))
	for _, category := range s.sortedCategories() {
		if isActive != nil && category.IsActive != *isActive {
			continue
		}
		out = append(out, category)
	}
	return out
}

func (s *Store) GetCategory(id int) (menu.MenuCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return menu.MenuCategory{}, fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	return category, nil
}

func (s *Store) CreateCategory(in menu.CategoryCreate) (menu.MenuCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := menu.MenuCategory{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		IsActive:     in.IsActive,
		DisplayOrder: in.DisplayOrder,
	}
	if err := s.validateCategory(0, category); err != nil {
		return menu.MenuCategory{}, err
	}
	s.lastCategoryID++
	category.ID = s.lastCategoryID
	s.categories[category.ID] = category
	return category, nil
}

func (s *Store) UpdateCategory(id int, in menu.CategoryUpdate) (menu.MenuCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return menu.MenuCategory{}, fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	in.Apply(&category)
	category.Name = strings.TrimSpace(category.Name)
	if err := s.validateCategory(id, category); err != nil {
		return menu.MenuCategory{}, err
	}
	s.categories[id] = category
	return category, nil
}

// DeleteCategory refuses while dishes still reference the category.
func (s *Store) DeleteCategory(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	for _, dish := range s.dishes {
		if dish.CategoryID == id {
			return fmt.Errorf("category %d still has dishes: %w", id, domain.ErrConflict)
		}
	}
	delete(s.categories, id)
	return nil
}

func (s *Store) validateCategory(id int, category menu.MenuCategory) error {
	if category.Name == "" {
		return fmt.Errorf("%w: category name is required", domain.ErrInvalid)
	}
	for otherID, other := range s.categories {
		if otherID != id && strings.EqualFold(other.Name, category.Name) {
			return fmt.Errorf("category %q already exists: %w", category.Name, domain.ErrConflict)
		}
	}
	return nil
}

// PublicMenu lists active categories in display order with their available dishes.
func (s *Store) PublicMenu() menu.PublicMenu {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := menu.PublicMenu{Categories: []menu.MenuCategory{}, Dishes: []menu.Dish{}}
	active := make(map[int]bool)
	for _, category := range s.sortedCategories() {
		if !category.IsActive {
			continue
		}
		active[category.ID] = true
		result.Categories = append(result.Categories, category)
	}
	for _, dish := range ordered(s.dishes) {
		if dish.IsAvailable && active[dish.CategoryID] {
			result.Dishes = append(result.Dishes, dish)
		}
	}
	return result
}

// PopularDishes ranks available dishes by how often they were fetched, ties by id.
func (s *Store) PopularDishes(limit int) []menu.Dish {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]menu.Dish, 0, len(s.dishes))
	for _, dish := range ordered(s.dishes) {
		if dish.IsAvailable {
			out = append(out, dish)
		}
	}
	slices.SortStableFunc(out, func(a, b menu.Dish) int {
		return cmp.Compare(s.dishViews[b.ID], s.dishViews[a.ID])
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FeaturedDishes picks the first available dish of every active category.
func (s *Store) FeaturedDishes() []menu.Dish {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dishes := ordered(s.dishes)
	out := make([]menu.Dish, 0)
	for _, category := range s.sortedCategories() {
		if !category.IsActive {
			continue
		}
		for _, dish := range dishes {
			if dish.CategoryID == category.ID && dish.IsAvailable {
				out = append(out, dish)
				break
			}
		}
	}
	return out
}

// SearchDishes matches available dishes by name or description, case-insensitively.
func (s *Store) SearchDishes(query string) ([]menu.Dish, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrInvalid)
	}
	available := true
	return s.ListDishes(DishQuery{Search: query, IsAvailable: &available}), nil
}

func (s *Store) sortedCategories() []menu.MenuCategory {
	out := ordered(s.categories)
	slices.SortStableFunc(out, func(a, b menu.MenuCategory) int {
		return cmp.Compare(a.DisplayOrder, b.DisplayOrder)
	})
	return out
}
