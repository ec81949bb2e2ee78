package infrastructure

import (
	"maps"
	"slices"
	"sync"
	"time"

	menu "restoBotClient/internal/modules/menu/domain"
	reservations "restoBotClient/internal/modules/reservations/domain"
	tables "restoBotClient/internal/modules/tables/domain"
)

// Store keeps the development backend's data in memory. All methods are safe for concurrent use
// and return copies, never references into the maps.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	categories   map[int]menu.MenuCategory
	dishes       map[int]menu.Dish
	dishViews    map[int]int
	tables       map[int]tables.Table
	reservations map[int]reservations.Reservation

	lastCategoryID    int
	lastDishID        int
	lastTableID       int
	lastReservationID int
}

// StoreOption customises a Store.
type StoreOption func(*Store)

// WithStoreClock replaces time.Now for created_at/updated_at stamps.
func WithStoreClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore returns an empty store. Use Seed for the sample restaurant.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		now:          time.Now,
		categories:   make(map[int]menu.MenuCategory),
		dishes:       make(map[int]menu.Dish),
		dishViews:    make(map[int]int),
		tables:       make(map[int]tables.Table),
		reservations: make(map[int]reservations.Reservation),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ordered returns the values of m sorted by key.
func ordered[T any](m map[int]T) []T {
	out := make([]T, 0, len(m))
	for _, id := range slices.Sorted(maps.Keys(m)) {
		out = append(out, m[id])
	}
	return out
}
