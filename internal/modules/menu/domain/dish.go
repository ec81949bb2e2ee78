package domain

import "time"

// Dish is a menu item as served by the backend.
type Dish struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Price           float64    `json:"price"`
	CategoryID      int        `json:"category_id"`
	ImageURL        string     `json:"image_url,omitempty"`
	IsAvailable     bool       `json:"is_available"`
	PreparationTime int        `json:"preparation_time,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// DishCreate is the payload for creating a dish.
type DishCreate struct {
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	CategoryID      int     `json:"category_id"`
	ImageURL        string  `json:"image_url,omitempty"`
	IsAvailable     bool    `json:"is_available"`
	PreparationTime int     `json:"preparation_time,omitempty"`
}

// DishUpdate is a partial dish; only non-nil fields are serialized.
type DishUpdate struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	CategoryID      *int     `json:"category_id,omitempty"`
	ImageURL        *string  `json:"image_url,omitempty"`
	IsAvailable     *bool    `json:"is_available,omitempty"`
	PreparationTime *int     `json:"preparation_time,omitempty"`
}

// Apply copies the set fields of u onto d.
func (u DishUpdate) Apply(d *Dish) {
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.Description != nil {
		d.Description = *u.Description
	}
	if u.Price != nil {
		d.Price = *u.Price
	}
	if u.CategoryID != nil {
		d.CategoryID = *u.CategoryID
	}
	if u.ImageURL != nil {
		d.ImageURL = *u.ImageURL
	}
	if u.IsAvailable != nil {
		d.IsAvailable = *u.IsAvailable
	}
	if u.PreparationTime != nil {
		d.PreparationTime = *u.PreparationTime
	}
}

// PublicMenu is the unauthenticated customer menu.
type PublicMenu struct {
	Categories []MenuCategory `json:"categories"`
	Dishes     []Dish         `json:"dishes"`
}
