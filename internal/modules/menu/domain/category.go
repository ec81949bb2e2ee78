package domain

// MenuCategory groups dishes. Dishes reference it by CategoryID only.
type MenuCategory struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order,omitempty"`
}

// CategoryCreate is a category without its server-assigned id.
type CategoryCreate struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order,omitempty"`
}

// CategoryUpdate is a partial category.
type CategoryUpdate struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

func (u CategoryUpdate) Apply(c *MenuCategory) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.IsActive != nil {
		c.IsActive = *u.IsActive
	}
	if u.DisplayOrder != nil {
		c.DisplayOrder = *u.DisplayOrder
	}
}
