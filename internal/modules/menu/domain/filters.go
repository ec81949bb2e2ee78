package domain

import (
	"net/url"

	"restoBotClient/internal/shared/pagination"
	"restoBotClient/internal/shared/querystring"
)

// DishFilter narrows GET /menu/dishes. Unset fields are not sent.
type DishFilter struct {
	pagination.Params
	CategoryID  int
	Search      string
	IsAvailable *bool
}

// Values returns the query parameters for the filter.
func (f DishFilter) Values() url.Values {
	values := url.Values{}
	f.Params.Apply(values)
	querystring.SetInt(values, "category_id", f.CategoryID)
	querystring.SetString(values, "search", f.Search)
	querystring.SetBool(values, "is_available", f.IsAvailable)
	return values
}

// CategoryFilter narrows GET /menu/categories.
type CategoryFilter struct {
	pagination.Params
	IsActive *bool
}

func (f CategoryFilter) Values() url.Values {
	values := url.Values{}
	f.Params.Apply(values)
	querystring.SetBool(values, "is_active", f.IsActive)
	return values
}
