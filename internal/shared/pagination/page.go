package pagination

import (
	"net/url"

	"restoBotClient/internal/shared/querystring"
)

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Page is the paginated envelope returned by list endpoints.
type Page[T any] struct {
	Data  []T `json:"data"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Params carries the paging part of a list filter. Zero values mean "let the server decide".
type Params struct {
	Page int
	Size int
}

// Apply writes page/size into values, skipping unset fields.
func (p Params) Apply(values url.Values) {
	querystring.SetInt(values, "page", p.Page)
	querystring.SetInt(values, "size", p.Size)
}

// Normalize returns a copy with defaults and bounds applied.
func (p Params) Normalize() Params {
	normalized := p
	if normalized.Page <= 0 {
		normalized.Page = 1
	}
	if normalized.Size <= 0 {
		normalized.Size = DefaultSize
	}
	if normalized.Size > MaxSize {
		normalized.Size = MaxSize
	}
	return normalized
}

// Slice cuts the requested page out of items and fills in the metadata.
func Slice[T any](items []T, params Params) Page[T] {
	normalized := params.Normalize()
	total := len(items)
	pages := (total + normalized.Size - 1) / normalized.Size

	// Compare pages before multiplying so huge page numbers cannot overflow.
	start := total
	if normalized.Page-1 < pages {
		start = (normalized.Page - 1) * normalized.Size
	}
	end := start + normalized.Size
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, items[start:end])
	return Page[T]{Data: data, Page: normalized.Page, Size: normalized.Size, Total: total, Pages: pages}
}
