package utils

const (
	// MaxPageLimit bounds the size of every list response
	MaxPageLimit = 200
)

// PageParams holds offset/limit request parameters
type PageParams struct {
	Offset int `form:"offset"`
	Limit  int `form:"limit"`
}

// PageResult is the {items, total} envelope returned by list operations
type PageResult[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// NormalizePage clamps offset and limit. A missing or out of range limit becomes MaxPageLimit.
func NormalizePage(offset, limit int) PageParams {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PageParams{
		Offset: offset,
		Limit:  limit,
	}
}

// Normalize returns a clamped copy of p
func (p PageParams) Normalize() PageParams {
	return NormalizePage(p.Offset, p.Limit)
}

// NewPageResult builds a result, never returning a nil items slice
func NewPageResult[T any](items []T, total int64) PageResult[T] {
	if items == nil {
		items = []T{}
	}
	return PageResult[T]{Items: items, Total: total}
}
