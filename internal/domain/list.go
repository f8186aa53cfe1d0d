package domain

import "strings"

// Sort directions accepted by every collection endpoint.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ListOptions describes how a collection should be sorted, filtered and paged.
// SortBy and Order hold the raw client values; the store validates them against
// its per-resource allow-list.
type ListOptions struct {
	SortBy   string
	Order    string
	Category *string
	Limit    *int
	Page     int
}

// WithDefaults returns a copy of o where an empty SortBy or Order is replaced
// by the given defaults.
func (o ListOptions) WithDefaults(sortBy, order string) ListOptions {
	if o.SortBy == "" {
		o.SortBy = sortBy
	}
	if o.Order == "" {
		o.Order = order
	}
	return o
}

// Offset returns the number of rows to skip for the requested page.
// Without a limit the whole collection is returned and the offset is zero.
func (o ListOptions) Offset() int {
	if o.Limit == nil {
		return 0
	}
	return o.Page * *o.Limit
}

// NormalizeOrder validates a sort direction case-insensitively and returns its
// canonical form. Returns ErrInvalidOrder for anything but asc/desc.
func NormalizeOrder(order string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(order)) {
	case OrderAsc:
		return OrderAsc, nil
	case OrderDesc:
		return OrderDesc, nil
	default:
		return "", ErrInvalidOrder
	}
}
