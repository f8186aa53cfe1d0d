package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/phrazzld/tabletop-api/internal/api/shared"
	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/phrazzld/tabletop-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// Query parameters understood by collection endpoints.
const (
	querySortBy   = "sort_by"
	queryOrder    = "order"
	queryCategory = "category"
	queryLimit    = "limit"
	queryPage     = "p"
)

// parseListOptions reads sorting, filtering and paging parameters from the
// query string. Sort key and order are passed through raw for the store to
// check; limit and page are rejected here when they are not integers in range.
// An empty category means no filter.
func parseListOptions(r *http.Request) (domain.ListOptions, error) {
	q := r.URL.Query()

	opts := domain.ListOptions{
		SortBy: q.Get(querySortBy),
		Order:  q.Get(queryOrder),
	}

	if category := q.Get(queryCategory); category != "" {
		opts.Category = &category
	}

	if q.Has(queryLimit) {
		limit, err := strconv.Atoi(strings.TrimSpace(q.Get(queryLimit)))
		if err != nil || limit < 1 {
			return domain.ListOptions{}, domain.ErrInvalidLimit
		}
		opts.Limit = &limit
	}

	if q.Has(queryPage) {
		page, err := strconv.Atoi(strings.TrimSpace(q.Get(queryPage)))
		if err != nil || page < 0 {
			return domain.ListOptions{}, domain.ErrInvalidPage
		}
		opts.Page = page
	}

	return opts, nil
}

// orEmpty keeps collection envelopes rendering [] rather than null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// withIDCheck parses rawID, then runs the existence check for it on ref
// concurrently with the work schedule adds to the group. The first failure
// wins.
func withIDCheck(
	r *http.Request,
	checker store.Checker,
	ref store.Ref,
	rawID string,
	schedule func(g *errgroup.Group, ctx context.Context, id int),
) error {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		return checker.EnsureIDExists(ctx, ref, rawID)
	})
	schedule(g, ctx, id)
	return g.Wait()
}

// decodeVoteIncrement reads inc_votes from the request body. A nil increment
// means the field was absent.
func decodeVoteIncrement(r *http.Request) (*int, error) {
	fields, err := shared.DecodeFields(r)
	if err != nil {
		return nil, err
	}
	return fields.VoteIncrement("inc_votes")
}

// decodeBodyUpdate reads the replacement text stored under key. A nil result
// means the field was absent.
func decodeBodyUpdate(r *http.Request, key string) (*string, error) {
	fields, err := shared.DecodeFields(r)
	if err != nil {
		return nil, err
	}
	text, ok, err := fields.Text(key)
	if err != nil || !ok {
		return nil, err
	}
	return &text, nil
}
