package postgres

import (
	"fmt"
	"strings"

	"github.com/phrazzld/tabletop-api/internal/domain"
)

// sortSpec maps the sort keys a client may request to fixed SQL column
// expressions. Neither the key nor the direction is ever interpolated from
// client input; both are looked up here first.
type sortSpec struct {
	columns      map[string]string
	defaultKey   string
	defaultOrder string
	// tiebreak is the primary key column, always sorted ascending so that
	// paging through equal sort values is stable.
	tiebreak string
}

var reviewSort = sortSpec{
	columns: map[string]string{
		"owner":         "r.owner",
		"title":         "r.title",
		"review_id":     "r.review_id",
		"category":      "r.category",
		"created_at":    "r.created_at",
		"votes":         "r.votes",
		"comment_count": "comment_count",
		"designer":      "r.designer",
	},
	defaultKey:   "created_at",
	defaultOrder: domain.OrderDesc,
	tiebreak:     "r.review_id",
}

var commentSort = sortSpec{
	columns: map[string]string{
		"comment_id": "c.comment_id",
		"author":     "c.author",
		"review_id":  "c.review_id",
		"votes":      "c.votes",
		"created_at": "c.created_at",
		"body":       "c.body",
	},
	defaultKey:   "created_at",
	defaultOrder: domain.OrderDesc,
	tiebreak:     "c.comment_id",
}

var userSort = sortSpec{
	columns: map[string]string{
		"username": "u.username",
		"name":     "u.name",
	},
	defaultKey:   "username",
	defaultOrder: domain.OrderAsc,
	tiebreak:     "u.username",
}

// orderBy builds the ORDER BY clause for opts.
// Returns domain.ErrInvalidCriteria for a key outside the allow-list and
// domain.ErrInvalidOrder for a direction other than asc/desc.
func (s sortSpec) orderBy(opts domain.ListOptions) (string, error) {
	opts = opts.WithDefaults(s.defaultKey, s.defaultOrder)

	column, ok := s.columns[strings.ToLower(strings.TrimSpace(opts.SortBy))]
	if !ok {
		return "", domain.ErrInvalidCriteria
	}

	order, err := domain.NormalizeOrder(opts.Order)
	if err != nil {
		return "", err
	}

	clause := fmt.Sprintf("ORDER BY %s %s", column, strings.ToUpper(order))
	if column != s.tiebreak {
		clause += fmt.Sprintf(", %s ASC", s.tiebreak)
	}
	return clause, nil
}

// pageClause appends LIMIT/OFFSET placeholders for opts to args.
// Without a limit the whole collection is returned.
func pageClause(opts domain.ListOptions, args []any) (string, []any, error) {
	if opts.Page < 0 {
		return "", nil, domain.ErrInvalidPage
	}
	if opts.Limit == nil {
		return "", args, nil
	}
	if *opts.Limit < 1 {
		return "", nil, domain.ErrInvalidLimit
	}

	args = append(args, *opts.Limit, opts.Offset())
	clause := fmt.Sprintf("LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return clause, args, nil
}
