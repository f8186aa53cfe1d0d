package postgres

import (
	"testing"

	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func TestSortSpecOrderBy(t *testing.T) {
	tests := []struct {
		name    string
		spec    sortSpec
		opts    domain.ListOptions
		want    string
		wantErr error
	}{
		{
			name: "review defaults",
			spec: reviewSort,
			want: "ORDER BY r.created_at DESC, r.review_id ASC",
		},
		{
			name: "review votes ascending",
			spec: reviewSort,
			opts: domain.ListOptions{SortBy: "votes", Order: "asc"},
			want: "ORDER BY r.votes ASC, r.review_id ASC",
		},
		{
			name: "key and order are case insensitive",
			spec: reviewSort,
			opts: domain.ListOptions{SortBy: "Comment_Count", Order: "DESC"},
			want: "ORDER BY comment_count DESC, r.review_id ASC",
		},
		{
			name: "primary key is not repeated",
			spec: reviewSort,
			opts: domain.ListOptions{SortBy: "review_id", Order: "asc"},
			want: "ORDER BY r.review_id ASC",
		},
		{
			name: "comment author",
			spec: commentSort,
			opts: domain.ListOptions{SortBy: "author", Order: "asc"},
			want: "ORDER BY c.author ASC, c.comment_id ASC",
		},
		{
			name: "user defaults",
			spec: userSort,
			want: "ORDER BY u.username ASC",
		},
		{
			name: "user name descending",
			spec: userSort,
			opts: domain.ListOptions{SortBy: "name", Order: "desc"},
			want: "ORDER BY u.name DESC, u.username ASC",
		},
		{
			name:    "unknown key",
			spec:    reviewSort,
			opts:    domain.ListOptions{SortBy: "bananas"},
			wantErr: domain.ErrInvalidCriteria,
		},
		{
			name:    "injection attempt",
			spec:    reviewSort,
			opts:    domain.ListOptions{SortBy: "votes; DROP TABLE reviews"},
			wantErr: domain.ErrInvalidCriteria,
		},
		{
			name:    "unknown order",
			spec:    commentSort,
			opts:    domain.ListOptions{Order: "bananas"},
			wantErr: domain.ErrInvalidOrder,
		},
		{
			name:    "criteria checked before order",
			spec:    userSort,
			opts:    domain.ListOptions{SortBy: "age", Order: "sideways"},
			wantErr: domain.ErrInvalidCriteria,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.spec.orderBy(tc.opts)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPageClause(t *testing.T) {
	t.Run("no limit", func(t *testing.T) {
		clause, args, err := pageClause(domain.ListOptions{Page: 3}, []any{"euro game"})
		require.NoError(t, err)
		assert.Empty(t, clause)
		assert.Equal(t, []any{"euro game"}, args)
	})

	t.Run("limit and page", func(t *testing.T) {
		clause, args, err := pageClause(domain.ListOptions{Limit: intPtr(12), Page: 1}, []any{"euro game"})
		require.NoError(t, err)
		assert.Equal(t, "LIMIT $2 OFFSET $3", clause)
		assert.Equal(t, []any{"euro game", 12, 12}, args)
	})

	t.Run("limit without other args", func(t *testing.T) {
		clause, args, err := pageClause(domain.ListOptions{Limit: intPtr(10)}, nil)
		require.NoError(t, err)
		assert.Equal(t, "LIMIT $1 OFFSET $2", clause)
		assert.Equal(t, []any{10, 0}, args)
	})

	t.Run("zero limit", func(t *testing.T) {
		_, _, err := pageClause(domain.ListOptions{Limit: intPtr(0)}, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidLimit)
	})

	t.Run("negative page", func(t *testing.T) {
		_, _, err := pageClause(domain.ListOptions{Limit: intPtr(5), Page: -1}, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidPage)
	})
}
