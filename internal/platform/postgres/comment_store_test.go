package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commentColumns = []string{"comment_id", "author", "review_id", "votes", "created_at", "body"}

func commentRow(rows *sqlmock.Rows, id int, author string, votes int) *sqlmock.Rows {
	return rows.AddRow(id, author, 2, votes, time.Date(2017, 11, 22, 12, 43, 33, 389_000_000, time.UTC), "I loved this game too!")
}

func TestNewPostgresCommentStore(t *testing.T) {
	assert.Panics(t, func() { NewPostgresCommentStore(nil, nil) })

	db, _ := newMockDB(t)
	assert.NotNil(t, NewPostgresCommentStore(db, nil).logger)
}

func TestCommentStoreList(t *testing.T) {
	ctx := context.Background()

	t.Run("all comments newest first", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(
			"FROM comments c ORDER BY c.created_at DESC, c.comment_id ASC",
		)).WillReturnRows(commentRow(commentRow(sqlmock.NewRows(commentColumns), 1, "bainesface", 16), 4, "bainesface", 16))

		comments, err := NewPostgresCommentStore(db, nil).List(ctx, domain.ListOptions{})
		require.NoError(t, err)
		assert.Len(t, comments, 2)
	})

	t.Run("by review sorted by author", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(
			"WHERE c.review_id = $1 ORDER BY c.author ASC, c.comment_id ASC",
		)).
			WithArgs(2).
			WillReturnRows(commentRow(sqlmock.NewRows(commentColumns), 1, "bainesface", 16))

		comments, err := NewPostgresCommentStore(db, nil).ListByReview(ctx, 2, domain.ListOptions{SortBy: "author", Order: "asc"})
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "bainesface", comments[0].Author)
	})

	t.Run("review without comments", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE c.review_id = $1")).
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows(commentColumns))

		comments, err := NewPostgresCommentStore(db, nil).ListByReview(ctx, 9, domain.ListOptions{})
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})

	t.Run("by author", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(c.author) = LOWER($1)")).
			WithArgs("BainesFace").
			WillReturnRows(commentRow(commentRow(sqlmock.NewRows(commentColumns), 1, "bainesface", 16), 4, "bainesface", 16))

		comments, err := NewPostgresCommentStore(db, nil).ListByAuthor(ctx, "BainesFace", domain.ListOptions{})
		require.NoError(t, err)
		assert.Len(t, comments, 2)
	})

	t.Run("invalid criteria", func(t *testing.T) {
		db, _ := newMockDB(t)
		_, err := NewPostgresCommentStore(db, nil).List(ctx, domain.ListOptions{SortBy: "title"})
		assert.ErrorIs(t, err, domain.ErrInvalidCriteria)
	})

	t.Run("query failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM comments").WillReturnError(errors.New("connection refused"))

		_, err := NewPostgresCommentStore(db, nil).List(ctx, domain.ListOptions{})
		require.Error(t, err)
		_, isAPIError := domain.AsAPIError(err)
		assert.False(t, isAPIError)
	})
}

func TestCommentStoreGetByID(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("WHERE c.comment_id = $1")

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs(1).WillReturnRows(commentRow(sqlmock.NewRows(commentColumns), 1, "bainesface", 16))

		comment, err := NewPostgresCommentStore(db, nil).GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, comment.CommentID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs(99999).WillReturnRows(sqlmock.NewRows(commentColumns))

		_, err := NewPostgresCommentStore(db, nil).GetByID(ctx, 99999)
		assert.ErrorIs(t, err, domain.ErrIDNotFound)
	})
}

func TestCommentStoreCreate(t *testing.T) {
	ctx := context.Background()
	insert := regexp.QuoteMeta("INSERT INTO comments (author, review_id, votes, created_at, body)")

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		created := time.Now().UTC().Truncate(time.Millisecond)
		mock.ExpectQuery(insert).
			WithArgs("mallionaire", 2, 0, sqlmock.AnyArg(), "This is a new comment.").
			WillReturnRows(sqlmock.NewRows([]string{"comment_id", "created_at"}).AddRow(7, created))

		comment := &domain.Comment{ReviewID: 2, Author: "Mallionaire", Body: "This is a new comment."}
		require.NoError(t, NewPostgresCommentStore(db, nil).Create(ctx, comment))
		assert.Equal(t, 7, comment.CommentID)
		assert.Equal(t, "mallionaire", comment.Author)
		assert.Equal(t, created, comment.CreatedAt)
	})

	t.Run("empty body", func(t *testing.T) {
		db, _ := newMockDB(t)
		err := NewPostgresCommentStore(db, nil).Create(ctx, &domain.Comment{ReviewID: 2, Author: "mallionaire"})
		assert.ErrorIs(t, err, domain.ErrIncompleteBody)
	})

	t.Run("missing review", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(insert).WillReturnError(&pgconn.PgError{
			Code:           foreignKeyViolationCode,
			ConstraintName: commentReviewFK,
		})

		err := NewPostgresCommentStore(db, nil).Create(ctx, &domain.Comment{ReviewID: 100, Author: "mallionaire", Body: "hi"})
		assert.ErrorIs(t, err, domain.ErrIDNotFound)
	})

	t.Run("missing author", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(insert).WillReturnError(&pgconn.PgError{
			Code:           foreignKeyViolationCode,
			ConstraintName: commentAuthorFK,
		})

		err := NewPostgresCommentStore(db, nil).Create(ctx, &domain.Comment{ReviewID: 2, Author: "rick astley", Body: "hi"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestCommentStoreMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("increment votes", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE comments SET votes = votes + $1 WHERE comment_id = $2")).
			WithArgs(1, 2).
			WillReturnRows(commentRow(sqlmock.NewRows(commentColumns), 2, "mallionaire", 14))

		comment, err := NewPostgresCommentStore(db, nil).IncrementVotes(ctx, 2, intPtr(1))
		require.NoError(t, err)
		assert.Equal(t, 14, comment.Votes)
	})

	t.Run("overflowing increment is an invalid vote", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE comments SET votes = votes + $1 WHERE comment_id = $2")).
			WithArgs(2147483647, 2).
			WillReturnError(&pgconn.PgError{Code: "22003", Message: "integer out of range"})

		comment, err := NewPostgresCommentStore(db, nil).IncrementVotes(ctx, 2, intPtr(2147483647))
		assert.Nil(t, comment)
		assert.ErrorIs(t, err, domain.ErrInvalidVote)
	})

	t.Run("update body of missing comment", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE comments SET body = $1 WHERE comment_id = $2")).
			WithArgs("New comment body here.", 99999).
			WillReturnRows(sqlmock.NewRows(commentColumns))

		body := "New comment body here."
		_, err := NewPostgresCommentStore(db, nil).UpdateBody(ctx, 99999, &body)
		assert.ErrorIs(t, err, domain.ErrIDNotFound)
	})

	t.Run("nil body returns the current row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE c.comment_id = $1")).
			WithArgs(1).
			WillReturnRows(commentRow(sqlmock.NewRows(commentColumns), 1, "bainesface", 16))

		comment, err := NewPostgresCommentStore(db, nil).UpdateBody(ctx, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, "I loved this game too!", comment.Body)
	})
}

func TestCommentStoreDelete(t *testing.T) {
	ctx := context.Background()
	del := regexp.QuoteMeta("DELETE FROM comments WHERE comment_id = $1")

	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(del).WithArgs(2).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewPostgresCommentStore(db, nil).Delete(ctx, 2))
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(del).WithArgs(55).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, NewPostgresCommentStore(db, nil).Delete(ctx, 55), domain.ErrIDNotFound)
	})

	t.Run("beyond key range", func(t *testing.T) {
		db, _ := newMockDB(t)
		assert.ErrorIs(t, NewPostgresCommentStore(db, nil).Delete(ctx, 34985739457), domain.ErrIDNotFound)
	})
}
