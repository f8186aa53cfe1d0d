package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/phrazzld/tabletop-api/internal/platform/logger"
	"github.com/phrazzld/tabletop-api/internal/store"
)

// Foreign keys on comments, named in the initial migration.
const (
	commentReviewFK = "comments_review_id_fkey"
	commentAuthorFK = "comments_author_fkey"
)

const commentSelect = `
	SELECT c.comment_id, c.author, c.review_id, c.votes, c.created_at, c.body
	FROM comments c`

func scanComment(row rowScanner) (*domain.Comment, error) {
	var comment domain.Comment
	err := row.Scan(
		&comment.CommentID,
		&comment.Author,
		&comment.ReviewID,
		&comment.Votes,
		&comment.CreatedAt,
		&comment.Body,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the CommentStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// List implements store.CommentStore.List
func (s *PostgresCommentStore) List(ctx context.Context, opts domain.ListOptions) ([]domain.Comment, error) {
	return s.list(ctx, "", nil, opts)
}

// ListByReview implements store.CommentStore.ListByReview
func (s *PostgresCommentStore) ListByReview(
	ctx context.Context,
	reviewID int,
	opts domain.ListOptions,
) ([]domain.Comment, error) {
	if !domain.FitsKey(reviewID) {
		return nil, domain.ErrIDNotFound
	}
	return s.list(ctx, "c.review_id = $1", reviewID, opts)
}

// ListByAuthor implements store.CommentStore.ListByAuthor
func (s *PostgresCommentStore) ListByAuthor(
	ctx context.Context,
	username string,
	opts domain.ListOptions,
) ([]domain.Comment, error) {
	return s.list(ctx, "LOWER(c.author) = LOWER($1)", username, opts)
}

// list runs commentSelect with an optional single-parameter filter.
func (s *PostgresCommentStore) list(
	ctx context.Context,
	where string,
	arg any,
	opts domain.ListOptions,
) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	orderBy, err := commentSort.orderBy(opts)
	if err != nil {
		return nil, err
	}

	var (
		query strings.Builder
		args  []any
	)
	query.WriteString(commentSelect)
	if where != "" {
		args = append(args, arg)
		query.WriteString("\n\tWHERE ")
		query.WriteString(where)
	}
	query.WriteString("\n\t")
	query.WriteString(orderBy)

	paging, args, err := pageClause(opts, args)
	if err != nil {
		return nil, err
	}
	if paging != "" {
		query.WriteString("\n\t")
		query.WriteString(paging)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		log.Error("failed to list comments", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			log.Error("failed to scan comment", slog.String("error", err.Error()))
			return nil, err
		}
		comments = append(comments, *comment)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating comments", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("comments listed", slog.Int("count", len(comments)))
	return comments, nil
}

// GetByID implements store.CommentStore.GetByID
func (s *PostgresCommentStore) GetByID(ctx context.Context, id int) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.FitsKey(id) {
		return nil, domain.ErrIDNotFound
	}

	comment, err := scanComment(s.db.QueryRowContext(ctx, commentSelect+"\n\tWHERE c.comment_id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found", slog.Int("comment_id", id))
			return nil, domain.ErrIDNotFound
		}
		log.Error("failed to get comment by ID",
			slog.Int("comment_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return comment, nil
}

// Create implements store.CommentStore.Create
// A zero CreatedAt is replaced by the current time.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(comment.Body) == "" || strings.TrimSpace(comment.Author) == "" {
		return domain.ErrIncompleteBody
	}
	comment.Author = domain.NormalizeUsername(comment.Author)

	query := `
		INSERT INTO comments (author, review_id, votes, created_at, body)
		VALUES ($1, $2, $3, COALESCE($4::TIMESTAMP, NOW()::TIMESTAMP), $5)
		RETURNING comment_id, created_at
	`
	err := s.db.QueryRowContext(ctx, query,
		comment.Author,
		comment.ReviewID,
		comment.Votes,
		nullTime(comment.CreatedAt),
		comment.Body,
	).Scan(&comment.CommentID, &comment.CreatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during comment creation",
				slog.String("constraint", ConstraintName(err)),
				slog.Int("review_id", comment.ReviewID))
			switch ConstraintName(err) {
			case commentReviewFK:
				return domain.ErrIDNotFound
			case commentAuthorFK:
				return domain.ErrUserNotFound
			}
		}
		log.Error("failed to create comment",
			slog.Int("review_id", comment.ReviewID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("comment created",
		slog.Int("comment_id", comment.CommentID),
		slog.Int("review_id", comment.ReviewID))
	return nil
}

// IncrementVotes implements store.CommentStore.IncrementVotes
func (s *PostgresCommentStore) IncrementVotes(ctx context.Context, id int, inc *int) (*domain.Comment, error) {
	if inc == nil {
		return s.GetByID(ctx, id)
	}
	updated, err := s.update(ctx, id, "votes = votes + $1", *inc)
	if errors.Is(err, store.ErrInvalidInput) {
		// votes + inc overflowed the column
		return nil, domain.ErrInvalidVote
	}
	return updated, err
}

// UpdateBody implements store.CommentStore.UpdateBody
func (s *PostgresCommentStore) UpdateBody(ctx context.Context, id int, body *string) (*domain.Comment, error) {
	if body == nil {
		return s.GetByID(ctx, id)
	}
	return s.update(ctx, id, "body = $1", *body)
}

func (s *PostgresCommentStore) update(ctx context.Context, id int, set string, value any) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.FitsKey(id) {
		return nil, domain.ErrIDNotFound
	}

	query := fmt.Sprintf(`
		UPDATE comments SET %s WHERE comment_id = $2
		RETURNING comment_id, author, review_id, votes, created_at, body`, set)

	comment, err := scanComment(s.db.QueryRowContext(ctx, query, value, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found for update", slog.Int("comment_id", id))
			return nil, domain.ErrIDNotFound
		}
		log.Error("failed to update comment",
			slog.Int("comment_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("comment updated",
		slog.Int("comment_id", comment.CommentID),
		slog.Int("votes", comment.Votes))
	return comment, nil
}

// Delete implements store.CommentStore.Delete
func (s *PostgresCommentStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.FitsKey(id) {
		return domain.ErrIDNotFound
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		log.Error("failed to delete comment",
			slog.Int("comment_id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "comment"); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("comment not found for deletion", slog.Int("comment_id", id))
			return domain.ErrIDNotFound
		}
		return err
	}

	log.Info("comment deleted", slog.Int("comment_id", id))
	return nil
}
