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

// reviewSelect returns reviews with their derived comment count. Reviews
// without comments join to no rows and report zero.
const reviewSelect = `
	SELECT r.review_id, r.title, r.review_body, r.designer, r.review_img_url,
		r.votes, r.category, r.owner, r.created_at,
		COUNT(c.comment_id)::INT AS comment_count
	FROM reviews r
	LEFT JOIN comments c ON c.review_id = r.review_id`

// reviewUpdate wraps a single-row UPDATE so the returned row carries the
// comment count like every other review read.
const reviewUpdate = `
	WITH updated AS (
		UPDATE reviews SET %s WHERE review_id = $2
		RETURNING review_id, title, review_body, designer, review_img_url,
			votes, category, owner, created_at
	)
	SELECT u.review_id, u.title, u.review_body, u.designer, u.review_img_url,
		u.votes, u.category, u.owner, u.created_at,
		(SELECT COUNT(*) FROM comments c WHERE c.review_id = u.review_id)::INT AS comment_count
	FROM updated u`

func scanReview(row rowScanner) (*domain.Review, error) {
	var review domain.Review
	err := row.Scan(
		&review.ReviewID,
		&review.Title,
		&review.ReviewBody,
		&review.Designer,
		&review.ReviewImgURL,
		&review.Votes,
		&review.Category,
		&review.Owner,
		&review.CreatedAt,
		&review.CommentCount,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// PostgresReviewStore implements the store.ReviewStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReviewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReviewStore creates a new PostgreSQL implementation of the ReviewStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresReviewStore(db store.DBTX, logger *slog.Logger) *PostgresReviewStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReviewStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_store")),
	}
}

// Ensure PostgresReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*PostgresReviewStore)(nil)

// List implements store.ReviewStore.List
func (s *PostgresReviewStore) List(ctx context.Context, opts domain.ListOptions) ([]domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	orderBy, err := reviewSort.orderBy(opts)
	if err != nil {
		return nil, err
	}

	var (
		query strings.Builder
		args  []any
	)
	query.WriteString(reviewSelect)
	if opts.Category != nil {
		args = append(args, *opts.Category)
		query.WriteString("\n\tWHERE r.category = $1")
	}
	query.WriteString("\n\tGROUP BY r.review_id\n\t")
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
		log.Error("failed to list reviews", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			log.Error("failed to scan review", slog.String("error", err.Error()))
			return nil, err
		}
		reviews = append(reviews, *review)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating reviews", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("reviews listed", slog.Int("count", len(reviews)))
	return reviews, nil
}

// GetByID implements store.ReviewStore.GetByID
func (s *PostgresReviewStore) GetByID(ctx context.Context, id int) (*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.FitsKey(id) {
		return nil, domain.ErrIDNotFound
	}

	log.Debug("retrieving review by ID", slog.Int("review_id", id))

	query := reviewSelect + "\n\tWHERE r.review_id = $1\n\tGROUP BY r.review_id"
	review, err := scanReview(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("review not found", slog.Int("review_id", id))
			return nil, domain.ErrIDNotFound
		}
		log.Error("failed to get review by ID",
			slog.Int("review_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return review, nil
}

// IncrementVotes implements store.ReviewStore.IncrementVotes
func (s *PostgresReviewStore) IncrementVotes(ctx context.Context, id int, inc *int) (*domain.Review, error) {
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

// UpdateBody implements store.ReviewStore.UpdateBody
func (s *PostgresReviewStore) UpdateBody(ctx context.Context, id int, body *string) (*domain.Review, error) {
	if body == nil {
		return s.GetByID(ctx, id)
	}
	return s.update(ctx, id, "review_body = $1", *body)
}

func (s *PostgresReviewStore) update(ctx context.Context, id int, set string, value any) (*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.FitsKey(id) {
		return nil, domain.ErrIDNotFound
	}

	review, err := scanReview(s.db.QueryRowContext(ctx, fmt.Sprintf(reviewUpdate, set), value, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("review not found for update", slog.Int("review_id", id))
			return nil, domain.ErrIDNotFound
		}
		log.Error("failed to update review",
			slog.Int("review_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("review updated",
		slog.Int("review_id", review.ReviewID),
		slog.Int("votes", review.Votes))
	return review, nil
}

// Create implements store.ReviewStore.Create
// A zero CreatedAt is replaced by the current time and an empty image URL by
// domain.DefaultReviewImageURL.
func (s *PostgresReviewStore) Create(ctx context.Context, review *domain.Review) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if review.ReviewImgURL == "" {
		review.ReviewImgURL = domain.DefaultReviewImageURL
	}

	query := `
		INSERT INTO reviews (title, review_body, designer, review_img_url, votes, category, owner, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8::TIMESTAMP, NOW()::TIMESTAMP))
		RETURNING review_id, created_at
	`
	err := s.db.QueryRowContext(ctx, query,
		review.Title,
		review.ReviewBody,
		review.Designer,
		review.ReviewImgURL,
		review.Votes,
		review.Category,
		domain.NormalizeUsername(review.Owner),
		nullTime(review.CreatedAt),
	).Scan(&review.ReviewID, &review.CreatedAt)
	if err != nil {
		log.Error("failed to create review",
			slog.String("title", review.Title),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	review.Owner = domain.NormalizeUsername(review.Owner)
	review.CommentCount = 0

	log.Debug("review created", slog.Int("review_id", review.ReviewID))
	return nil
}
