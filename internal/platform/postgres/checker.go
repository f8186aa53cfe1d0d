package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/phrazzld/tabletop-api/internal/platform/logger"
	"github.com/phrazzld/tabletop-api/internal/store"
)

// existsQueries holds one fixed existence query per accepted store.Ref.
// Usernames compare case-insensitively.
var existsQueries = map[store.Ref]string{
	store.ReviewRef:   `SELECT EXISTS (SELECT 1 FROM reviews WHERE review_id = $1)`,
	store.CommentRef:  `SELECT EXISTS (SELECT 1 FROM comments WHERE comment_id = $1)`,
	store.UserRef:     `SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(username) = LOWER($1))`,
	store.CategoryRef: `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1)`,
}

// PostgresChecker implements the store.Checker interface
// using a PostgreSQL database as the storage backend.
type PostgresChecker struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresChecker creates a new PostgreSQL implementation of the Checker interface.
// If logger is nil, a default logger will be used.
func NewPostgresChecker(db store.DBTX, logger *slog.Logger) *PostgresChecker {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresChecker{
		db:     db,
		logger: logger.With(slog.String("component", "checker")),
	}
}

// Ensure PostgresChecker implements store.Checker interface
var _ store.Checker = (*PostgresChecker)(nil)

// EnsureIDExists implements store.Checker.EnsureIDExists
func (c *PostgresChecker) EnsureIDExists(ctx context.Context, ref store.Ref, rawID string) error {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return err
	}
	if !domain.FitsKey(id) {
		return domain.ErrIDNotFound
	}

	found, err := c.exists(ctx, ref, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrIDNotFound
	}
	return nil
}

// EnsureUserExists implements store.Checker.EnsureUserExists
func (c *PostgresChecker) EnsureUserExists(ctx context.Context, ref store.Ref, username string) error {
	if err := checkUsername(username); err != nil {
		return err
	}

	found, err := c.exists(ctx, ref, domain.NormalizeUsername(username))
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureNewUserAvailable implements store.Checker.EnsureNewUserAvailable
func (c *PostgresChecker) EnsureNewUserAvailable(ctx context.Context, ref store.Ref, username string) error {
	if err := checkUsername(username); err != nil {
		return err
	}

	found, err := c.exists(ctx, ref, domain.NormalizeUsername(username))
	if err != nil {
		return err
	}
	if found {
		return domain.ErrUsernameTaken
	}
	return nil
}

// EnsureCategoryValid implements store.Checker.EnsureCategoryValid
func (c *PostgresChecker) EnsureCategoryValid(ctx context.Context, category *string) error {
	if category == nil {
		return nil
	}
	if domain.IsNumeric(*category) {
		return domain.ErrInvalidCategory
	}

	found, err := c.exists(ctx, store.CategoryRef, *category)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (c *PostgresChecker) exists(ctx context.Context, ref store.Ref, key any) (bool, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	query, ok := existsQueries[ref]
	if !ok {
		return false, fmt.Errorf("%w: %s.%s", store.ErrUnknownRef, ref.Table, ref.Key)
	}

	var found bool
	if err := c.db.QueryRowContext(ctx, query, key).Scan(&found); err != nil {
		log.Error("existence check failed",
			slog.String("table", ref.Table),
			slog.String("error", err.Error()))
		return false, MapError(err)
	}

	log.Debug("existence check",
		slog.String("table", ref.Table),
		slog.Bool("found", found))
	return found, nil
}

func checkUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return domain.ErrIncompleteBody
	}
	if domain.IsNumeric(username) {
		return domain.ErrInvalidUsername
	}
	return nil
}
