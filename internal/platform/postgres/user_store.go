package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/phrazzld/tabletop-api/internal/platform/logger"
	"github.com/phrazzld/tabletop-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// List implements store.UserStore.List
func (s *PostgresUserStore) List(ctx context.Context, opts domain.ListOptions) ([]domain.UserSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	orderBy, err := userSort.orderBy(opts)
	if err != nil {
		return nil, err
	}

	query := "SELECT u.username FROM users u\n\t" + orderBy
	paging, args, err := pageClause(opts, nil)
	if err != nil {
		return nil, err
	}
	if paging != "" {
		query += "\n\t" + paging
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]domain.UserSummary, 0)
	for rows.Next() {
		var user domain.UserSummary
		if err := rows.Scan(&user.Username); err != nil {
			log.Error("failed to scan user", slog.String("error", err.Error()))
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating users", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("users listed", slog.Int("count", len(users)))
	return users, nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if domain.IsNumeric(username) {
		return nil, domain.ErrInvalidUsername
	}

	query := `
		SELECT username, avatar_url, name
		FROM users
		WHERE LOWER(username) = LOWER($1)
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, strings.TrimSpace(username)).Scan(
		&user.Username,
		&user.AvatarURL,
		&user.Name,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("username", username))
			return nil, domain.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &user, nil
}

// Create implements store.UserStore.Create
// The username is stored lower-case and a missing avatar is replaced by
// domain.DefaultAvatarURL.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	normalized, err := domain.NewUser(user.Username, user.Name, user.AvatarURL)
	if err != nil {
		log.Warn("user validation failed during create",
			slog.String("username", user.Username),
			slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO users (username, avatar_url, name)
		VALUES ($1, $2, $3)
		RETURNING username, avatar_url, name
	`

	var created domain.User
	err = s.db.QueryRowContext(ctx, query,
		normalized.Username,
		normalized.AvatarURL,
		normalized.Name,
	).Scan(&created.Username, &created.AvatarURL, &created.Name)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("username already taken", slog.String("username", normalized.Username))
			return nil, domain.ErrUsernameTaken
		}
		log.Error("failed to create user",
			slog.String("username", normalized.Username),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("user created", slog.String("username", created.Username))
	return &created, nil
}
