package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tabletop-api/internal/api/middleware"
	"github.com/phrazzld/tabletop-api/internal/config"
	"github.com/phrazzld/tabletop-api/internal/platform/postgres"
	"github.com/phrazzld/tabletop-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config

	logger *slog.Logger
	db     *sql.DB

	categoryStore store.CategoryStore
	reviewStore   store.ReviewStore
	commentStore  store.CommentStore
	userStore     store.UserStore
	checker       store.Checker

	// nil when rate limiting is disabled
	rateLimiter *middleware.RateLimiter
}

// newApplication wires the stores and the rate limiter around an open
// database pool. The application owns db from here on.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.categoryStore = postgres.NewPostgresCategoryStore(db, logger)
	app.reviewStore = postgres.NewPostgresReviewStore(db, logger)
	app.commentStore = postgres.NewPostgresCommentStore(db, logger)
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.checker = postgres.NewPostgresChecker(db, logger)

	if cfg.Server.RateLimitRPS > 0 {
		app.rateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
		logger.Info("Rate limiting enabled",
			"rps", cfg.Server.RateLimitRPS,
			"burst", cfg.Server.RateLimitBurst)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (app *application) shutdownTimeout() time.Duration {
	return time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.rateLimiter != nil {
		app.rateLimiter.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
