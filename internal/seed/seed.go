// Package seed loads fixture data sets and writes them to the database.
// The "test" set backs the integration tests; "development" is a richer set
// for local use. Any other YAML file with the same shape can be loaded by path.
package seed

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/tabletop-api/internal/domain"
	"github.com/phrazzld/tabletop-api/internal/platform/logger"
	"github.com/phrazzld/tabletop-api/internal/platform/postgres"
	"github.com/phrazzld/tabletop-api/internal/store"
	"gopkg.in/yaml.v3"
)

// Names of the embedded data sets.
const (
	TestData        = "test"
	DevelopmentData = "development"
)

//go:embed data/*.yaml
var dataFS embed.FS

// ErrInvalidData is returned when a data set references rows it does not define.
var ErrInvalidData = errors.New("invalid seed data")

// Data is a complete fixture set. Comment ReviewID values are 1-based
// positions in Reviews, not database keys.
type Data struct {
	Categories []domain.Category `yaml:"categories"`
	Users      []domain.User     `yaml:"users"`
	Reviews    []domain.Review   `yaml:"reviews"`
	Comments   []domain.Comment  `yaml:"comments"`
}

// Load returns the embedded data set called name, or reads name as a YAML
// file path when it is not one of the embedded sets.
func Load(name string) (*Data, error) {
	switch name {
	case TestData, DevelopmentData:
		f, err := dataFS.Open("data/" + name + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("open embedded data set %s: %w", name, err)
		}
		defer func() { _ = f.Close() }()
		return Parse(f)
	default:
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open data file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return Parse(f)
	}
}

// Parse decodes and validates a data set. Unknown keys are rejected.
func Parse(r io.Reader) (*Data, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data Data
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

// Validate checks that every review and comment refers to a category, user
// or review defined in the same set.
func (d *Data) Validate() error {
	categories := make(map[string]bool, len(d.Categories))
	for _, c := range d.Categories {
		if c.Slug == "" {
			return fmt.Errorf("%w: category without slug", ErrInvalidData)
		}
		categories[c.Slug] = true
	}

	users := make(map[string]bool, len(d.Users))
	for _, u := range d.Users {
		name := domain.NormalizeUsername(u.Username)
		if name == "" {
			return fmt.Errorf("%w: user without username", ErrInvalidData)
		}
		users[name] = true
	}

	for i, r := range d.Reviews {
		if !categories[r.Category] {
			return fmt.Errorf("%w: review %d has unknown category %q", ErrInvalidData, i+1, r.Category)
		}
		if !users[domain.NormalizeUsername(r.Owner)] {
			return fmt.Errorf("%w: review %d has unknown owner %q", ErrInvalidData, i+1, r.Owner)
		}
	}

	for i, c := range d.Comments {
		if c.ReviewID < 1 || c.ReviewID > len(d.Reviews) {
			return fmt.Errorf("%w: comment %d refers to review %d", ErrInvalidData, i+1, c.ReviewID)
		}
		if !users[domain.NormalizeUsername(c.Author)] {
			return fmt.Errorf("%w: comment %d has unknown author %q", ErrInvalidData, i+1, c.Author)
		}
	}

	return nil
}

// Seed replaces the contents of every table with data in one transaction.
// Identity sequences restart, so review keys follow the order of data.Reviews.
func Seed(ctx context.Context, db *sql.DB, data *Data) error {
	log := logger.FromContext(ctx)

	if err := data.Validate(); err != nil {
		return err
	}

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`TRUNCATE comments, reviews, users, categories RESTART IDENTITY CASCADE`); err != nil {
			return fmt.Errorf("truncate tables: %w", err)
		}

		categoryStore := postgres.NewPostgresCategoryStore(tx, log)
		userStore := postgres.NewPostgresUserStore(tx, log)
		reviewStore := postgres.NewPostgresReviewStore(tx, log)
		commentStore := postgres.NewPostgresCommentStore(tx, log)

		for i := range data.Categories {
			if err := categoryStore.Create(ctx, &data.Categories[i]); err != nil {
				return fmt.Errorf("insert category %q: %w", data.Categories[i].Slug, err)
			}
		}

		for i := range data.Users {
			if _, err := userStore.Create(ctx, &data.Users[i]); err != nil {
				return fmt.Errorf("insert user %q: %w", data.Users[i].Username, err)
			}
		}

		reviewIDs := make([]int, len(data.Reviews))
		for i := range data.Reviews {
			review := data.Reviews[i]
			if err := reviewStore.Create(ctx, &review); err != nil {
				return fmt.Errorf("insert review %q: %w", review.Title, err)
			}
			reviewIDs[i] = review.ReviewID
		}

		for i := range data.Comments {
			comment := data.Comments[i]
			comment.ReviewID = reviewIDs[comment.ReviewID-1]
			if err := commentStore.Create(ctx, &comment); err != nil {
				return fmt.Errorf("insert comment %d: %w", i+1, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Info("database seeded",
		slog.Int("categories", len(data.Categories)),
		slog.Int("users", len(data.Users)),
		slog.Int("reviews", len(data.Reviews)),
		slog.Int("comments", len(data.Comments)))
	return nil
}
