package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/phrazzld/tabletop-api/internal/config"
	"github.com/phrazzld/tabletop-api/internal/seed"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Running the binary without a
// subcommand starts the server.
func newRootCmd() *cobra.Command {
	var migrateOnStart bool

	serve := func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context(), migrateOnStart)
	}

	root := &cobra.Command{
		Use:   "tabletop-api",
		Short: "Board game review API",
		Long: `tabletop-api serves categories, reviews, comments and users for a board
game review site over a JSON HTTP API backed by PostgreSQL.

Configuration is read from config.yaml and TABLETOP_* environment variables.`,
		SilenceUsage: true,
		RunE:         serve,
	}
	root.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending migrations before serving")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  serve,
	}
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending migrations before serving")

	root.AddCommand(serveCmd, newMigrateCmd(), newSeedCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down|status|reset]",
		Short: "Manage the database schema",
		Long: `Run goose against the migrations embedded in the binary.

Commands:
  up      - Apply pending migrations (default)
  down    - Roll back the most recent migration
  status  - Show applied and pending migrations
  reset   - Roll back every migration`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: migrationCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}
			return runMigrateCommand(cmd.Context(), command)
		},
	}
}

func newSeedCmd() *cobra.Command {
	var dataSet string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Rebuild the schema and load a fixture data set",
		Long: `Reset and re-apply all migrations, then insert a fixture data set.

--data accepts "test", "development" or the path of a YAML file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), dataSet)
		},
	}
	cmd.Flags().StringVar(&dataSet, "data", seed.DevelopmentData, "Fixture data set to load")
	return cmd
}

// signalContext cancels on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func runServe(ctx context.Context, migrateOnStart bool) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return err
	}

	if migrateOnStart {
		if err := runMigrations(ctx, db, "up", log); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, stop := signalContext(ctx)
	defer stop()
	return app.Run(ctx)
}

func runMigrateCommand(ctx context.Context, command string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return runMigrations(ctx, db, command, log)
}

func runSeed(ctx context.Context, dataSet string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	data, err := seed.Load(dataSet)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := runMigrations(ctx, db, "reset", log); err != nil {
		return err
	}
	if err := runMigrations(ctx, db, "up", log); err != nil {
		return err
	}
	return seed.Seed(ctx, db, data)
}

// bootstrap loads configuration and installs the logger every command uses.
func bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := setupAppLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	logAppConfig(cfg, log)
	return cfg, log, nil
}
