package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/tabletop-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logAppConfig records the settings that matter when diagnosing a deployment.
func logAppConfig(cfg *config.Config, logger *slog.Logger) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"rate_limit_rps", cfg.Server.RateLimitRPS,
		"cors_allowed_origins", cfg.Server.CORSAllowedOrigins)

	logger.Debug("Database configuration",
		"url", maskDatabaseURL(cfg.Database.URL),
		"max_open_conns", cfg.Database.MaxOpenConns)
}
