// Package bootstrap loads configuration, logging and the database for the
// command line entry points.
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/config"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/database"
	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

// Options are the flags shared by every command.
type Options struct {
	Env        string
	ConfigPath string
}

// ResolveEnv lets the ENV variable override the --env flag.
func (o Options) ResolveEnv() string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return o.Env
}

// Load reads the configuration and initializes the process logger.
func Load(opts Options) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(opts.ConfigPath, MapEnvToGinMode(opts.ResolveEnv()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// OpenDatabase loads everything Load does and connects to PostgreSQL. The
// caller must close the returned handle with database.Close.
func OpenDatabase(ctx context.Context, opts Options) (*config.Config, logger.Interface, *gorm.DB, error) {
	cfg, log, err := Load(opts)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Open(ctx, &cfg.Database, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, db, nil
}

// MapEnvToGinMode translates deployment environments into gin modes.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return "release"
	case constants.EnvTest, "testing":
		return "test"
	default:
		return "debug"
	}
}
