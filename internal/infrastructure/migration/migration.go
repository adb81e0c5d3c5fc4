package migration

import (
	"context"
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/helpdesk-ai/helpdesk/internal/shared/config"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

// DefaultScriptsRoot is where `migrate create` writes new files, relative to
// the repository root.
const DefaultScriptsRoot = "./internal/infrastructure/migration/scripts"

// Manager runs migrations with the strategy chosen in configuration
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose unless migration.strategy is golang_migrate.
// scriptsRoot may be empty when no new migrations will be created.
func NewManager(cfg *config.MigrationConfig, scriptsRoot string, log logger.Interface) (*Manager, error) {
	if scriptsRoot == "" {
		scriptsRoot = DefaultScriptsRoot
	}
	root, err := filepath.Abs(scriptsRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to get scripts path: %w", err)
	}

	var strategy Strategy
	switch cfg.Strategy {
	case "", StrategyGoose:
		strategy = NewGooseStrategy(filepath.Join(root, "goose"), log)
	case StrategyGolangMigrate:
		strategy = NewGolangMigrateStrategy(filepath.Join(root, "golangmigrate"), log)
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", cfg.Strategy)
	}

	return NewManagerWithStrategy(strategy, log), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(ctx, db); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) MigrateDown(ctx context.Context, db *gorm.DB, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", steps)
	}
	return m.strategy.MigrateDown(ctx, db, steps)
}

func (m *Manager) Version(ctx context.Context, db *gorm.DB) (int64, bool, error) {
	return m.strategy.GetVersion(ctx, db)
}

func (m *Manager) Status(ctx context.Context, db *gorm.DB) error {
	return m.strategy.Status(ctx, db)
}

func (m *Manager) Create(name string) error {
	return m.strategy.Create(name)
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
