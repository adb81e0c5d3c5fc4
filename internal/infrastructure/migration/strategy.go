package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

const (
	StrategyGoose         = "goose"
	StrategyGolangMigrate = "golang_migrate"

	gooseScriptsDir         = "scripts/goose"
	golangMigrateScriptsDir = "scripts/golangmigrate"
)

//go:embed scripts/goose/*.sql
var gooseScripts embed.FS

//go:embed scripts/golangmigrate/*.sql
var golangMigrateScripts embed.FS

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate applies all pending migrations
	Migrate(ctx context.Context, db *gorm.DB) error
	// MigrateDown rolls back the given number of migrations
	MigrateDown(ctx context.Context, db *gorm.DB, steps int) error
	// GetVersion returns the current schema version; dirty is only reported by golang-migrate
	GetVersion(ctx context.Context, db *gorm.DB) (version int64, dirty bool, err error)
	// Status logs the applied and pending migrations
	Status(ctx context.Context, db *gorm.DB) error
	// Create writes a new, empty migration into scriptsPath
	Create(name string) error
	// GetName returns the strategy name
	GetName() string
}

// GolangMigrateStrategy implements migration using golang-migrate
type GolangMigrateStrategy struct {
	scriptsPath string
	logger      logger.Interface
}

// NewGolangMigrateStrategy creates a new golang-migrate strategy. scriptsPath is
// only used by Create; migrations are read from the embedded scripts.
func NewGolangMigrateStrategy(scriptsPath string, log logger.Interface) Strategy {
	return &GolangMigrateStrategy{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.golang-migrate"),
	}
}

// Migrate executes golang-migrate migration
func (s *GolangMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	s.logger.Infow("starting golang-migrate migration")

	m, closeFn, err := s.createMigrateInstance(ctx, db)
	if err != nil {
		return err
	}
	defer closeFn()

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		s.logger.Errorw("failed to get current migration version", "error", err)
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	s.logger.Infow("current migration status",
		"version", currentVersion,
		"dirty", dirty)

	if dirty {
		s.logger.Warnw("database is in dirty state, please fix manually")
		return fmt.Errorf("database is in dirty state at version %d", currentVersion)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		s.logger.Errorw("failed to get final migration version", "error", err)
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

// GetName returns the strategy name
func (s *GolangMigrateStrategy) GetName() string {
	return StrategyGolangMigrate
}

// createMigrateInstance pins one pooled connection for the migrator, so that
// closing the migrator does not close the shared *sql.DB.
func (s *GolangMigrateStrategy) createMigrateInstance(ctx context.Context, db *gorm.DB) (*migrate.Migrate, func(), error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	source, err := iofs.New(golangMigrateScripts, golangMigrateScriptsDir)
	if err != nil {
		_ = driver.Close()
		return nil, nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = source.Close()
		_ = driver.Close()
		return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	closeFn := func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			s.logger.Warnw("failed to close migrate instance", "source_error", srcErr, "database_error", dbErr)
		}
	}
	return m, closeFn, nil
}

// MigrateDown executes down migrations
func (s *GolangMigrateStrategy) MigrateDown(ctx context.Context, db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	m, closeFn, err := s.createMigrateInstance(ctx, db)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("down migration failed", "error", err)
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

// GetVersion returns the current migration version
func (s *GolangMigrateStrategy) GetVersion(ctx context.Context, db *gorm.DB) (int64, bool, error) {
	m, closeFn, err := s.createMigrateInstance(ctx, db)
	if err != nil {
		return 0, false, err
	}
	defer closeFn()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get version: %w", err)
	}
	return int64(version), dirty, nil
}

// Status reports the version; golang-migrate keeps no per-migration history.
func (s *GolangMigrateStrategy) Status(ctx context.Context, db *gorm.DB) error {
	version, dirty, err := s.GetVersion(ctx, db)
	if err != nil {
		return err
	}

	s.logger.Infow("migration status", "version", version, "dirty", dirty)
	return nil
}

// Force sets the database migration version and clears dirty flag
func (s *GolangMigrateStrategy) Force(ctx context.Context, db *gorm.DB, version int) error {
	s.logger.Infow("forcing migration version", "version", version)

	m, closeFn, err := s.createMigrateInstance(ctx, db)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := m.Force(version); err != nil {
		s.logger.Errorw("force migration failed", "error", err)
		return fmt.Errorf("failed to force version: %w", err)
	}

	s.logger.Infow("force migration completed successfully", "version", version)
	return nil
}

func (s *GolangMigrateStrategy) Create(name string) error {
	return NewGenerator(s.scriptsPath, s.logger).CreateMigration(name)
}

type GooseStrategy struct {
	scriptsPath string
	logger      logger.Interface
}

// NewGooseStrategy creates a goose strategy. scriptsPath is only used by
// Create; migrations are read from the embedded scripts.
func NewGooseStrategy(scriptsPath string, log logger.Interface) Strategy {
	return &GooseStrategy{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) prepare(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(gooseScripts)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return sqlDB, nil
}

func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	s.logger.Infow("starting goose migration")

	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	s.logger.Infow("current migration status",
		"version", currentVersion)

	if err := goose.UpContext(ctx, sqlDB, gooseScriptsDir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get final version", "error", err)
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) GetName() string {
	return StrategyGoose
}

func (s *GooseStrategy) MigrateDown(ctx context.Context, db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.DownContext(ctx, sqlDB, gooseScriptsDir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(ctx context.Context, db *gorm.DB) (int64, bool, error) {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return 0, false, err
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return 0, false, fmt.Errorf("failed to get version: %w", err)
	}

	return version, false, nil
}

func (s *GooseStrategy) Status(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	if err := goose.StatusContext(ctx, sqlDB, gooseScriptsDir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	return nil
}

// Create writes to the scripts directory on disk, not the embedded copy; the
// binary must be rebuilt to pick the new file up.
func (s *GooseStrategy) Create(name string) error {
	goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Create(nil, s.scriptsPath, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name)
	return nil
}
