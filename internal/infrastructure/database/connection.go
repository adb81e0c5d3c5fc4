package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/helpdesk-ai/helpdesk/internal/shared/config"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// Open connects to PostgreSQL, applies the pool limits from cfg and pings the
// server. The caller owns the returned handle and must Close it.
func Open(ctx context.Context, cfg *config.DatabaseConfig, log logger.Interface) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger:      NewGormLogger(log, slowQueryThreshold),
		PrepareStmt: true,
		NowFunc:     func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Infow("database connection established", "host", cfg.Host, "database", cfg.Database)
	return gdb, nil
}

// Close releases the pool behind db. A nil db is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
