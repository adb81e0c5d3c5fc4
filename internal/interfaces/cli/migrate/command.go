package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/config"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/database"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/migration"
	"github.com/helpdesk-ai/helpdesk/internal/interfaces/cli/bootstrap"
	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

var (
	opts        bootstrap.Options
	scriptsRoot string
	name        string
	steps       int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.PersistentFlags().StringVar(&scriptsRoot, "scripts", migration.DefaultScriptsRoot, "Migration scripts root used by create")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new migration files for the configured strategy.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// withDatabase opens the database, builds the manager and runs fn.
func withDatabase(cmd *cobra.Command, fn func(ctx context.Context, m *migration.Manager, db *gorm.DB, log logger.Interface) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, db, err := bootstrap.OpenDatabase(ctx, opts)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	manager, err := newManager(cfg, log)
	if err != nil {
		return err
	}

	return fn(ctx, manager, db, log)
}

func newManager(cfg *config.Config, log logger.Interface) (*migration.Manager, error) {
	return migration.NewManager(&cfg.Migration, scriptsRoot, log)
}

func runUp(cmd *cobra.Command, args []string) error {
	return withDatabase(cmd, func(ctx context.Context, m *migration.Manager, db *gorm.DB, log logger.Interface) error {
		log.Infow("running up migrations", "environment", opts.ResolveEnv())
		if err := m.Migrate(ctx, db); err != nil {
			return err
		}
		log.Infow("migrations completed successfully")
		return nil
	})
}

func runDown(cmd *cobra.Command, args []string) error {
	return withDatabase(cmd, func(ctx context.Context, m *migration.Manager, db *gorm.DB, log logger.Interface) error {
		log.Infow("running down migrations", "environment", opts.ResolveEnv(), "steps", steps)
		if err := m.MigrateDown(ctx, db, steps); err != nil {
			log.Errorw("down migration failed", "error", err)
			return fmt.Errorf("down migration failed: %w", err)
		}
		log.Infow("down migration completed successfully")
		return nil
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withDatabase(cmd, func(ctx context.Context, m *migration.Manager, db *gorm.DB, log logger.Interface) error {
		version, dirty, err := m.Version(ctx, db)
		if err != nil {
			log.Errorw("failed to get migration version", "error", err)
			return fmt.Errorf("failed to get migration version: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nMigration Status:\n")
		fmt.Fprintf(out, "  Environment:     %s\n", opts.ResolveEnv())
		fmt.Fprintf(out, "  Strategy:        %s\n", m.GetStrategy().GetName())
		fmt.Fprintf(out, "  Current Version: %d\n", version)
		if dirty {
			fmt.Fprintf(out, "  Dirty:           true\n")
		}

		return m.Status(ctx, db)
	})
}

// runCreate needs no database connection.
func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Load(opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	manager, err := newManager(cfg, log)
	if err != nil {
		return err
	}

	if err := manager.Create(name); err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created\n", name)
	return nil
}
