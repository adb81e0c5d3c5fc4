package worker

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/cache"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/database"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/mailbox"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/scheduler"
	"github.com/helpdesk-ai/helpdesk/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/helpdesk-ai/helpdesk/internal/interfaces/http"
	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
	"github.com/helpdesk-ai/helpdesk/internal/shared/version"
)

var (
	opts bootstrap.Options
	once bool
)

// NewCommand returns the mailbox worker. It polls IMAP until SIGINT or SIGTERM.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Poll the support mailbox and ingest new messages as tickets",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&once, "once", false, "Poll a single time and exit")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
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

	if !cfg.Mailbox.Enabled {
		return fmt.Errorf("mailbox.enabled is false; nothing to poll")
	}

	container, err := httpRouter.NewContainer(db, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to wire use cases: %w", err)
	}
	defer container.Close()

	var dedup mailbox.Deduplicator
	if client := container.Redis(); client != nil {
		dedup = cache.NewMessageDeduplicator(client, cache.DefaultMessageDedupTTL)
	}

	poller := mailbox.NewPoller(&cfg.Mailbox, container.IngestInbound(), dedup, log)

	log.Infow("starting mailbox worker",
		"version", version.Current,
		"mailbox", cfg.Mailbox.GetAddr(),
		"folder", cfg.Mailbox.Folder,
		"interval", cfg.Mailbox.PollInterval(),
		"dedup", dedup != nil)

	if once {
		created, err := poller.PollOnce(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %d tickets\n", created)
		return nil
	}

	manager, err := scheduler.NewSchedulerManager(log.With("component", "scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := manager.RegisterMailboxJob(scheduler.BatchJobFunc(poller.PollOnce), cfg.Mailbox.PollInterval()); err != nil {
		return fmt.Errorf("failed to register mailbox job: %w", err)
	}
	manager.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down mailbox worker...")
	return manager.Shutdown()
}
