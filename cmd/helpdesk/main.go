package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/helpdesk-ai/helpdesk/internal/interfaces/cli/kb"
	"github.com/helpdesk-ai/helpdesk/internal/interfaces/cli/migrate"
	"github.com/helpdesk-ai/helpdesk/internal/interfaces/cli/server"
	"github.com/helpdesk-ai/helpdesk/internal/interfaces/cli/worker"
	"github.com/helpdesk-ai/helpdesk/internal/shared/version"
)

// @title Helpdesk API
// @version 1.0
// @description Support ticket intake, triage and knowledge base search.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	rootCmd := &cobra.Command{
		Use:     "helpdesk",
		Short:   "Helpdesk - support ticket backend",
		Long:    `Helpdesk ingests customer email, classifies it into tickets and serves an API for support agents.`,
		Version: version.Current,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		kb.NewCommand(),
		worker.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
