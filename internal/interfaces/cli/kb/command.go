package kb

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helpdesk-ai/helpdesk/internal/application/knowledge/usecases"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/database"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/repository"
	"github.com/helpdesk-ai/helpdesk/internal/interfaces/cli/bootstrap"
	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
	shareddb "github.com/helpdesk-ai/helpdesk/internal/shared/db"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

var opts bootstrap.Options

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Knowledge base tools",
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newImportCommand())

	return cmd
}

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import knowledge base documents from YAML",
		Long:  `Create or update documents from a YAML seed file. Documents are matched by title; the whole file is applied atomically.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, log, db, err := bootstrap.OpenDatabase(ctx, opts)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	uc := usecases.NewImportDocumentsUseCase(
		repository.NewKbDocumentRepository(db),
		shareddb.NewTransactionManager(db),
		log.With("component", "kb.import"),
	)

	result, err := uc.Execute(ctx, data)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %d created, %d updated\n", args[0], result.Created, result.Updated)
	return nil
}
