package main

import (
	"os"

	"github.com/helpdesk-ai/helpdesk/internal/interfaces/cli/worker"
)

func main() {
	cmd := worker.NewCommand()
	cmd.Use = "worker"
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
