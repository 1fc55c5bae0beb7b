// Package cmd contains the commands of the fintrack binary.
package cmd

import (
	"io"
	"os"

	"github.com/fintrack-app/backend/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the fintrack command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "fintrack",
		Short:        "Budget tracking and analysis",
		Long:         "fintrack stores budgets and transactions and analyzes how spending compares to the budget.",
		Version:      release,
		SilenceUsage: true,

		// Variables from .env never overwrite the environment
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return config.LoadEnv(".env")
		},
	}

	root.AddCommand(newServeCmd(), newAnalyzeCmd(), newVersionCmd())
	return root
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging configures the global logger.
//
// Logs are human readable when requested or in debug mode and JSON otherwise.
func setupLogging(c config.Config, debug bool) {
	output := io.Writer(os.Stdout)
	if c.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}
