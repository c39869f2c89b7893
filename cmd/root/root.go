// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rsgrecovery/statement-analyzer/internal/config"
	"rsgrecovery/statement-analyzer/internal/logging"
	"rsgrecovery/statement-analyzer/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Output   string
	Accounts string
	Debtor   string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "statement-analyzer",
		Short: "A CLI tool to classify funding sources in bank statement text.",
		Long: `statement-analyzer reads extracted bank statement text and reports
per-processor deposit totals, linked accounts, and possible funding sources.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to statement-analyzer!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific batch command flags
	InputDir  string
	OutputDir string

	// Specific merchants/exclusions command flags
	ImportFile string
	ExportFile string
)

// GetLogger returns the shared logger wrapped in the logging interface.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// GetStore builds the settings store from the loaded configuration.
func GetStore() *store.SettingsStore {
	return store.NewSettingsStore(
		Cfg.Store.MerchantsFile,
		Cfg.Store.ExclusionsFile,
		Cfg.Store.SuggestionsFile,
		GetLogger(),
	)
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file for processor totals")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Accounts, "accounts", "a", "", "Output CSV file for linked accounts")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Debtor, "debtor", "d", "", "Debtor name to suppress from possible processors")
}
