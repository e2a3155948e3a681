// Package cmd provides the fft_cli commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/family_finance_tracker/internal/platform/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	envFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "fft_cli",
	Short: "Maintenance and reporting for the family finance tracker",
	Long: `fft_cli manages the tracker's database schema and prints team reports
straight from the database.

Example:
  fft_cli migrate up
  fft_cli summary --team 6f1c... --date 2024-03-20`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
	},
}

// Execute runs the root command. It is called once by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load before reading the environment (default .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(summaryCmd)
}

// loadConfig reads --env-file, if given, and then the usual configuration.
func loadConfig() (*config.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is not set")
	}
	return cfg, nil
}
