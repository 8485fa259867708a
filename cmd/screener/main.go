// Package main provides the entry point for the candidate screener CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/candidate-screener/internal/config"
	"github.com/jonathan/candidate-screener/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	jsonLogs   bool
	debugLogs  bool

	appConfig *config.Config
	log       *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Résumé extraction and candidate scoring",
	Long: "Screener extracts structured candidate profiles from résumé documents and scores them " +
		"against job requirements, from the command line or through a REST API.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit JSON logs")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Enable debug logging")
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.LogJSON = jsonLogs
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debugLogs
	}

	l, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	appConfig = cfg
	log = l
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
