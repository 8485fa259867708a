package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/candidate-screener/internal/server"
	"github.com/jonathan/candidate-screener/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for extraction, scoring and document analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newService(ctx, appConfig)
	if err != nil {
		return err
	}

	port := appConfig.Port
	if servePort > 0 {
		port = servePort
	}
	srv := server.New(server.Config{Port: port, RateLimit: ratelimit.LoadConfig()}, svc, log)
	return srv.Start(ctx)
}
