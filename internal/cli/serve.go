package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/collector"
	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/config"
	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/logger"
	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/server"
	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/version"
	"github.com/spf13/cobra"
)

// DefaultShutdownTimeout is the maximum time to wait for graceful shutdown
const DefaultShutdownTimeout = 30 * time.Second

type serveOptions struct {
	configPath string
	port       int
}

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the timestamp HTTP service",
		Long: `Run an HTTP server that hands out timestamps and exposes metrics:
  - GET /timestamp  - Issue a timestamp (add ?format=json for JSON)
  - GET /metrics    - Prometheus metrics
  - GET /health     - Liveness probe

Example:
  tsgen serve --config tsgen.yaml
  tsgen serve --port 9100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to YAML configuration file")
	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "port to listen on (overrides config)")

	return cmd
}

// runServe blocks until ctx is cancelled or the server fails
func runServe(ctx context.Context, opts *serveOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.port != 0 {
		cfg.HTTPPort = opts.port
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	log := logger.NewWithWriter(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	log.Info("Timestamp service starting",
		"version", version.Get().Version,
		"config_path", opts.configPath,
		"http_port", cfg.HTTPPort,
		"log_level", cfg.LogLevel)

	c := collector.NewTimestampCollector(nil, log.WithFields("component", "collector"))

	srv, err := server.NewServer(cfg, c, log.WithFields("component", "server"))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Error("Server error", "error", err)
		}
		return err

	case <-ctx.Done():
		log.Info("Received shutdown signal, starting graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error during server shutdown: %w", err)
		}

		log.Info("Server stopped gracefully")
		return nil
	}
}
