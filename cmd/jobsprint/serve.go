package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobsprint/jobsprint/internal/config"
	"github.com/jobsprint/jobsprint/internal/server"
	"github.com/jobsprint/jobsprint/internal/sweeper"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the JobSprint REST endpoints and the background subscription expiry sweep.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.NewAppConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweep := sweeper.New(srv.DB(), logger, cfg.SweepIntervalHours)
	if err := sweep.Start(ctx); err != nil {
		return fmt.Errorf("failed to start subscription sweep: %w", err)
	}
	defer sweep.Stop()

	return srv.Start()
}
