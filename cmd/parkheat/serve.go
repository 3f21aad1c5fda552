package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davetashner/parkheat/internal/server"
)

// serveCmd runs the preview server.
var serveCmd = &cobra.Command{
	Use:   "serve [csv]",
	Short: "Serve the dashboard and ranking API over HTTP",
	Long: `Load the dataset once and serve it until interrupted:

  GET /             the interactive dashboard
  GET /api/parks    every park as JSON
  GET /api/rank     ranked parks; ?by=<label>&top=<n>
  GET /healthz      liveness
  GET /metrics      Prometheus metrics`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	addCSVFlag(serveCmd)
	addDashboardFlags(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address (default "+server.DefaultAddr+")")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	records, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Addr:      cfg.Addr,
		Dashboard: dashboardOptions(cfg),
		RunID:     newRunID(),
	}, records)
	if err := srv.Run(ctx); err != nil {
		return exitError(ExitInvalidArgs, "parkheat: serve: %v", err)
	}
	return nil
}
