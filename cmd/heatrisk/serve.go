// v0
// cmd/heatrisk/serve.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Takshi07/heat-stress-awareness/internal/api"
	"github.com/Takshi07/heat-stress-awareness/internal/config"
	"github.com/Takshi07/heat-stress-awareness/internal/history"
	"github.com/Takshi07/heat-stress-awareness/internal/logging"
	"github.com/Takshi07/heat-stress-awareness/internal/observability"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the assessment HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()

			lg, err := logging.New(cfg.LogFilePath)
			if err != nil {
				return err
			}
			defer lg.Close()
			log := lg.Logger
			log.Info("config loaded", "bind", cfg.BindAddr, "readTimeout", cfg.HTTPReadTimeout, "writeTimeout", cfg.HTTPWriteTimeout)

			h := &api.Handlers{
				Log:            log,
				Store:          history.NewStore(),
				Metrics:        observability.NewMetrics(),
				MaxUploadBytes: cfg.MaxUploadBytes,
			}
			srv := api.NewServer(cfg.BindAddr, log, h, cfg.HTTPReadTimeout, cfg.HTTPWriteTimeout)

			go func() {
				if err := srv.Start(); err != nil {
					log.Error("server error", "err", err)
				}
			}()
			log.Info("heatrisk service started")

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop

			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := srv.Stop(ctx); err != nil {
				log.Error("shutdown error", "err", err)
			}
			log.Info("heatrisk service stopped")
			return nil
		},
	}
}
