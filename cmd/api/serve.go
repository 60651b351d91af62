package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-contact-relay/internal/app"
	"go-contact-relay/pkg/logger"
	"go-contact-relay/pkg/security"
	"go-contact-relay/pkg/telemetry"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the contact relay as a long-lived HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if port != "" {
				cfg.Port = port
			}
			logger.Log.Info("Starting contact relay", "port", cfg.Port, "environment", cfg.Environment)

			shutdownTracing, err := telemetry.InitTracing(cmd.Context(), telemetry.TracingConfig{
				ServiceName: cfg.ServiceName,
				Exporter:    cfg.TracingExporter,
				Endpoint:    cfg.OTLPEndpoint,
			})
			if err != nil {
				return fmt.Errorf("failed to init tracing: %w", err)
			}

			secLog := security.InitSecurityLogger(cfg.ServiceName, cfg.Environment)
			defer secLog.Sync()

			a := app.New(cfg, secLog)
			if !a.Sender.IsConfigured() {
				logger.Log.Warn("Email provider not configured - contact submissions will fail")
			}

			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           telemetry.WrapHandler(cfg.ServiceName, a.Router),
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Log.Error("Listen failed", "error", err)
					os.Exit(1)
				}
			}()

			// Graceful Shutdown
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			logger.Log.Info("Shutting down server...")

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Log.Error("Server forced to shutdown", "error", err)
			}
			if err := shutdownTracing(ctx); err != nil {
				logger.Log.Error("Tracer shutdown failed", "error", err)
			}

			logger.Log.Info("Server exiting")
			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	return cmd
}
