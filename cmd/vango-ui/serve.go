package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/internal/handlers"
	"github.com/vango-dev/vango-ui/internal/metrics"
	"github.com/vango-dev/vango-ui/internal/site"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the bootstrapped page, its stylesheets, health and metrics",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (default: $PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if servePort != "" {
		cfg.Port = servePort
	}

	tp, stopTracing, err := startTracing(cmd)
	if err != nil {
		return err
	}
	defer stopTracing()

	var accounts *handlers.Accounts
	if cfg.AccountsEnabled() {
		var closeDB func()
		accounts, closeDB, err = openAccounts(cmd.Context())
		if err != nil {
			return err
		}
		defer closeDB()
	}

	m := metrics.New()
	builder := site.New(site.Options{
		Title:          cfg.AppTitle,
		MountID:        cfg.MountID,
		Metrics:        m,
		TracerProvider: tp,
		Logger:         logger,
	})
	h := handlers.New(cfg, builder, m, accounts, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"accounts", accounts != nil,
			"trace_exporter", cfg.TraceExporter,
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("shutdown complete")
	return nil
}
