package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vango-ui/internal/assets"
	"github.com/vango-dev/vango-ui/internal/config"
	"github.com/vango-dev/vango-ui/internal/tracing"
	"github.com/vango-dev/vango-ui/pkg/cn"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "vango-ui",
	Short:         "Serve, build and publish the board application",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: cfg.LogLevel,
		}))
		slog.SetDefault(logger)

		// Project classes from global.css take part in merges.
		merger, err := assets.Merger()
		if err != nil {
			return err
		}
		cn.SetDefault(merger)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(usersCmd)
}

// startTracing installs the configured tracer provider globally. Spans from
// the stdout exporter go to the command's stdout, away from the logs.
func startTracing(cmd *cobra.Command) (trace.TracerProvider, func(), error) {
	tp, shutdown, err := tracing.Setup(cfg, cmd.OutOrStdout())
	if err != nil {
		return nil, nil, err
	}
	otel.SetTracerProvider(tp)

	return tp, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logger.Error("tracer shutdown failed", "error", err)
		}
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
