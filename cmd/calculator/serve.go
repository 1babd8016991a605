package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr, _ = cmd.Flags().GetString("addr")
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat, _ = cmd.Flags().GetString("log-format")
			}

			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("addr", config.Default().Addr, "listen address (overrides HTTP_ADDR)")
	cmd.Flags().String("log-format", config.Default().LogFormat, "json or console (overrides LOG_FORMAT)")

	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := observability.Setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		_ = shutdown(flushCtx)
	}()

	if err := calculator.InitMetrics(); err != nil {
		return err
	}

	svc := calculator.NewService(calculator.New())
	return server.Run(ctx, cfg.Addr, server.NewRouter(svc), cfg.ShutdownTimeout)
}
