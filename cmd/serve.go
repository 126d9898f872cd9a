package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ocrflow/internal/api"
	"ocrflow/internal/api/handler/v1handler"
	"ocrflow/internal/artifact"
	"ocrflow/internal/config"
	"ocrflow/internal/registry"
	"ocrflow/internal/runs"
	"ocrflow/internal/serving"
	"ocrflow/internal/worker"
	"ocrflow/pkg/logger"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and provisioning workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			artifacts, err := artifact.NewStore(cfg.Artifacts.Root)
			if err != nil {
				logger.Fatal(ctx, "could not open artifact store", zap.Error(err))
			}

			registrySvc := registry.New(strg, artifacts, registry.NewOptions(cfg))
			runsSvc := runs.New(strg, artifacts, runs.NewOptions(cfg))
			servingSvc := serving.New(serving.NewOptions(cfg), strg, registrySvc)

			riverClient, err := worker.Start(ctx, cfg, strg.Pool, servingSvc)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Runs:     runsSvc,
					Registry: registrySvc,
					Serving:  servingSvc,
				},
				RiverClient: riverClient,
				DBPool:      strg.Pool,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
