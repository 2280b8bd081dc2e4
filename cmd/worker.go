package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"plasmodocking/internal/config"
	"plasmodocking/internal/docking"
	"plasmodocking/internal/worker"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/metrics"
)

// setupMetricsServer serves the default Prometheus registry on addr.
func setupMetricsServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	if cfg.Worker.MetricsAddr == "" {
		return func(context.Context) {}
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.HTTP.MetricsPath, promhttp.Handler())
	server := &http.Server{
		Addr:              cfg.Worker.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info(ctx, "starting metrics server...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "could not start metrics server", zap.Error(err))
		}
	}()

	return func(ctx context.Context) {
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop metrics server", zap.Error(err))
		}
	}
}

func workerCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Starts the background docking workers",
		Run: func(cmd *cobra.Command, args []string) {
			logger.SetupWithLevel(cfg.Environment, cfg.Worker.LogLevel)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := metrics.NewMeterProvider(nil)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			workerMetrics, err := worker.NewMetrics(mp)
			if err != nil {
				logger.Fatal(ctx, "could not create worker metrics", zap.Error(err))
			}
			stopMetrics := setupMetricsServer(ctx, cfg)

			engine := docking.New(strg, nil, docking.Options{
				Tools:    cfg.Tools,
				Recorder: workerMetrics,
			})

			riverClient, err := worker.Start(ctx, strg.Pool, engine, workerMetrics, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}
			logger.Info(ctx, "workers started",
				zap.String("queue", cfg.Worker.Queue),
				zap.Int("concurrency", cfg.Worker.Concurrency))

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers gracefully", zap.Error(err))
			}
			stopMetrics(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
