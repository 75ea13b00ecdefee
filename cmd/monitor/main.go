package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"evergreen-ops/internal/config"
	"evergreen-ops/internal/infrastructure/economyfile"
	"evergreen-ops/internal/infrastructure/unity"
	"evergreen-ops/internal/worker"
	"evergreen-ops/pkg/contextx"
	"evergreen-ops/pkg/logx"
	"evergreen-ops/pkg/metrics"
	"evergreen-ops/pkg/probe"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))
	slog.SetDefault(log)
	ctx = contextx.WithLogger(ctx, log)

	if err := run(ctx); err != nil {
		log.Error("monitor failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("monitor stopped")
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	client := unity.NewClient(cfg.Unity)
	store := economyfile.NewStore(cfg.Economy.OutputDir)
	monitor := worker.NewMonitor(client, store, cfg.Monitor.PollInterval)

	probeServer := probe.NewServer(cfg.Monitor.ProbeAddress, probe.Options{
		Name:        cfg.App.Name,
		Version:     cfg.App.Version,
		Project:     cfg.Unity.ProjectID,
		Environment: cfg.Unity.EnvID,
	})
	metricServer := metrics.NewPrometheusServer(cfg.Monitor.MetricAddress)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error { return probeServer.Run(groupCtx) })
	group.Go(func() error { return metricServer.Run(groupCtx) })
	group.Go(func() error { return monitor.Run(groupCtx) })

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
