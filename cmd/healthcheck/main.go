package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"evergreen-ops/internal/config"
	"evergreen-ops/internal/domain/service/health"
	"evergreen-ops/internal/infrastructure/economyfile"
	"evergreen-ops/pkg/contextx"
	"evergreen-ops/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))
	slog.SetDefault(log)
	ctx = contextx.WithLogger(ctx, log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load", logx.Error(err))
		os.Exit(1)
	}

	checker := health.NewChecker(economyfile.NewStore(cfg.Economy.OutputDir), cfg.Health.MaxStaleness)

	report := checker.Run(ctx)
	for _, check := range report.Checks {
		if check.Passed {
			log.Info("check passed", slog.String("name", check.Name), slog.Int("weight", check.Weight))
			continue
		}
		log.Warn("check failed",
			slog.String("name", check.Name),
			slog.Int("weight", check.Weight),
			slog.String("detail", check.Detail),
		)
	}

	if !report.Healthy(cfg.Health.Threshold) {
		log.Error("unhealthy",
			slog.Int("score", report.Score),
			slog.Int("threshold", cfg.Health.Threshold),
		)
		os.Exit(1)
	}

	log.Info("healthy",
		slog.Int("score", report.Score),
		slog.Int("threshold", cfg.Health.Threshold),
	)
}
