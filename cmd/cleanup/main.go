package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"evergreen-ops/internal/config"
	"evergreen-ops/internal/domain/service/cleanup"
	"evergreen-ops/pkg/contextx"
	"evergreen-ops/pkg/logx"
	"evergreen-ops/pkg/lox"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	deleteFiles := flag.Bool("delete", false, "remove flagged files instead of only listing them")
	flag.Parse()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))
	slog.SetDefault(log)
	ctx = contextx.WithLogger(ctx, log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load", logx.Error(err))
		os.Exit(1)
	}

	sweeper := cleanup.NewSweeper(cfg.Economy.OutputDir).WithDelete(*deleteFiles)

	findings, err := sweeper.Sweep(ctx)
	if err != nil {
		log.Error("sweep failed", logx.Error(err))
		os.Exit(1)
	}

	for _, finding := range findings {
		attrs := []any{
			slog.String("path", finding.Path),
			slog.String("reason", finding.Reason),
		}
		if finding.Original != "" {
			attrs = append(attrs, slog.String("original", finding.Original))
		}
		log.Info("redundant file", attrs...)
	}

	byReason := lox.GroupBySlice(findings, func(f cleanup.Finding) string { return f.Reason })

	log.Info("sweep finished",
		slog.Int("findings", len(findings)),
		slog.Int("duplicates", len(byReason[cleanup.ReasonDuplicate])),
		slog.Int("backups", len(byReason[cleanup.ReasonBackup])),
		slog.Int("empty", len(byReason[cleanup.ReasonEmpty])),
		slog.Bool("deleted", *deleteFiles),
	)
}
