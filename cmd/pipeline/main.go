package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rs/xid"

	"evergreen-ops/internal/config"
	"evergreen-ops/internal/domain/entity"
	"evergreen-ops/internal/domain/service/convert"
	"evergreen-ops/internal/domain/service/generator"
	"evergreen-ops/internal/domain/service/validate"
	"evergreen-ops/internal/infrastructure/economyfile"
	"evergreen-ops/internal/infrastructure/report"
	"evergreen-ops/internal/infrastructure/unity"
	"evergreen-ops/pkg/contextx"
	"evergreen-ops/pkg/logx"
)

// grantDailyBonusScript credits the daily login bonus server-side so
// clients cannot replay it.
const grantDailyBonusScript = `const { CurrenciesApi } = require("@unity-services/economy-2.4");

module.exports = async ({ context }) => {
  const currencies = new CurrenciesApi(context);
  const result = await currencies.incrementPlayerCurrencyBalance({
    currencyId: "coins",
    amount: 50,
  });
  return { granted: 50, balance: result.data.balance };
};
`

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runID := xid.New().String()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo})).
		With(slog.String(logx.FieldRunID, runID))
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)
	ctx = contextx.WithTraceID(ctx, contextx.TraceID(runID))

	if err := run(ctx, runID); err != nil {
		log.Error("pipeline failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("pipeline finished")
}

func run(ctx context.Context, runID string) error {
	startedAt := time.Now()
	log := contextx.LoggerFromContextOrDefault(ctx)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	templates, err := generator.LoadTemplates(cfg.Economy.TemplatesPath)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	doc := generator.New(templates, cfg.Economy.Version).Generate(ctx)

	// Fail closed: nothing is written or pushed past a dirty item set.
	if errs := validate.New().Check(doc.Items); len(errs) > 0 {
		for _, msg := range errs {
			log.Error("validation error", slog.String("detail", msg))
		}
		return fmt.Errorf("validation failed with %d errors", len(errs))
	}

	currencies := convert.Currencies()
	inventory := convert.Inventory(doc.Items)
	catalog := convert.Catalog(doc.Items)

	store := economyfile.NewStore(cfg.Economy.OutputDir)
	if err := writeArtifacts(store, doc, currencies, inventory, catalog); err != nil {
		return err
	}

	log.Info("artifacts written",
		slog.String("dir", store.Dir()),
		slog.Int("items", len(doc.Items)),
		slog.Int("inventory", len(inventory)),
		slog.Int("catalog", len(catalog)),
	)

	rep := report.RunReport{
		RunID:       runID,
		StartedAt:   startedAt,
		ItemCount:   len(doc.Items),
		SyncEnabled: cfg.Economy.SyncEnabled,
	}

	if cfg.Economy.SyncEnabled {
		syncAll(ctx, cfg.Unity, doc, currencies, inventory, catalog, &rep)
	}

	rep.FinishedAt = time.Now()

	writer := report.NewWriter(cfg.Economy.ReportsDir)
	if err := writer.WriteJSON(rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := writer.WriteWorkbook(doc, currencies, inventory, catalog); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

func writeArtifacts(
	store *economyfile.Store,
	doc entity.EconomyDocument,
	currencies []entity.Currency,
	inventory []entity.InventoryDefinition,
	catalog []entity.CatalogEntry,
) error {
	if err := store.WriteItems(doc.Items); err != nil {
		return fmt.Errorf("write items: %w", err)
	}
	if err := store.WriteCurrencies(currencies); err != nil {
		return fmt.Errorf("write currencies: %w", err)
	}
	if err := store.WriteInventory(inventory); err != nil {
		return fmt.Errorf("write inventory: %w", err)
	}
	if err := store.WriteCatalog(catalog); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := store.WriteDocument(doc); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	return nil
}

// syncAll pushes every collection and publishes run metadata. Remote
// failures land in the report, they never abort the run.
func syncAll(
	ctx context.Context,
	cfg config.Unity,
	doc entity.EconomyDocument,
	currencies []entity.Currency,
	inventory []entity.InventoryDefinition,
	catalog []entity.CatalogEntry,
	rep *report.RunReport,
) {
	log := contextx.LoggerFromContextOrDefault(ctx)
	client := unity.NewClient(cfg)

	rep.Collections = append(rep.Collections,
		client.SyncCurrencies(ctx, currencies),
		client.SyncInventory(ctx, inventory),
		client.SyncCatalog(ctx, catalog),
	)

	events := make([]string, 0, len(doc.SeasonalEvents))
	for _, event := range doc.SeasonalEvents {
		events = append(events, event.Key)
	}

	settings := []unity.RemoteConfigSetting{
		{Key: "economy_version", Type: "string", Value: doc.Version},
		{Key: "economy_generated_at", Type: "string", Value: doc.GeneratedAt.Format(time.RFC3339)},
		{Key: "active_events", Type: "string", Value: strings.Join(events, ",")},
	}

	configOutcome := client.PublishRemoteConfig(ctx, settings)
	log.Info("remote config published", slog.String(logx.FieldOutcome, configOutcome.Outcome.String()))

	scriptOutcome := client.DeployCloudCodeScript(ctx, "grant_daily_bonus", grantDailyBonusScript)
	log.Info("cloud code script deployed", slog.String(logx.FieldOutcome, scriptOutcome.Outcome.String()))

	counts, err := client.VerifyCounts(ctx)
	if err != nil {
		log.Warn("read-back verification failed", logx.Error(err))
		return
	}

	rep.RemoteCounts = map[string]int{
		unity.CollectionCurrencies: counts.Currencies,
		unity.CollectionInventory:  counts.Inventory,
		unity.CollectionCatalog:    counts.Catalog,
	}
}
