package unity

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	cache "github.com/patrickmn/go-cache"

	"evergreen-ops/internal/domain/entity"
	"evergreen-ops/pkg/logx"
)

const (
	CollectionCurrencies = "currencies"
	CollectionInventory  = "inventory"
	CollectionCatalog    = "catalog"
)

// SyncCurrencies pushes the fixed currency schema.
func (c *Client) SyncCurrencies(ctx context.Context, currencies []entity.Currency) entity.SyncResult {
	records := make([]record, 0, len(currencies))
	for _, currency := range currencies {
		records = append(records, record{id: currency.ID, body: currency})
	}

	return c.syncCollection(ctx, CollectionCurrencies, records)
}

// SyncInventory pushes inventory definitions.
func (c *Client) SyncInventory(ctx context.Context, definitions []entity.InventoryDefinition) entity.SyncResult {
	records := make([]record, 0, len(definitions))
	for _, definition := range definitions {
		records = append(records, record{id: definition.ID, body: definition})
	}

	return c.syncCollection(ctx, CollectionInventory, records)
}

// SyncCatalog pushes catalog entries.
func (c *Client) SyncCatalog(ctx context.Context, entries []entity.CatalogEntry) entity.SyncResult {
	records := make([]record, 0, len(entries))
	for _, entry := range entries {
		records = append(records, record{id: entry.ID, body: entry})
	}

	return c.syncCollection(ctx, CollectionCatalog, records)
}

type record struct {
	id   string
	body any
}

// syncCollection is best-effort: every record gets its shot, failures
// are recorded and the batch moves on. There is no rollback; the
// remote service upserts idempotently.
func (c *Client) syncCollection(ctx context.Context, collection string, records []record) entity.SyncResult {
	result := entity.SyncResult{Collection: collection}
	url := c.economyPath(collection)

	for _, rec := range records {
		if _, found := c.seenExisting.Get(collection + "/" + rec.id); found {
			result.Add(entity.RecordResult{ID: rec.id, Outcome: entity.SyncAlreadyExists, Detail: "seen this session"})
			continue
		}

		if err := c.waitForNextSlot(ctx); err != nil {
			result.Add(entity.RecordResult{ID: rec.id, Outcome: entity.SyncFailed, Detail: err.Error()})
			continue
		}

		outcome := c.pushRecord(ctx, url, rec)
		result.Add(outcome)

		syncOutcomes.WithLabelValues(collection, outcome.Outcome.String()).Inc()

		if outcome.Outcome == entity.SyncAlreadyExists {
			c.seenExisting.Set(collection+"/"+rec.id, true, cache.DefaultExpiration)
		}
	}

	logger(ctx).Info("collection sync finished",
		slog.String(logx.FieldCollection, collection),
		"created", result.Created,
		"already_exists", result.AlreadyExists,
		"auth_required", result.AuthRequired,
		"failed", result.Failed,
	)

	return result
}

func (c *Client) pushRecord(ctx context.Context, url string, rec record) entity.RecordResult {
	result, err := c.do(ctx, http.MethodPost, url, rec.body)
	if err != nil {
		logger(ctx).Error("push failed", slog.String(logx.FieldItemID, rec.id), logx.Error(err))
		return entity.RecordResult{ID: rec.id, Outcome: entity.SyncFailed, Detail: err.Error()}
	}

	switch result.statusCode {
	case http.StatusOK, http.StatusCreated:
		logger(ctx).Info("record created", slog.String(logx.FieldItemID, rec.id))
		return entity.RecordResult{ID: rec.id, Outcome: entity.SyncCreated}

	case http.StatusConflict:
		logger(ctx).Info("record already exists", slog.String(logx.FieldItemID, rec.id))
		return entity.RecordResult{ID: rec.id, Outcome: entity.SyncAlreadyExists}

	case http.StatusUnauthorized:
		logger(ctx).Warn("authentication required", slog.String(logx.FieldItemID, rec.id))
		return entity.RecordResult{ID: rec.id, Outcome: entity.SyncAuthRequired}

	case http.StatusNotFound:
		logger(ctx).Warn("remote collection not configured", slog.String(logx.FieldItemID, rec.id))
		return entity.RecordResult{ID: rec.id, Outcome: entity.SyncFailed, Detail: "not configured"}

	default:
		logger(ctx).Warn("unexpected status", slog.String(logx.FieldItemID, rec.id), "status", result.statusCode)
		return entity.RecordResult{
			ID:      rec.id,
			Outcome: entity.SyncFailed,
			Detail:  fmt.Sprintf("status %d", result.statusCode),
		}
	}
}

// Counts holds remote collection sizes from read-back verification.
type Counts struct {
	Currencies int `json:"currencies"`
	Inventory  int `json:"inventory"`
	Catalog    int `json:"catalog"`
}

// VerifyCounts reads back each economy collection and reports sizes.
// It reports, it does not reconcile.
func (c *Client) VerifyCounts(ctx context.Context) (Counts, error) {
	var counts Counts

	for _, probe := range []struct {
		collection string
		dest       *int
	}{
		{CollectionCurrencies, &counts.Currencies},
		{CollectionInventory, &counts.Inventory},
		{CollectionCatalog, &counts.Catalog},
	} {
		if err := c.waitForNextSlot(ctx); err != nil {
			return Counts{}, err
		}

		n, err := c.listCount(ctx, probe.collection)
		if err != nil {
			return Counts{}, fmt.Errorf("list %s: %w", probe.collection, err)
		}

		*probe.dest = n
	}

	return counts, nil
}

func (c *Client) listCount(ctx context.Context, collection string) (int, error) {
	result, err := c.do(ctx, http.MethodGet, c.economyPath(collection), nil)
	if err != nil {
		return 0, err
	}

	if result.statusCode != http.StatusOK {
		return 0, fmt.Errorf("status %d", result.statusCode)
	}

	var body struct {
		Results []jsoniter.RawMessage `json:"results"`
	}

	if err := json.Unmarshal(result.body, &body); err != nil {
		return 0, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return len(body.Results), nil
}
