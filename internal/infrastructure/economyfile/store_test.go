package economyfile_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"evergreen-ops/internal/domain"
	"evergreen-ops/internal/domain/entity"
	"evergreen-ops/internal/infrastructure/economyfile"
	"evergreen-ops/pkg/errcodes"
)

func testItems() []entity.EconomyItem {
	until := time.Date(2025, time.December, 17, 12, 0, 0, 0, time.UTC)

	return []entity.EconomyItem{
		{
			ID: "coins_small", Type: entity.ItemTypeCurrency, Name: "Small Coin Pouch",
			Description: "A handful of coins.", CostGems: 21, Quantity: 952,
			Rarity: "common", Category: "currency", IconPath: "icons/coins_small.png",
			IsPurchasable: true, IsConsumable: true, RewardCurrency: "coins",
		},
		{
			ID: "seasonal_winter_holiday", Type: entity.ItemTypePack, Name: "Winter Holiday Pack",
			CostGems: 180, Quantity: 1, IsPurchasable: true,
			RewardCurrency: "seasonal_winter_holiday",
			IsLimitedTime:  true, AvailableUntil: &until,
		},
	}
}

func TestItemsRoundTrip(t *testing.T) {
	rq := require.New(t)

	store := economyfile.NewStore(t.TempDir())
	items := testItems()

	rq.NoError(store.WriteItems(items))

	got, err := store.ReadItems()
	rq.NoError(err)
	rq.Len(got, len(items))

	for i, item := range items {
		rq.Equal(item.ID, got[i].ID)
		rq.Equal(item.CostGems, got[i].CostGems)
		rq.Equal(item.CostCoins, got[i].CostCoins)
		rq.Equal(item.Quantity, got[i].Quantity)
		rq.Equal(item.IsPurchasable, got[i].IsPurchasable)
		rq.Equal(item.RewardCurrency, got[i].RewardCurrency)
	}

	rq.NotNil(got[1].AvailableUntil)
	rq.True(items[1].AvailableUntil.Equal(*got[1].AvailableUntil))
}

func TestWriteItemsEmptySetHeaderOnly(t *testing.T) {
	rq := require.New(t)

	store := economyfile.NewStore(t.TempDir())

	rq.NoError(store.WriteItems(nil))

	raw, err := os.ReadFile(store.ItemsPath())
	rq.NoError(err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	rq.Len(lines, 1)
	rq.True(strings.HasPrefix(lines[0], "id,type,name"))

	got, err := store.ReadItems()
	rq.NoError(err)
	rq.Empty(got)
}

func TestReadItemsMissingFile(t *testing.T) {
	rq := require.New(t)

	store := economyfile.NewStore(t.TempDir())

	_, err := store.ReadItems()
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ArtifactNotFound, code)
}

func TestReadItemsBadNumeric(t *testing.T) {
	rq := require.New(t)

	store := economyfile.NewStore(t.TempDir())
	items := testItems()
	items[0].Quantity = 1

	rq.NoError(store.WriteItems(items))

	raw, err := os.ReadFile(store.ItemsPath())
	rq.NoError(err)

	mangled := strings.Replace(string(raw), ",21,", ",lots,", 1)
	rq.NoError(os.WriteFile(store.ItemsPath(), []byte(mangled), 0o644))

	_, err = store.ReadItems()
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ArtifactMalformed, code)
	rq.ErrorContains(err, "cost_gems")
}

func TestProjectionWritesAndCounts(t *testing.T) {
	rq := require.New(t)

	store := economyfile.NewStore(t.TempDir())

	rq.NoError(store.WriteCurrencies([]entity.Currency{
		{ID: "coins", Name: "Coins", Initial: 500, Max: 9999999},
		{ID: "gems", Name: "Gems", Initial: 20, Max: 999999},
		{ID: "energy", Name: "Energy", Initial: 30, Max: 100},
	}))
	rq.NoError(store.WriteInventory([]entity.InventoryDefinition{
		{ID: "booster_hint", Name: "Hint", Type: "booster", Tradable: true, Stackable: true},
	}))
	rq.NoError(store.WriteCatalog([]entity.CatalogEntry{
		{ID: "coins_small", Name: "Small Coin Pouch", CostCurrency: "gems", CostAmount: 21, Rewards: "coins:952"},
	}))

	for path, want := range map[string]int{
		store.CurrenciesPath(): 3,
		store.InventoryPath():  1,
		store.CatalogPath():    1,
	} {
		count, err := store.CountRows(path)
		rq.NoError(err)
		rq.Equal(want, count, path)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	rq := require.New(t)

	store := economyfile.NewStore(t.TempDir())

	doc := entity.EconomyDocument{
		Items:       testItems(),
		GeneratedAt: time.Date(2025, time.December, 10, 12, 0, 0, 0, time.UTC),
		Version:     "1.0",
		MarketTrends: entity.MarketTrends{
			Inflation: 1.05, Demand: 1.0, Seasonal: 1.5,
		},
		SeasonalEvents: []entity.SeasonalEvent{
			{Key: "winter_holiday", Name: "Winter Holiday", Multiplier: 1.5,
				EndsAt: time.Date(2025, time.December, 17, 12, 0, 0, 0, time.UTC)},
		},
	}

	rq.NoError(store.WriteDocument(doc))

	got, err := store.ReadDocument()
	rq.NoError(err)
	rq.Equal(doc.Version, got.Version)
	rq.Len(got.Items, 2)
	rq.InDelta(doc.MarketTrends.Inflation, got.MarketTrends.Inflation, 1e-9)
	rq.Len(got.SeasonalEvents, 1)
}
