package generator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"evergreen-ops/internal/domain/entity"
	"evergreen-ops/internal/domain/service/generator"
	"evergreen-ops/pkg/tests"
)

// fixedRand returns draws that pin inflation and demand exactly:
// drawTrends maps draw 0.5 to inflation 1.0 and demand 1.0.
func fixedRand(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func mustLoadTemplates(t *testing.T) []generator.ItemTemplate {
	t.Helper()

	templates, err := generator.LoadTemplates("")
	require.NoError(t, err)
	require.NotEmpty(t, templates)

	return templates
}

func TestGenerateUniqueIDs(t *testing.T) {
	rq := require.New(t)

	g := generator.New(mustLoadTemplates(t), "1.0").
		WithClock(fixedClock(time.Date(2025, time.December, 10, 12, 0, 0, 0, time.UTC))).
		WithRandom(fixedRand(0.5, 0.5, 0.1))

	doc := g.Generate(context.Background())

	seen := make(map[string]bool, len(doc.Items))
	for _, item := range doc.Items {
		rq.False(seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func TestGenerateTrendPricing(t *testing.T) {
	rq := require.New(t)

	// inflation draw 1.0 -> multiplier 1.05; demand draw 0.5 -> 1.0.
	// June: no seasonal event, seasonal multiplier 1.0.
	g := generator.New(mustLoadTemplates(t), "1.0").
		WithClock(fixedClock(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))).
		WithRandom(fixedRand(1.0, 0.5, 0.9))

	doc := g.Generate(context.Background())

	rq.InDelta(1.05, doc.MarketTrends.Inflation, 1e-9)
	rq.InDelta(1.0, doc.MarketTrends.Demand, 1e-9)
	rq.InDelta(1.0, doc.MarketTrends.Seasonal, 1e-9)

	var coinsSmall entity.EconomyItem
	for _, item := range doc.Items {
		if item.ID == "coins_small" {
			coinsSmall = item
		}
	}

	// 20 gems * 1.05 = 21; 1000 / 1.05 floored = 952.
	rq.Equal(21, coinsSmall.CostGems)
	rq.Equal(952, coinsSmall.Quantity)
}

func TestGenerateDiscountKeepsQuantity(t *testing.T) {
	rq := require.New(t)

	// inflation draw 0 -> 0.95; demand draw 0.5 -> 1.0: prices drop,
	// quantities stay as authored.
	g := generator.New(mustLoadTemplates(t), "1.0").
		WithClock(fixedClock(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))).
		WithRandom(fixedRand(0.0, 0.5, 0.9))

	doc := g.Generate(context.Background())

	for _, item := range doc.Items {
		if item.ID == "coins_small" {
			rq.Equal(19, item.CostGems) // floor(20 * 0.95)
			rq.Equal(1000, item.Quantity)
		}
	}
}

func TestGenerateNeverZeroCostOrQuantity(t *testing.T) {
	rq := require.New(t)

	templates := []generator.ItemTemplate{{
		ID: "tiny", Type: "booster", Name: "Tiny", CostGems: 1, Quantity: 1, Purchasable: true,
	}}

	g := generator.New(templates, "1.0").
		WithClock(fixedClock(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))).
		WithRandom(fixedRand(0.0, 1.0, 0.9)) // inflation 0.95, demand 1.2

	doc := g.Generate(context.Background())

	for _, item := range doc.Items {
		rq.GreaterOrEqual(item.CostGems+item.CostCoins, 1, "item %s", item.ID)
		rq.GreaterOrEqual(item.Quantity, 1, "item %s", item.ID)
	}
}

func TestGenerateSeasonalMonths(t *testing.T) {
	testCases := []struct {
		month   time.Month
		wantKey string
	}{
		{time.December, "winter_holiday"},
		{time.February, "valentines"},
		{time.October, "halloween"},
	}

	for _, tc := range testCases {
		t.Run(tc.wantKey, func(t *testing.T) {
			rq := require.New(t)

			now := time.Date(2025, tc.month, 5, 9, 0, 0, 0, time.UTC)

			g := generator.New(mustLoadTemplates(t), "1.0").
				WithClock(fixedClock(now)).
				WithRandom(fixedRand(0.5, 0.5, 0.9))

			doc := g.Generate(context.Background())

			rq.Len(doc.SeasonalEvents, 1)
			rq.Equal(tc.wantKey, doc.SeasonalEvents[0].Key)

			var pack entity.EconomyItem
			for _, item := range doc.Items {
				if item.ID == "seasonal_"+tc.wantKey {
					pack = item
				}
			}

			rq.NotEmpty(pack.ID)
			rq.True(pack.IsLimitedTime)
			rq.True(pack.IsPurchasable)
			rq.NotNil(pack.AvailableUntil)
			rq.Equal(now.Add(7*24*time.Hour), *pack.AvailableUntil)
		})
	}
}

func TestGenerateNoSeasonalOffMonth(t *testing.T) {
	rq := require.New(t)

	g := generator.New(mustLoadTemplates(t), "1.0").
		WithClock(fixedClock(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))).
		WithRandom(fixedRand(0.5, 0.5, 0.9))

	doc := g.Generate(context.Background())

	rq.Empty(doc.SeasonalEvents)
	rq.InDelta(1.0, doc.MarketTrends.Seasonal, 1e-9)
}

func TestGeneratePromos(t *testing.T) {
	rq := require.New(t)

	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	// Third draw below 0.3 triggers the flash sale.
	g := generator.New(mustLoadTemplates(t), "1.0").
		WithClock(fixedClock(now)).
		WithRandom(fixedRand(0.5, 0.5, 0.1))

	doc := g.Generate(context.Background())

	ids := make(map[string]entity.EconomyItem, len(doc.Items))
	for _, item := range doc.Items {
		ids[item.ID] = item
	}

	comeback, ok := ids["comeback_offer"]
	rq.True(ok)
	rq.Equal(now.Add(3*24*time.Hour), *comeback.AvailableUntil)

	flash, ok := ids["flash_sale_gem_rush"]
	rq.True(ok)
	rq.Equal(now.Add(6*time.Hour), *flash.AvailableUntil)

	// Draw at or above 0.3 suppresses the flash sale but never the
	// comeback offer.
	g = generator.New(mustLoadTemplates(t), "1.0").
		WithClock(fixedClock(now)).
		WithRandom(fixedRand(0.5, 0.5, 0.9))

	doc = g.Generate(context.Background())

	var hasComeback, hasFlash bool
	for _, item := range doc.Items {
		hasComeback = hasComeback || item.ID == "comeback_offer"
		hasFlash = hasFlash || item.ID == "flash_sale_gem_rush"
	}

	rq.True(hasComeback)
	rq.False(hasFlash)
}

func TestGenerateRandomDrawsStayInBounds(t *testing.T) {
	rq := require.New(t)

	random := tests.NewRandomizer()
	templates := mustLoadTemplates(t)

	for i := 0; i < 50; i++ {
		g := generator.New(templates, "1.0").
			WithClock(fixedClock(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))).
			WithRandom(random.Float64)

		doc := g.Generate(context.Background())

		rq.GreaterOrEqual(doc.MarketTrends.Inflation, 0.95)
		rq.LessOrEqual(doc.MarketTrends.Inflation, 1.05)
		rq.GreaterOrEqual(doc.MarketTrends.Demand, 0.8)
		rq.LessOrEqual(doc.MarketTrends.Demand, 1.2)

		for _, item := range doc.Items {
			rq.GreaterOrEqual(item.Quantity, 1, "item %s", item.ID)
			if item.IsPurchasable {
				rq.True(item.HasCost(), "item %s", item.ID)
			}
		}
	}
}

func TestRepriceIdempotence(t *testing.T) {
	rq := require.New(t)

	item := entity.EconomyItem{
		ID: "coins_big", Type: entity.ItemTypeCurrency, Name: "Coins",
		CostGems: 1000, Quantity: 100000, IsPurchasable: true, RewardCurrency: "coins",
	}

	// Repricing with m1 then m2 lands within integer-rounding
	// tolerance of repricing once with m1*m2.
	twice := generator.Reprice(generator.Reprice(item, 1.05), 1.1)
	once := generator.Reprice(item, 1.05*1.1)

	rq.InDelta(float64(once.CostGems), float64(twice.CostGems), 1)
	rq.InDelta(float64(once.Quantity), float64(twice.Quantity), 2)
}

func TestRepriceExactScenario(t *testing.T) {
	rq := require.New(t)

	item := entity.EconomyItem{
		ID: "coins_small", Type: entity.ItemTypeCurrency,
		CostGems: 20, Quantity: 1000,
	}

	repriced := generator.Reprice(item, 1.05*1.0*1.0)

	rq.Equal(21, repriced.CostGems)
	rq.Equal(952, repriced.Quantity)
}
