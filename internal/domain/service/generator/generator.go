package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"evergreen-ops/internal/domain/entity"
	"evergreen-ops/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func defaultRandFloat() float64 {
	return rand.Float64() //nolint:gosec // pricing jitter, not crypto
}

// Generator produces the candidate item set for one pipeline run:
// the repriced base catalog, plus seasonal packs for any holiday event
// matching the current month, plus promotional offers.
type Generator struct {
	templates []ItemTemplate
	version   string

	now       func() time.Time
	randFloat func() float64
}

func New(templates []ItemTemplate, version string) *Generator {
	return &Generator{
		templates: templates,
		version:   version,
		now:       time.Now,
		randFloat: defaultRandFloat,
	}
}

// WithClock pins the generator's notion of now. Used by tests and by
// replayed runs.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// WithRandom replaces the trend/promo random source.
func (g *Generator) WithRandom(randFloat func() float64) *Generator {
	g.randFloat = randFloat
	return g
}

// Generate builds the full economy document for one run. The item
// order is stable: base catalog first, then seasonal, then promos.
func (g *Generator) Generate(ctx context.Context) entity.EconomyDocument {
	now := g.now()
	events := activeEvents(now)

	seasonalMultiplier := 1.0
	for _, event := range events {
		if event.Multiplier > seasonalMultiplier {
			seasonalMultiplier = event.Multiplier
		}
	}

	trends := drawTrends(g.randFloat, seasonalMultiplier)

	base := lo.Map(g.templates, func(tpl ItemTemplate, _ int) entity.EconomyItem {
		return Reprice(tpl.toItem(), trends.Combined())
	})

	items := base
	items = append(items, seasonalItems(now)...)
	items = append(items, promoItems(now, g.randFloat)...)

	logger(ctx).Info("generated item set",
		"base", len(base),
		"seasonal", len(events),
		"total", len(items),
		"inflation", trends.Inflation,
		"demand", trends.Demand,
		"seasonal_multiplier", trends.Seasonal,
	)

	return entity.EconomyDocument{
		Items:          items,
		GeneratedAt:    now,
		Version:        g.version,
		MarketTrends:   trends,
		SeasonalEvents: events,
	}
}
