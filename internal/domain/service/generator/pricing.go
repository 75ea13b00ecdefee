package generator

import (
	"github.com/shopspring/decimal"

	"evergreen-ops/internal/domain/entity"
)

// Trend multiplier draw ranges.
const (
	inflationMin = 0.95
	inflationMax = 1.05
	demandMin    = 0.8
	demandMax    = 1.2
)

func drawTrends(randFloat func() float64, seasonal float64) entity.MarketTrends {
	return entity.MarketTrends{
		Inflation: inflationMin + randFloat()*(inflationMax-inflationMin),
		Demand:    demandMin + randFloat()*(demandMax-demandMin),
		Seasonal:  seasonal,
	}
}

// Reprice applies a trend multiplier to one item. Gem cost scales with
// the multiplier; when the multiplier raises cost, quantity is
// inversely scaled so the perceived value holds. Both floor at 1 so no
// item ever becomes free or empty.
func Reprice(item entity.EconomyItem, multiplier float64) entity.EconomyItem {
	m := decimal.NewFromFloat(multiplier)

	if item.CostGems > 0 {
		cost := decimal.NewFromInt(int64(item.CostGems)).Mul(m).Floor().IntPart()
		item.CostGems = atLeastOne(int(cost))
	}

	if multiplier > 1 && item.Quantity > 0 {
		quantity := decimal.NewFromInt(int64(item.Quantity)).Div(m).Floor().IntPart()
		item.Quantity = atLeastOne(int(quantity))
	}

	return item
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
