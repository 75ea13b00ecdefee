package entity

import "time"

// MarketTrends are the per-run pricing multipliers.
type MarketTrends struct {
	Inflation float64 `json:"inflation"`
	Demand    float64 `json:"demand"`
	Seasonal  float64 `json:"seasonal"`
}

// Combined reports the product of all three multipliers.
func (t MarketTrends) Combined() float64 {
	return t.Inflation * t.Demand * t.Seasonal
}

// SeasonalEvent describes one active calendar event.
type SeasonalEvent struct {
	Key        string    `json:"key"`
	Name       string    `json:"name"`
	Multiplier float64   `json:"multiplier"`
	EndsAt     time.Time `json:"ends_at"`
}

// EconomyDocument is the combined JSON artifact consumed by the game
// client at runtime.
type EconomyDocument struct {
	Items          []EconomyItem   `json:"items"`
	GeneratedAt    time.Time       `json:"generated_at"`
	Version        string          `json:"version"`
	MarketTrends   MarketTrends    `json:"market_trends"`
	SeasonalEvents []SeasonalEvent `json:"seasonal_events"`
}
