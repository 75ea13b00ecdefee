package generator

import (
	"time"

	"evergreen-ops/internal/domain/entity"
)

const seasonalWindow = 7 * 24 * time.Hour

type eventSpec struct {
	month       time.Month
	key         string
	name        string
	multiplier  float64
	baseCost    int
	description string
}

//nolint:gochecknoglobals
var holidayEvents = []eventSpec{
	{
		month:       time.December,
		key:         "winter_holiday",
		name:        "Winter Holiday",
		multiplier:  1.5,
		baseCost:    120,
		description: "Snowbound boards and a festive bundle.",
	},
	{
		month:       time.February,
		key:         "valentines",
		name:        "Valentine's Day",
		multiplier:  1.2,
		baseCost:    80,
		description: "Heart tiles and a sweetheart bundle.",
	},
	{
		month:       time.October,
		key:         "halloween",
		name:        "Halloween",
		multiplier:  1.3,
		baseCost:    100,
		description: "Pumpkin boards and a spooky bundle.",
	},
}

// activeEvents returns the hard-coded holiday events matching the
// current calendar month.
func activeEvents(now time.Time) []entity.SeasonalEvent {
	var events []entity.SeasonalEvent

	for _, spec := range holidayEvents {
		if spec.month != now.Month() {
			continue
		}

		events = append(events, entity.SeasonalEvent{
			Key:        spec.key,
			Name:       spec.name,
			Multiplier: spec.multiplier,
			EndsAt:     now.Add(seasonalWindow),
		})
	}

	return events
}

func seasonalItems(now time.Time) []entity.EconomyItem {
	var items []entity.EconomyItem

	for _, spec := range holidayEvents {
		if spec.month != now.Month() {
			continue
		}

		until := now.Add(seasonalWindow)
		cost := atLeastOne(int(float64(spec.baseCost) * spec.multiplier))

		items = append(items, entity.EconomyItem{
			ID:             "seasonal_" + spec.key,
			Type:           entity.ItemTypePack,
			Name:           spec.name + " Pack",
			Description:    spec.description,
			CostGems:       cost,
			Quantity:       1,
			Rarity:         "legendary",
			Category:       "seasonal",
			IconPath:       "icons/seasonal_" + spec.key + ".png",
			IsPurchasable:  true,
			RewardCurrency: "seasonal_" + spec.key,
			IsLimitedTime:  true,
			AvailableUntil: &until,
		})
	}

	return items
}
