package convert

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"evergreen-ops/internal/domain/entity"
)

// Currencies returns the fixed currency schema. It is deliberately not
// derived from the item set: coins/gems/energy are schema, items are
// content.
func Currencies() []entity.Currency {
	return []entity.Currency{
		{ID: "coins", Name: "Coins", Initial: 500, Max: 9999999},
		{ID: "gems", Name: "Gems", Initial: 20, Max: 999999},
		{ID: "energy", Name: "Energy", Initial: 30, Max: 100},
	}
}

// Inventory projects holdable items (boosters and packs) into
// inventory definitions.
func Inventory(items []entity.EconomyItem) []entity.InventoryDefinition {
	holdable := lo.Filter(items, func(item entity.EconomyItem, _ int) bool {
		return item.Type == entity.ItemTypeBooster || item.Type == entity.ItemTypePack
	})

	return lo.Map(holdable, func(item entity.EconomyItem, _ int) entity.InventoryDefinition {
		return entity.InventoryDefinition{
			ID:        item.ID,
			Name:      item.Name,
			Type:      item.Type.String(),
			Tradable:  item.IsTradeable,
			Stackable: item.IsConsumable,
		}
	})
}

// Catalog projects purchasable items into catalog entries. Cost
// currency is gems when the item has any gem cost, coins otherwise.
func Catalog(items []entity.EconomyItem) []entity.CatalogEntry {
	purchasable := lo.Filter(items, func(item entity.EconomyItem, _ int) bool {
		return item.IsPurchasable
	})

	return lo.Map(purchasable, func(item entity.EconomyItem, _ int) entity.CatalogEntry {
		costCurrency, costAmount := "coins", item.CostCoins
		if item.CostGems > 0 {
			costCurrency, costAmount = "gems", item.CostGems
		}

		return entity.CatalogEntry{
			ID:           item.ID,
			Name:         item.Name,
			CostCurrency: costCurrency,
			CostAmount:   costAmount,
			Rewards:      fmt.Sprintf("%s:%d", RewardCurrencyFor(item), item.Quantity),
		}
	})
}

// RewardCurrencyFor resolves the reward key for a catalog entry. Items
// generated by this pipeline declare it; DeriveRewardCurrency covers
// rows read back from CSVs that predate the column.
func RewardCurrencyFor(item entity.EconomyItem) string {
	if item.RewardCurrency != "" {
		return item.RewardCurrency
	}

	return DeriveRewardCurrency(item.ID, item.Type)
}

// DeriveRewardCurrency is the legacy id-substring fallback. The order
// is fixed ("coins" before "energy") so ids containing both resolve
// the same way every run.
func DeriveRewardCurrency(id string, itemType entity.ItemType) string {
	if itemType == entity.ItemTypeCurrency {
		switch {
		case strings.Contains(id, "coins"):
			return "coins"
		case strings.Contains(id, "energy"):
			return "energy"
		default:
			return "gems"
		}
	}

	return id
}
