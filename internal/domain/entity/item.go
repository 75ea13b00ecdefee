package entity

import "time"

// ItemType routes an item to its destination collection.
type ItemType string

const (
	ItemTypeCurrency ItemType = "currency"
	ItemTypeBooster  ItemType = "booster"
	ItemTypePack     ItemType = "pack"
)

func (t ItemType) String() string {
	return string(t)
}

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeCurrency, ItemTypeBooster, ItemTypePack:
		return true
	}
	return false
}

// EconomyItem is the unit of data flowing through the pipeline. Items
// are generated fresh each run; there is no persistent identity across
// runs.
type EconomyItem struct {
	ID          string   `json:"id" validate:"required"`
	Type        ItemType `json:"type" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`

	CostGems  int `json:"cost_gems" validate:"gte=0"`
	CostCoins int `json:"cost_coins" validate:"gte=0"`
	Quantity  int `json:"quantity" validate:"gte=1"`

	Rarity   string `json:"rarity,omitempty"`
	Category string `json:"category,omitempty"`
	IconPath string `json:"icon_path,omitempty"`

	IsPurchasable bool `json:"is_purchasable"`
	IsConsumable  bool `json:"is_consumable"`
	IsTradeable   bool `json:"is_tradeable"`

	// RewardCurrency is declared at generation time; the old id-substring
	// guessing survives only as a read-back fallback in convert.
	RewardCurrency string `json:"reward_currency,omitempty"`

	// Time-boxing, present only on seasonal/flash-sale items.
	IsLimitedTime      bool       `json:"is_limited_time,omitempty"`
	AvailableUntil     *time.Time `json:"available_until,omitempty"`
	DiscountPercentage int        `json:"discount_percentage,omitempty"`
	OriginalPrice      int        `json:"original_price,omitempty"`
}

// HasCost reports whether the item carries any nonzero cost.
func (i EconomyItem) HasCost() bool {
	return i.CostGems > 0 || i.CostCoins > 0
}
