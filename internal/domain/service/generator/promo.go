package generator

import (
	"time"

	"evergreen-ops/internal/domain/entity"
)

const (
	flashSaleProbability = 0.3
	flashSaleWindow      = 6 * time.Hour
	comebackWindow       = 3 * 24 * time.Hour
)

// promoItems emits the always-on comeback offer plus, with fixed
// probability, a short flash sale.
func promoItems(now time.Time, randFloat func() float64) []entity.EconomyItem {
	comebackUntil := now.Add(comebackWindow)

	items := []entity.EconomyItem{
		{
			ID:                 "comeback_offer",
			Type:               entity.ItemTypePack,
			Name:               "Welcome Back Bundle",
			Description:        "A discounted bundle for returning players.",
			CostGems:           40,
			Quantity:           1,
			Rarity:             "rare",
			Category:           "promo",
			IconPath:           "icons/comeback_offer.png",
			IsPurchasable:      true,
			RewardCurrency:     "comeback_offer",
			IsLimitedTime:      true,
			AvailableUntil:     &comebackUntil,
			DiscountPercentage: 40,
			OriginalPrice:      65,
		},
	}

	if randFloat() < flashSaleProbability {
		flashUntil := now.Add(flashSaleWindow)

		items = append(items, entity.EconomyItem{
			ID:                 "flash_sale_gem_rush",
			Type:               entity.ItemTypePack,
			Name:               "Gem Rush Flash Sale",
			Description:        "Six hours only: a gem-stuffed bundle.",
			CostGems:           75,
			Quantity:           1,
			Rarity:             "epic",
			Category:           "promo",
			IconPath:           "icons/flash_sale_gem_rush.png",
			IsPurchasable:      true,
			RewardCurrency:     "flash_sale_gem_rush",
			IsLimitedTime:      true,
			AvailableUntil:     &flashUntil,
			DiscountPercentage: 50,
			OriginalPrice:      150,
		})
	}

	return items
}
