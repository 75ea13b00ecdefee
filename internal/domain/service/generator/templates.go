package generator

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"evergreen-ops/internal/domain"
	"evergreen-ops/internal/domain/entity"
	"evergreen-ops/pkg/errcodes"
)

//go:embed templates.toml
var defaultTemplates []byte

// ItemTemplate is one hand-authored base-catalog entry.
type ItemTemplate struct {
	ID          string `toml:"id"`
	Type        string `toml:"type"`
	Name        string `toml:"name"`
	Description string `toml:"description"`

	CostGems  int `toml:"cost_gems"`
	CostCoins int `toml:"cost_coins"`
	Quantity  int `toml:"quantity"`

	Rarity   string `toml:"rarity"`
	Category string `toml:"category"`
	IconPath string `toml:"icon_path"`

	Purchasable bool `toml:"purchasable"`
	Consumable  bool `toml:"consumable"`
	Tradeable   bool `toml:"tradeable"`

	RewardCurrency string `toml:"reward_currency"`
}

type templatesFile struct {
	Items []ItemTemplate `toml:"items"`
}

// LoadTemplates reads the base catalog from path, or from the embedded
// defaults when path is empty.
func LoadTemplates(path string) ([]ItemTemplate, error) {
	raw := defaultTemplates

	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, domain.WrapError(err, errcodes.TemplateInvalid, "read templates")
		}
	}

	var file templatesFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, domain.WrapError(err, errcodes.TemplateInvalid, "decode templates")
	}

	if len(file.Items) == 0 {
		return nil, domain.NewError(errcodes.TemplateInvalid, "templates contain no items")
	}

	for _, tpl := range file.Items {
		if !entity.ItemType(tpl.Type).Valid() {
			return nil, domain.NewError(
				errcodes.TemplateInvalid,
				fmt.Sprintf("template %q: unknown type %q", tpl.ID, tpl.Type),
			)
		}
	}

	return file.Items, nil
}

func (t ItemTemplate) toItem() entity.EconomyItem {
	return entity.EconomyItem{
		ID:             t.ID,
		Type:           entity.ItemType(t.Type),
		Name:           t.Name,
		Description:    t.Description,
		CostGems:       t.CostGems,
		CostCoins:      t.CostCoins,
		Quantity:       t.Quantity,
		Rarity:         t.Rarity,
		Category:       t.Category,
		IconPath:       t.IconPath,
		IsPurchasable:  t.Purchasable,
		IsConsumable:   t.Consumable,
		IsTradeable:    t.Tradeable,
		RewardCurrency: t.RewardCurrency,
	}
}
