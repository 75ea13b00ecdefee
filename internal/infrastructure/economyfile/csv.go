package economyfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"

	"evergreen-ops/internal/domain"
	"evergreen-ops/internal/domain/entity"
	"evergreen-ops/pkg/errcodes"
	"evergreen-ops/pkg/lox"
)

// itemRow is the CSV representation of one economy item. Everything is
// a string on disk; toDomain owns the casts.
type itemRow struct {
	ID             string
	Type           string
	Name           string
	Description    string
	CostGems       string
	CostCoins      string
	Quantity       string
	Rarity         string
	Category       string
	IconPath       string
	IsPurchasable  string
	IsConsumable   string
	IsTradeable    string
	RewardCurrency string
	IsLimitedTime  string
	AvailableUntil string
}

//nolint:gochecknoglobals
var itemsHeader = []string{
	"id", "type", "name", "description",
	"cost_gems", "cost_coins", "quantity",
	"rarity", "category", "icon_path",
	"is_purchasable", "is_consumable", "is_tradeable",
	"reward_currency", "is_limited_time", "available_until",
}

func fromItem(item entity.EconomyItem) itemRow {
	row := itemRow{
		ID:             item.ID,
		Type:           item.Type.String(),
		Name:           item.Name,
		Description:    item.Description,
		CostGems:       strconv.Itoa(item.CostGems),
		CostCoins:      strconv.Itoa(item.CostCoins),
		Quantity:       strconv.Itoa(item.Quantity),
		Rarity:         item.Rarity,
		Category:       item.Category,
		IconPath:       item.IconPath,
		IsPurchasable:  strconv.FormatBool(item.IsPurchasable),
		IsConsumable:   strconv.FormatBool(item.IsConsumable),
		IsTradeable:    strconv.FormatBool(item.IsTradeable),
		RewardCurrency: item.RewardCurrency,
		IsLimitedTime:  strconv.FormatBool(item.IsLimitedTime),
	}

	if item.AvailableUntil != nil {
		row.AvailableUntil = item.AvailableUntil.Format(time.RFC3339)
	}

	return row
}

func (r itemRow) fields() []string {
	return []string{
		r.ID, r.Type, r.Name, r.Description,
		r.CostGems, r.CostCoins, r.Quantity,
		r.Rarity, r.Category, r.IconPath,
		r.IsPurchasable, r.IsConsumable, r.IsTradeable,
		r.RewardCurrency, r.IsLimitedTime, r.AvailableUntil,
	}
}

func (r itemRow) toDomain() (entity.EconomyItem, error) {
	costGems, err := strconv.Atoi(r.CostGems)
	if err != nil {
		return entity.EconomyItem{}, fmt.Errorf("item %s: cost_gems %q: %w", r.ID, r.CostGems, err)
	}

	costCoins, err := strconv.Atoi(r.CostCoins)
	if err != nil {
		return entity.EconomyItem{}, fmt.Errorf("item %s: cost_coins %q: %w", r.ID, r.CostCoins, err)
	}

	quantity, err := strconv.Atoi(r.Quantity)
	if err != nil {
		return entity.EconomyItem{}, fmt.Errorf("item %s: quantity %q: %w", r.ID, r.Quantity, err)
	}

	item := entity.EconomyItem{
		ID:             r.ID,
		Type:           entity.ItemType(r.Type),
		Name:           r.Name,
		Description:    r.Description,
		CostGems:       costGems,
		CostCoins:      costCoins,
		Quantity:       quantity,
		Rarity:         r.Rarity,
		Category:       r.Category,
		IconPath:       r.IconPath,
		IsPurchasable:  r.IsPurchasable == "true",
		IsConsumable:   r.IsConsumable == "true",
		IsTradeable:    r.IsTradeable == "true",
		RewardCurrency: r.RewardCurrency,
		IsLimitedTime:  r.IsLimitedTime == "true",
	}

	if r.AvailableUntil != "" {
		until, err := time.Parse(time.RFC3339, r.AvailableUntil)
		if err != nil {
			return entity.EconomyItem{}, fmt.Errorf("item %s: available_until %q: %w", r.ID, r.AvailableUntil, err)
		}
		item.AvailableUntil = &until
	}

	return item, nil
}

// WriteItems overwrites the flat economy_items.csv. An empty item set
// still writes the header row.
func (s *Store) WriteItems(items []entity.EconomyItem) error {
	rows := lo.Map(items, func(item entity.EconomyItem, _ int) []string {
		return fromItem(item).fields()
	})

	return s.writeCSV(s.ItemsPath(), itemsHeader, rows)
}

// ReadItems loads economy_items.csv back into typed items.
func (s *Store) ReadItems() ([]entity.EconomyItem, error) {
	records, err := s.readCSV(s.ItemsPath(), len(itemsHeader))
	if err != nil {
		return nil, err
	}

	items, err := lox.MapErr(records, func(fields []string) (entity.EconomyItem, error) {
		row := itemRow{
			ID: fields[0], Type: fields[1], Name: fields[2], Description: fields[3],
			CostGems: fields[4], CostCoins: fields[5], Quantity: fields[6],
			Rarity: fields[7], Category: fields[8], IconPath: fields[9],
			IsPurchasable: fields[10], IsConsumable: fields[11], IsTradeable: fields[12],
			RewardCurrency: fields[13], IsLimitedTime: fields[14], AvailableUntil: fields[15],
		}
		return row.toDomain()
	})
	if err != nil {
		return nil, domain.WrapError(err, errcodes.ArtifactMalformed, s.ItemsPath())
	}

	return items, nil
}

// WriteCurrencies overwrites currencies.csv with the fixed schema.
func (s *Store) WriteCurrencies(currencies []entity.Currency) error {
	header := []string{"id", "name", "initial", "max"}

	rows := lo.Map(currencies, func(c entity.Currency, _ int) []string {
		return []string{c.ID, c.Name, strconv.Itoa(c.Initial), strconv.Itoa(c.Max)}
	})

	return s.writeCSV(s.CurrenciesPath(), header, rows)
}

// WriteInventory overwrites inventory.csv.
func (s *Store) WriteInventory(definitions []entity.InventoryDefinition) error {
	header := []string{"id", "name", "type", "tradable", "stackable"}

	rows := lo.Map(definitions, func(d entity.InventoryDefinition, _ int) []string {
		return []string{d.ID, d.Name, d.Type, strconv.FormatBool(d.Tradable), strconv.FormatBool(d.Stackable)}
	})

	return s.writeCSV(s.InventoryPath(), header, rows)
}

// WriteCatalog overwrites catalog.csv.
func (s *Store) WriteCatalog(entries []entity.CatalogEntry) error {
	header := []string{"id", "name", "cost_currency", "cost_amount", "rewards"}

	rows := lo.Map(entries, func(e entity.CatalogEntry, _ int) []string {
		return []string{e.ID, e.Name, e.CostCurrency, strconv.Itoa(e.CostAmount), e.Rewards}
	})

	return s.writeCSV(s.CatalogPath(), header, rows)
}

// CountRows returns the number of body rows in a CSV artifact.
func (s *Store) CountRows(path string) (int, error) {
	records, err := s.readCSV(path, 0)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (s *Store) writeCSV(path string, header []string, rows [][]string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "create "+path)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write(header); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "write header "+path)
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "write row "+path)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "flush "+path)
	}

	return nil
}

func (s *Store) readCSV(path string, wantFields int) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if nfErr := notFound(err, path); nfErr != nil {
			return nil, nfErr
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "open "+path)
	}
	defer file.Close()

	r := csv.NewReader(file)
	if wantFields > 0 {
		r.FieldsPerRecord = wantFields
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, domain.WrapError(err, errcodes.ArtifactMalformed, path)
	}

	if len(records) == 0 {
		return nil, domain.NewError(errcodes.ArtifactMalformed, path+": missing header row")
	}

	return records[1:], nil
}
