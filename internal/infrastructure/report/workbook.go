package report

import (
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"evergreen-ops/internal/domain"
	"evergreen-ops/internal/domain/entity"
	"evergreen-ops/pkg/errcodes"
)

// WriteWorkbook renders the economy data set as an XLSX workbook for
// designers, one sheet per collection.
func (w *Writer) WriteWorkbook(
	doc entity.EconomyDocument,
	currencies []entity.Currency,
	inventory []entity.InventoryDefinition,
	catalog []entity.CatalogEntry,
) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "create reports dir")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeItemsSheet(f, doc); err != nil {
		return err
	}
	if err := writeCurrenciesSheet(f, currencies); err != nil {
		return err
	}
	if err := writeInventorySheet(f, inventory); err != nil {
		return err
	}
	if err := writeCatalogSheet(f, catalog); err != nil {
		return err
	}

	if err := f.SaveAs(w.WorkbookPath()); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "save "+w.WorkbookPath())
	}

	return nil
}

func writeItemsSheet(f *excelize.File, doc entity.EconomyDocument) error {
	const sheet = "Items"

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	rows := [][]any{
		{"id", "type", "name", "cost_gems", "cost_coins", "quantity", "purchasable", "limited_time", "available_until"},
	}

	for _, item := range doc.Items {
		until := ""
		if item.AvailableUntil != nil {
			until = item.AvailableUntil.Format(time.RFC3339)
		}

		rows = append(rows, []any{
			item.ID, item.Type.String(), item.Name,
			item.CostGems, item.CostCoins, item.Quantity,
			item.IsPurchasable, item.IsLimitedTime, until,
		})
	}

	return writeRows(f, sheet, rows)
}

func writeCurrenciesSheet(f *excelize.File, currencies []entity.Currency) error {
	const sheet = "Currencies"

	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	rows := [][]any{{"id", "name", "initial", "max"}}
	for _, c := range currencies {
		rows = append(rows, []any{c.ID, c.Name, c.Initial, c.Max})
	}

	return writeRows(f, sheet, rows)
}

func writeInventorySheet(f *excelize.File, inventory []entity.InventoryDefinition) error {
	const sheet = "Inventory"

	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	rows := [][]any{{"id", "name", "type", "tradable", "stackable"}}
	for _, d := range inventory {
		rows = append(rows, []any{d.ID, d.Name, d.Type, d.Tradable, d.Stackable})
	}

	return writeRows(f, sheet, rows)
}

func writeCatalogSheet(f *excelize.File, catalog []entity.CatalogEntry) error {
	const sheet = "Catalog"

	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	rows := [][]any{{"id", "name", "cost_currency", "cost_amount", "rewards"}}
	for _, e := range catalog {
		rows = append(rows, []any{e.ID, e.Name, e.CostCurrency, e.CostAmount, e.Rewards})
	}

	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i+1, sheet, err)
		}
	}

	return nil
}
