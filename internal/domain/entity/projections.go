package entity

// Currency is one row of the fixed currency schema. The currency set
// is not derived from generated items: coins/gems/energy are schema,
// items are content.
type Currency struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Initial int    `json:"initial"`
	Max     int    `json:"max"`
}

// InventoryDefinition is the destination shape for holdable items
// (boosters and packs).
type InventoryDefinition struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Tradable  bool   `json:"tradable"`
	Stackable bool   `json:"stackable"`
}

// CatalogEntry is the destination shape for purchasable items. Rewards
// is encoded as "<currency_id>:<amount>".
type CatalogEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CostCurrency string `json:"cost_currency"`
	CostAmount   int    `json:"cost_amount"`
	Rewards      string `json:"rewards"`
}
