package models

import "github.com/shopspring/decimal"

// CatalogItem is a read-only menu entry supplied by the catalog feed.
type CatalogItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Category  string          `json:"category"`
	Image     string          `json:"image"`
}
