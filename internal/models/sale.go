package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an immutable, append-only record of a completed checkout.
// TotalPrice and TotalQuantity are snapshots taken at checkout time.
type Sale struct {
	ID            int             `json:"Id"`
	EntryDate     time.Time       `json:"EntryDate"`
	TotalPrice    decimal.Decimal `json:"TotalPrice"`
	TotalQuantity decimal.Decimal `json:"TotalQuantity"`
	Items         []SaleItem      `json:"Items"`
}

// SaleItem snapshots one cart line. ProductName and UnitName are
// denormalized so the record stays readable after catalog edits.
type SaleItem struct {
	ProductID   int             `json:"ProductId"`
	UnitID      int             `json:"UnitId"`
	ProductName string          `json:"ProductName"`
	UnitName    string          `json:"UnitName"`
	UnitPrice   decimal.Decimal `json:"UnitPrice"`
	Quantity    decimal.Decimal `json:"Quantity"`
}

// Total is always derived, never stored.
func (i SaleItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(i.Quantity)
}

// ItemsTotal recomputes the sum of line totals. It should always equal
// TotalPrice for a sale built by the checkout engine.
func (s *Sale) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Total())
	}
	return total
}
