// Package pos implements the point-of-sale cart and checkout engine.
// A cart is session-scoped and transient; only the Sale built at
// checkout is ever persisted.
package pos

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/YasserHesham-D/ProductManager/internal/models"
	"github.com/YasserHesham-D/ProductManager/internal/store"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrLineNotFound = errors.New("cart line not found")
)

// UnitOption is one sellable unit/price choice for a selected product.
type UnitOption struct {
	ProductID   int
	UnitID      int
	ProductName string
	UnitName    string
	UnitPrice   decimal.Decimal
}

// UnitOptions joins a product's unit/price variants against the unit
// list. A variant whose unit has been deleted keeps its price and gets
// a synthetic "Unit {id}" label.
func UnitOptions(p models.Product, units []models.Unit) []UnitOption {
	opts := make([]UnitOption, 0, len(p.ProductUnits))
	for _, pu := range p.ProductUnits {
		name := fmt.Sprintf("Unit %d", pu.UnitID)
		for _, u := range units {
			if u.ID == pu.UnitID {
				name = u.Name
				break
			}
		}
		opts = append(opts, UnitOption{
			ProductID:   p.ID,
			UnitID:      pu.UnitID,
			ProductName: p.Name,
			UnitName:    name,
			UnitPrice:   pu.Price,
		})
	}
	return opts
}

// Line is one cart entry. Lines are unique per
// (ProductID, UnitID, UnitPrice); adding a duplicate increments the
// quantity of the existing line instead.
type Line struct {
	ProductID   int
	UnitID      int
	ProductName string
	UnitName    string
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
}

// Total is always derived, never stored.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(l.Quantity)
}

// Cart aggregates the lines of one checkout session.
type Cart struct {
	lines []Line
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	return c.lines
}

// Empty reports whether the cart holds no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Add puts the option in the cart with quantity 1, or increments the
// matching line when the same product, unit, and price is already there.
func (c *Cart) Add(opt UnitOption) {
	for i := range c.lines {
		l := &c.lines[i]
		if l.ProductID == opt.ProductID && l.UnitID == opt.UnitID && l.UnitPrice.Equal(opt.UnitPrice) {
			l.Quantity = l.Quantity.Add(decimal.NewFromInt(1))
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID:   opt.ProductID,
		UnitID:      opt.UnitID,
		ProductName: opt.ProductName,
		UnitName:    opt.UnitName,
		UnitPrice:   opt.UnitPrice,
		Quantity:    decimal.NewFromInt(1),
	})
}

// Increment raises the quantity of line i by 1.
func (c *Cart) Increment(i int) error {
	if i < 0 || i >= len(c.lines) {
		return ErrLineNotFound
	}
	c.lines[i].Quantity = c.lines[i].Quantity.Add(decimal.NewFromInt(1))
	return nil
}

// Decrement lowers the quantity of line i by 1, floored at 0. A line
// reaching 0 is removed from the cart.
func (c *Cart) Decrement(i int) error {
	if i < 0 || i >= len(c.lines) {
		return ErrLineNotFound
	}
	q := c.lines[i].Quantity.Sub(decimal.NewFromInt(1))
	if q.LessThanOrEqual(decimal.Zero) {
		return c.Remove(i)
	}
	c.lines[i].Quantity = q
	return nil
}

// Remove drops line i unconditionally.
func (c *Cart) Remove(i int) error {
	if i < 0 || i >= len(c.lines) {
		return ErrLineNotFound
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Total recomputes the sum of all line totals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}

// TotalQuantity recomputes the sum of all line quantities.
func (c *Cart) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Quantity)
	}
	return total
}

// Checkout builds an immutable Sale snapshot of the cart and appends it
// to the ledger, which assigns the sale id during persistence. An empty
// cart returns ErrEmptyCart without mutating anything. The cart is
// cleared even when persistence fails: the sale stands in-session and
// the error is returned for the caller to report.
func (c *Cart) Checkout(ledger *store.Ledger, now time.Time) (models.Sale, error) {
	if c.Empty() {
		return models.Sale{}, ErrEmptyCart
	}
	items := make([]models.SaleItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.SaleItem{
			ProductID:   l.ProductID,
			UnitID:      l.UnitID,
			ProductName: l.ProductName,
			UnitName:    l.UnitName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
	}
	sale := models.Sale{
		EntryDate:     now,
		TotalPrice:    c.Total(),
		TotalQuantity: c.TotalQuantity(),
		Items:         items,
	}
	sale, err := ledger.Append(sale)
	c.Clear()
	return sale, err
}
