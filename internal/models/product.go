package models

import "github.com/shopspring/decimal"

func init() {
	// Data files written by earlier versions of the application store
	// prices and quantities as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog entry. Unit/price variants live in ProductUnits;
// a product with no variants cannot be sold at the point of sale.
type Product struct {
	ID           int           `json:"Id"`
	Name         string        `json:"Name"`
	Description  string        `json:"Description"`
	ProductUnits []ProductUnit `json:"ProductUnits"`
}

// Unit is a sellable measure (piece, box, kg, ...).
type Unit struct {
	ID           int           `json:"Id"`
	Name         string        `json:"Name"`
	ProductUnits []ProductUnit `json:"ProductUnits"`
}

// ProductUnit links a product to a unit at a given price. It is embedded
// in Product and never persisted on its own.
type ProductUnit struct {
	ProductID int             `json:"ProductId"`
	UnitID    int             `json:"UnitId"`
	Price     decimal.Decimal `json:"Price"`
}

// PriceFor returns the price of the product for the given unit.
func (p *Product) PriceFor(unitID int) (decimal.Decimal, bool) {
	for _, pu := range p.ProductUnits {
		if pu.UnitID == unitID {
			return pu.Price, true
		}
	}
	return decimal.Decimal{}, false
}

// SetPrice adds or replaces the unit/price variant for the given unit.
func (p *Product) SetPrice(unitID int, price decimal.Decimal) {
	for i, pu := range p.ProductUnits {
		if pu.UnitID == unitID {
			p.ProductUnits[i].Price = price
			return
		}
	}
	p.ProductUnits = append(p.ProductUnits, ProductUnit{ProductID: p.ID, UnitID: unitID, Price: price})
}

// RemovePrice drops the variant for the given unit, if present.
func (p *Product) RemovePrice(unitID int) {
	for i, pu := range p.ProductUnits {
		if pu.UnitID == unitID {
			p.ProductUnits = append(p.ProductUnits[:i], p.ProductUnits[i+1:]...)
			return
		}
	}
}
