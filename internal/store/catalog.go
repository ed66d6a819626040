package store

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/YasserHesham-D/ProductManager/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog owns the product list and its backing file. Every mutating
// operation persists immediately, so the file always reflects the
// in-memory state except after a reported save failure.
type Catalog struct {
	path     string
	products []models.Product
}

// OpenCatalog loads the catalog from path. Missing or unreadable files
// yield an empty catalog.
func OpenCatalog(path string) *Catalog {
	return &Catalog{path: path, products: loadSlice[models.Product](path)}
}

// Products returns the full product list in insertion order.
func (c *Catalog) Products() []models.Product {
	return c.products
}

// Get returns the product with the given id.
func (c *Catalog) Get(id int) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Add assigns the next free id, appends the product, and saves. The
// product stays in memory even when the save fails; the error is
// returned for the caller to report.
func (c *Catalog) Add(p models.Product) (models.Product, error) {
	p.ID = c.nextID()
	for i := range p.ProductUnits {
		p.ProductUnits[i].ProductID = p.ID
	}
	c.products = append(c.products, p)
	return p, c.Save()
}

// Update replaces the product with the given id in place and saves.
func (c *Catalog) Update(id int, p models.Product) error {
	for i := range c.products {
		if c.products[i].ID == id {
			p.ID = id
			c.products[i] = p
			return c.Save()
		}
	}
	return ErrProductNotFound
}

// Remove deletes the product with the given id and saves. ProductUnit
// links held elsewhere are not cleaned up.
func (c *Catalog) Remove(id int) error {
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return c.Save()
		}
	}
	return ErrProductNotFound
}

// Filter returns the products whose name or description contains query,
// case-insensitively. An empty query returns every product unchanged in
// original order.
func (c *Catalog) Filter(query string) []models.Product {
	q := strings.ToLower(query)
	if q == "" {
		return c.products
	}
	var out []models.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// Save rewrites the backing file with the full product list.
func (c *Catalog) Save() error {
	return saveSlice(c.path, c.products)
}

// nextID is max existing id + 1, or 1 for an empty catalog. Deleting
// the max-id product frees its id for reuse; surviving lower ids are
// never collided with.
func (c *Catalog) nextID() int {
	next := 1
	for _, p := range c.products {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}
