package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YasserHesham-D/ProductManager/internal/models"
)

func catalogPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "Products.json")
}

func TestCatalogAddAssignsIDs(t *testing.T) {
	c := OpenCatalog(catalogPath(t))

	first, err := c.Add(models.Product{Name: "Pen"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := c.Add(models.Product{Name: "Notebook"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestCatalogNextIDSkipsSurvivors(t *testing.T) {
	c := OpenCatalog(catalogPath(t))

	_, err := c.Add(models.Product{Name: "Pen"})
	require.NoError(t, err)
	mid, err := c.Add(models.Product{Name: "Notebook"})
	require.NoError(t, err)
	top, err := c.Add(models.Product{Name: "Stapler"})
	require.NoError(t, err)

	// removing the max-id product frees its id, but a later delete of a
	// middle product must never make Add collide with survivors
	require.NoError(t, c.Remove(top.ID))
	readded, err := c.Add(models.Product{Name: "Tape"})
	require.NoError(t, err)
	assert.Equal(t, 3, readded.ID)

	require.NoError(t, c.Remove(mid.ID))
	next, err := c.Add(models.Product{Name: "Glue"})
	require.NoError(t, err)
	assert.Equal(t, 4, next.ID)
}

func TestCatalogAddSetsVariantProductID(t *testing.T) {
	c := OpenCatalog(catalogPath(t))

	p := models.Product{Name: "Pen"}
	p.SetPrice(1, decimal.RequireFromString("2.50"))
	added, err := c.Add(p)
	require.NoError(t, err)
	require.Len(t, added.ProductUnits, 1)
	assert.Equal(t, added.ID, added.ProductUnits[0].ProductID)
}

func TestCatalogUpdate(t *testing.T) {
	path := catalogPath(t)
	c := OpenCatalog(path)

	added, err := c.Add(models.Product{Name: "Pen", Description: "Blue"})
	require.NoError(t, err)

	added.Description = "Black"
	require.NoError(t, c.Update(added.ID, added))

	// update persists immediately
	reloaded := OpenCatalog(path)
	got, ok := reloaded.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, "Black", got.Description)

	err = c.Update(99, added)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogRemove(t *testing.T) {
	path := catalogPath(t)
	c := OpenCatalog(path)

	added, err := c.Add(models.Product{Name: "Pen"})
	require.NoError(t, err)
	require.NoError(t, c.Remove(added.ID))

	_, ok := c.Get(added.ID)
	assert.False(t, ok)
	assert.ErrorIs(t, c.Remove(added.ID), ErrProductNotFound)

	reloaded := OpenCatalog(path)
	assert.Empty(t, reloaded.Products())
}

func TestCatalogFilter(t *testing.T) {
	c := OpenCatalog(catalogPath(t))
	_, err := c.Add(models.Product{Name: "Ballpoint Pen", Description: "Blue ink"})
	require.NoError(t, err)
	_, err = c.Add(models.Product{Name: "Notebook", Description: "A5, squared"})
	require.NoError(t, err)
	_, err = c.Add(models.Product{Name: "Stapler", Description: "Includes PENS... no, staples"})
	require.NoError(t, err)

	t.Run("empty query returns all in original order", func(t *testing.T) {
		got := c.Filter("")
		require.Len(t, got, 3)
		assert.Equal(t, "Ballpoint Pen", got[0].Name)
		assert.Equal(t, "Notebook", got[1].Name)
		assert.Equal(t, "Stapler", got[2].Name)
	})

	t.Run("matches name and description case-insensitively", func(t *testing.T) {
		got := c.Filter("pEn")
		require.Len(t, got, 2)
		assert.Equal(t, "Ballpoint Pen", got[0].Name)
		assert.Equal(t, "Stapler", got[1].Name)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.Filter("eraser"))
	})
}

func TestCatalogLoadFallbacks(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		c := OpenCatalog(filepath.Join(t.TempDir(), "nope", "Products.json"))
		assert.Empty(t, c.Products())
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := catalogPath(t)
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
		c := OpenCatalog(path)
		assert.Empty(t, c.Products())
	})
}

func TestCatalogSaveFailureKeepsMemory(t *testing.T) {
	dir := t.TempDir()
	c := OpenCatalog(filepath.Join(dir, "missing", "Products.json"))

	added, err := c.Add(models.Product{Name: "Pen"})
	require.Error(t, err)
	// the product stays in the session even though the save failed
	_, ok := c.Get(added.ID)
	assert.True(t, ok)
}

func TestCatalogRoundTrip(t *testing.T) {
	path := catalogPath(t)
	c := OpenCatalog(path)

	p := models.Product{Name: "", Description: ""}
	p.SetPrice(3, decimal.Zero)
	added, err := c.Add(p)
	require.NoError(t, err)

	reloaded := OpenCatalog(path)
	require.Len(t, reloaded.Products(), 1)
	got := reloaded.Products()[0]
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, added.Name, got.Name)
	assert.Equal(t, added.Description, got.Description)
	require.Len(t, got.ProductUnits, 1)
	assert.Equal(t, 3, got.ProductUnits[0].UnitID)
	assert.True(t, got.ProductUnits[0].Price.Equal(decimal.Zero))
}
