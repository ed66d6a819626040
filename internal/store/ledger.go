package store

import (
	"github.com/YasserHesham-D/ProductManager/internal/models"
)

// Ledger is the append-only record of completed sales. Appends merge
// with whatever is on disk, so several application sessions writing the
// same file never lose or renumber each other's sales.
type Ledger struct {
	path  string
	sales []models.Sale
}

// OpenLedger loads the ledger from path. Missing or unreadable files
// yield an empty ledger.
func OpenLedger(path string) *Ledger {
	return &Ledger{path: path, sales: loadSlice[models.Sale](path)}
}

// Sales returns the sales seen by this session, oldest first.
func (l *Ledger) Sales() []models.Sale {
	return l.sales
}

// Append assigns the sale id and persists by read-merge-append-rewrite:
// the on-disk ledger is re-read, the new sale is appended, and the
// whole file is rewritten. The id is one past the max across both the
// durable and the in-memory sales, so ids keep increasing across
// sessions. On write failure the in-memory append stands and the sale
// is returned together with the error; the sale is completed in-session
// even when it could not be made durable.
func (l *Ledger) Append(sale models.Sale) (models.Sale, error) {
	durable := loadSlice[models.Sale](l.path)
	next := 1
	for _, s := range durable {
		if s.ID >= next {
			next = s.ID + 1
		}
	}
	for _, s := range l.sales {
		if s.ID >= next {
			next = s.ID + 1
		}
	}
	sale.ID = next
	l.sales = append(l.sales, sale)
	durable = append(durable, sale)
	return sale, saveSlice(l.path, durable)
}
