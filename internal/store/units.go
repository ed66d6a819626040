package store

import (
	"github.com/pkg/errors"

	"github.com/YasserHesham-D/ProductManager/internal/models"
)

var ErrUnitNotFound = errors.New("unit not found")

// Units owns the unit list and its backing file. Mutations go through
// an Editor working on a copy; the owner only sees them after a
// successful Commit.
type Units struct {
	path  string
	units []models.Unit
}

// OpenUnits loads the units from path. Missing or unreadable files
// yield an empty list.
func OpenUnits(path string) *Units {
	return &Units{path: path, units: loadSlice[models.Unit](path)}
}

// All returns the committed unit list.
func (s *Units) All() []models.Unit {
	return s.units
}

// Get returns the unit with the given id.
func (s *Units) Get(id int) (models.Unit, bool) {
	for _, u := range s.units {
		if u.ID == id {
			return u, true
		}
	}
	return models.Unit{}, false
}

// Edit opens an editing session on a copy of the unit list. Unit
// structs are copied; their ProductUnits slices keep the same backing
// arrays since the editor never touches them.
func (s *Units) Edit() *Editor {
	copied := make([]models.Unit, len(s.units))
	copy(copied, s.units)
	return &Editor{store: s, units: copied}
}

// Editor is a unit editing session. Dropping an editor without calling
// Commit discards every change.
type Editor struct {
	store *Units
	units []models.Unit
}

// Units returns the working copy.
func (e *Editor) Units() []models.Unit {
	return e.units
}

// Add appends a new unit named name with id = max existing + 1.
func (e *Editor) Add(name string) models.Unit {
	next := 1
	for _, u := range e.units {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	unit := models.Unit{ID: next, Name: name, ProductUnits: []models.ProductUnit{}}
	e.units = append(e.units, unit)
	return unit
}

// Rename changes the name of the unit with the given id.
func (e *Editor) Rename(id int, name string) error {
	for i := range e.units {
		if e.units[i].ID == id {
			e.units[i].Name = name
			return nil
		}
	}
	return ErrUnitNotFound
}

// Remove deletes the unit from the working copy. ProductUnit links in
// the catalog are deliberately left alone; the point of sale renders a
// fallback label for them.
func (e *Editor) Remove(id int) error {
	for i := range e.units {
		if e.units[i].ID == id {
			e.units = append(e.units[:i], e.units[i+1:]...)
			return nil
		}
	}
	return ErrUnitNotFound
}

// Commit persists the working copy and publishes it to the owning
// store. On failure the owner keeps its previous list and the error is
// returned for the caller to report.
func (e *Editor) Commit() ([]models.Unit, error) {
	if err := saveSlice(e.store.path, e.units); err != nil {
		return nil, errors.Wrap(err, "save units")
	}
	e.store.units = e.units
	return e.units, nil
}
