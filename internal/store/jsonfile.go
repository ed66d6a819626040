// Package store persists the catalog, units, and sales ledger to
// pretty-printed JSON files in the application data directory.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// loadSlice reads a JSON array from path. A missing file is a normal
// first run and an unreadable file is treated as empty; neither is an
// error for the caller. The original file is never repaired or backed up.
func loadSlice[T any](path string) []T {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", path).Debug("data file not found, starting empty")
		} else {
			log.WithError(err).WithField("file", path).Warn("cannot read data file, starting empty")
		}
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.WithError(err).WithField("file", path).Warn("cannot decode data file, starting empty")
		return nil
	}
	return out
}

// saveSlice rewrites path wholesale with an indented JSON array.
func saveSlice[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode %s", filepath.Base(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", filepath.Base(path))
	}
	return nil
}
