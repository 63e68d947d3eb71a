// Package jsonstore persists an inventory as a JSON object file: each key is
// an item name, each value its integer quantity. No metadata, no versioning.
package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/stockroom/core/internal/domain/inventory"
)

// DefaultPath is used when no path is configured.
const DefaultPath = "inventory.json"

type Store struct {
	path string
}

func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads and decodes the inventory file. A missing file surfaces as a
// wrapped os.ErrNotExist; malformed content (including non-integer
// quantities) surfaces as a decode error. In both cases the returned
// inventory is empty and usable.
func (s *Store) Load(ctx context.Context) (inventory.Inventory, error) {
	_ = ctx

	data, err := os.ReadFile(s.path)
	if err != nil {
		return inventory.New(), fmt.Errorf("jsonstore: read %s: %w", s.path, err)
	}

	inv := inventory.New()
	if err := json.Unmarshal(data, &inv); err != nil {
		return inventory.New(), fmt.Errorf("jsonstore: decode %s: %w", s.path, err)
	}
	return inv, nil
}

// Save serializes the inventory pretty-printed and overwrites the file in
// place. There is no atomic-write guarantee; on failure the prior file state
// is unspecified.
func (s *Store) Save(ctx context.Context, inv inventory.Inventory) error {
	_ = ctx

	data, err := json.MarshalIndent(inv, "", "    ")
	if err != nil {
		return fmt.Errorf("jsonstore: encode: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("jsonstore: write %s: %w", s.path, err)
	}
	return nil
}
