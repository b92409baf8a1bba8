// Package learned persists the merchant-to-category map grown by human
// approvals. It outranks every static categorization rule.
package learned

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bogie-dev/bogie/internal/model"
)

// Map associates lowercased merchant names with categories. Entries are
// only ever added or overwritten by approvals, never auto-removed.
type Map map[string]model.Category

// Category looks up a merchant, ignoring case.
func (m Map) Category(merchant string) (model.Category, bool) {
	c, ok := m[strings.ToLower(merchant)]
	return c, ok
}

// Learn records a merchant-to-category association.
func (m Map) Learn(merchant string, category model.Category) {
	m[strings.ToLower(merchant)] = category
}

// Store persists a Map as a JSON document.
type Store struct {
	path string
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the map. A missing or unreadable document yields an empty map.
func (s *Store) Load() (Map, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(Map), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading merchant map: %w", err)
	}

	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		log.Warn("merchant map unreadable, treating as empty", "path", s.path, "err", err)
		return make(Map), nil
	}
	if m == nil {
		m = make(Map)
	}
	return m, nil
}

// Save writes the full map, replacing the document.
func (s *Store) Save(m Map) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling merchant map: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing merchant map: %w", err)
	}
	return nil
}
