// Package dedup fingerprints statement rows so repeated imports of
// overlapping export windows never process the same row twice.
package dedup

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// keyLen is the number of hex characters kept from the digest.
const keyLen = 14

// Key fingerprints a row from its raw date text and detail text.
func Key(dateRaw, details string) string {
	sum := md5.Sum([]byte(dateRaw + "|" + details))
	return hex.EncodeToString(sum[:])[:keyLen]
}

// Set is an in-memory set of row fingerprints.
type Set map[string]struct{}

// Has reports whether key is in the set.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Add inserts key into the set.
func (s Set) Add(key string) {
	s[key] = struct{}{}
}

// Store persists a Set as a sorted, newline-delimited file.
type Store struct {
	path string
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the key set. A missing or unreadable file yields an empty set.
func (s *Store) Load() (Set, error) {
	set := make(Set)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return set, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading dedup keys: %w", err)
	}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			set.Add(line)
		}
	}
	return set, nil
}

// Save writes the full key set, replacing the file.
func (s *Store) Save(set Set) error {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := os.WriteFile(s.path, []byte(strings.Join(keys, "\n")+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing dedup keys: %w", err)
	}
	return nil
}
