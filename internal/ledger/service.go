package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/bogie-dev/bogie/internal/model"
)

// Service appends to and reads the append-only expense ledger.
type Service struct {
	path string
}

// NewService creates a ledger Service backed by the given file path.
func NewService(path string) *Service {
	return &Service{path: path}
}

// ReadAll returns every ledger entry. A missing file yields nil; an
// unreadable one is reported and treated as empty so the tool stays
// usable after a partial failure.
func (s *Service) ReadAll() ([]model.Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		log.Warn("ledger unreadable, treating as empty", "path", s.path, "err", err)
		return nil, nil
	}
	return entries, nil
}

// Append writes entries to the end of the ledger, creating the file with
// its header first when absent.
func (s *Service) Append(entries []model.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	isNew := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendEntries(f, entries); err != nil {
		return fmt.Errorf("appending entries: %w", err)
	}
	return nil
}
