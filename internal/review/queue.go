// Package review manages the queue of flagged transactions awaiting a
// human decision.
package review

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/bogie-dev/bogie/internal/model"
)

const itemDateFormat = "2006-01-02"

// item is the on-disk shape of one queued review item in flagged.json.
type item struct {
	DedupKey    string          `json:"dk"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Flag        string          `json:"flag"`
	Merchant    string          `json:"merchant,omitempty"`
}

// Store persists the review queue as a JSON document.
type Store struct {
	path string
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the queue. A missing or unreadable document yields an empty
// queue; corruption is reported, never fatal.
func (s *Store) Load() ([]model.ReviewItem, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading review queue: %w", err)
	}

	var raw []item
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn("review queue unreadable, treating as empty", "path", s.path, "err", err)
		return nil, nil
	}

	items := make([]model.ReviewItem, 0, len(raw))
	for _, it := range raw {
		date, err := time.Parse(itemDateFormat, it.Date)
		if err != nil {
			log.Warn("skipping review item with bad date", "key", it.DedupKey, "date", it.Date)
			continue
		}
		items = append(items, model.ReviewItem{
			DedupKey:    it.DedupKey,
			Date:        date,
			Description: it.Description,
			Amount:      it.Amount,
			Currency:    it.Currency,
			Flag:        model.Flag(it.Flag),
			Merchant:    it.Merchant,
		})
	}
	return items, nil
}

// Save writes the full queue, replacing the document.
func (s *Store) Save(items []model.ReviewItem) error {
	raw := make([]item, len(items))
	for i, it := range items {
		raw[i] = item{
			DedupKey:    it.DedupKey,
			Date:        it.Date.Format(itemDateFormat),
			Description: it.Description,
			Amount:      it.Amount,
			Currency:    it.Currency,
			Flag:        string(it.Flag),
			Merchant:    it.Merchant,
		}
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling review queue: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing review queue: %w", err)
	}
	return nil
}

// Merge appends flagged transactions to the queue, skipping any whose
// dedup key is already queued.
func Merge(queue []model.ReviewItem, flagged []model.Transaction) []model.ReviewItem {
	seen := make(map[string]struct{}, len(queue))
	for _, it := range queue {
		seen[it.DedupKey] = struct{}{}
	}
	for _, t := range flagged {
		if _, ok := seen[t.DedupKey]; ok {
			continue
		}
		queue = append(queue, model.FromTransaction(t))
		seen[t.DedupKey] = struct{}{}
	}
	return queue
}
