// Package pipeline orchestrates one statement import over in-memory
// snapshots of the persisted stores. Each parsed transaction ends in one
// of four states: dropped as a duplicate, auto-categorized into the
// ledger, flagged into the review queue, or already queued.
package pipeline

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bogie-dev/bogie/internal/categorize"
	"github.com/bogie-dev/bogie/internal/dedup"
	"github.com/bogie-dev/bogie/internal/model"
	"github.com/bogie-dev/bogie/internal/review"
)

// Result is the outcome of one import run. Queue and Keys are the updated
// snapshots the caller persists once all processing has succeeded.
type Result struct {
	Parsed     int
	Duplicates int
	Auto       []model.Transaction
	Flagged    []model.Transaction
	Queue      []model.ReviewItem
	QueuedNew  int
	Keys       dedup.Set
}

// Import runs the categorization state machine over freshly parsed
// transactions. Every non-duplicate transaction registers its dedup key,
// flagged ones included, so overlapping export windows never reprocess a
// row. Rows the parser skipped never reach this point and stay
// unregistered.
func Import(txns []model.Transaction, engine *categorize.Engine, keys dedup.Set, queue []model.ReviewItem) Result {
	result := Result{Parsed: len(txns), Keys: keys}

	var fresh []model.Transaction
	for _, t := range txns {
		if keys.Has(t.DedupKey) {
			result.Duplicates++
			continue
		}
		fresh = append(fresh, t)
	}

	for _, t := range fresh {
		if !t.Pending() && t.Category == "" {
			category, ok := engine.Categorize(t.Merchant, t.MCC, t.Description)
			if ok {
				t.Category = category
			} else {
				t.Flag = model.FlagUnknown
			}
		}

		if t.Pending() {
			result.Flagged = append(result.Flagged, t)
		} else {
			result.Auto = append(result.Auto, t)
		}
		keys.Add(t.DedupKey)
	}

	result.Queue = review.Merge(queue, result.Flagged)
	result.QueuedNew = len(result.Queue) - len(queue)
	return result
}

// AutoEntries returns the auto-categorized transactions as ledger rows,
// sorted by date.
func (r Result) AutoEntries() []model.Entry {
	entries := make([]model.Entry, len(r.Auto))
	for i, t := range r.Auto {
		entries[i] = t.Entry()
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

// Total is one line of the import summary.
type Total struct {
	Category model.Category
	Currency string
	Amount   decimal.Decimal
}

// AutoTotals sums auto-categorized spend by (category, currency), sorted
// for stable output.
func (r Result) AutoTotals() []Total {
	type key struct {
		category model.Category
		currency string
	}
	sums := make(map[key]decimal.Decimal)
	for _, t := range r.Auto {
		k := key{t.Category, t.Currency}
		sums[k] = sums[k].Add(t.Amount)
	}

	totals := make([]Total, 0, len(sums))
	for k, amount := range sums {
		totals = append(totals, Total{Category: k.category, Currency: k.currency, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Category != totals[j].Category {
			return totals[i].Category < totals[j].Category
		}
		return totals[i].Currency < totals[j].Currency
	})
	return totals
}
