package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReviewItem is the queue-persisted projection of a flagged Transaction.
// It lives in flagged.json until a human approves or skips it.
type ReviewItem struct {
	DedupKey    string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Currency    string
	Flag        Flag
	Merchant    string // empty when the source row had no merchant
}

// FromTransaction projects a flagged transaction into a review item.
func FromTransaction(t Transaction) ReviewItem {
	return ReviewItem{
		DedupKey:    t.DedupKey,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Currency:    t.Currency,
		Flag:        t.Flag,
		Merchant:    t.Merchant,
	}
}

// Entry converts an approved review item into a ledger entry.
func (r ReviewItem) Entry(category Category) Entry {
	return Entry{
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Category:    category,
	}
}
