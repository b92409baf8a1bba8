package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Flag marks a transaction that needs a human decision before it can be
// written to the ledger.
type Flag string

const (
	FlagNone     Flag = ""
	FlagCash     Flag = "cash"
	FlagTransfer Flag = "transfer"
	FlagUnknown  Flag = "unknown"
)

// Transaction is a single expense parsed from one statement export row.
//
// A transaction is either auto-categorized (Category set, Flag empty) or
// pending review (Flag set, Category empty), never both unset.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // always non-negative
	Currency    string          // 3-letter code
	Category    Category        // empty until assigned
	Flag        Flag
	DedupKey    string
	Merchant    string // empty for cash withdrawals and transfers
	MCC         string // merchant category code, may be empty
}

// Pending reports whether the transaction still needs human review.
func (t Transaction) Pending() bool {
	return t.Flag != FlagNone
}

// Entry converts a finalized transaction into a ledger entry.
func (t Transaction) Entry() Entry {
	return Entry{
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Currency:    t.Currency,
		Category:    t.Category,
	}
}
