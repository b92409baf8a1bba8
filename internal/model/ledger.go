package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one finalized row in expenses.csv.
type Entry struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Currency    string
	Category    Category
}
