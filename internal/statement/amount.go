package statement

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// europeanReplacer normalizes the export locale's numeric formatting:
// space or non-breaking-space thousands separators, comma decimal point.
var europeanReplacer = strings.NewReplacer(" ", "", "\u00a0", "", ",", ".")

// ParseEuropeanAmount parses a per-currency column value like "1 234,50".
// A blank string parses as zero.
func ParseEuropeanAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(europeanReplacer.Replace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}
