package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// The detail field embeds structured fragments as "Key: value" pairs,
// usually semicolon-delimited. These patterns pull them back out.
var (
	reCharged     = regexp.MustCompile(`Payment transaction amount and currency:\s*([\d.,]+)\s*([A-Z]{3})`)
	reLeading     = regexp.MustCompile(`Amount:?\s*([A-Z]{3})\s*([\d.,]+)`)
	reMerchant    = regexp.MustCompile(`Merchant:\s*([^;]+)`)
	reMCC         = regexp.MustCompile(`MCC:(\d+)`)
	reActualDate  = regexp.MustCompile(`Date:\s*(\d{2}/\d{2}/\d{4})`)
	reATM         = regexp.MustCompile(`ATM:\s*([^;]+)`)
	reBeneficiary = regexp.MustCompile(`Beneficiary:\s*([^;]+)`)
	reNote        = regexp.MustCompile(`Details:\s*(.+)`)
)

// extractCharged matches the exact transacted-amount phrase, e.g.
// "Payment transaction amount and currency: 24.12 GEL". Within the
// details text amounts use dot decimals with comma thousands.
func extractCharged(details string) (decimal.Decimal, string, bool) {
	m := reCharged.FindStringSubmatch(details)
	if m == nil {
		return decimal.Decimal{}, "", false
	}
	return inlineAmount(m[1], m[2])
}

// extractLeading matches a "Amount: GEL59.49" style phrase (the colon is
// optional in some export variants).
func extractLeading(details string) (decimal.Decimal, string, bool) {
	m := reLeading.FindStringSubmatch(details)
	if m == nil {
		return decimal.Decimal{}, "", false
	}
	return inlineAmount(m[2], m[1])
}

// inlineAmount parses a dot-decimal amount. A zero value is treated as
// not found so the caller falls through to the next source.
func inlineAmount(raw, currency string) (decimal.Decimal, string, bool) {
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil || d.IsZero() {
		return decimal.Decimal{}, "", false
	}
	return d, currency, true
}

func extractMerchant(details string) string {
	if m := reMerchant.FindStringSubmatch(details); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractMCC(details string) string {
	if m := reMCC.FindStringSubmatch(details); m != nil {
		return m[1]
	}
	return ""
}

// extractActualDate finds the embedded transaction date, which can lag
// the posting date in the row's date column.
func extractActualDate(details string) (time.Time, bool) {
	m := reActualDate.FindStringSubmatch(details)
	if m == nil {
		return time.Time{}, false
	}
	d, err := time.Parse(bogDateFormat, m[1])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func extractATM(details string) string {
	if m := reATM.FindStringSubmatch(details); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "ATM"
}

func extractBeneficiary(details string) string {
	if m := reBeneficiary.FindStringSubmatch(details); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "?"
}

func extractTransferNote(details string) string {
	if m := reNote.FindStringSubmatch(details); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
