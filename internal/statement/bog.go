package statement

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/bogie-dev/bogie/internal/dedup"
	"github.com/bogie-dev/bogie/internal/model"
)

// BoGParser parses Bank of Georgia statement CSV exports.
type BoGParser struct {
	// Beneficiaries maps a lowercased fragment of a transfer beneficiary
	// name to a pre-assigned category. Matching transfers are not flagged.
	Beneficiaries map[string]model.Category
	// Normalize rewrites a payment description for known recurring
	// services. Nil leaves descriptions as extracted.
	Normalize func(details, description string) string
}

const (
	bogDateFormat = "02/01/2006"
	bogColDate    = 0
	bogColDetails = 1
	bogColGEL     = 3
	bogColUSD     = 4
	bogColEUR     = 5
	bogColGBP     = 6

	// Payment rows without a merchant fall back to the detail text,
	// truncated so ledger descriptions stay scannable.
	descriptionLimit = 60
)

// Detail markers of internal account movements that never become expenses.
var internalMarkers = []string{
	"automatic conversion",
	"zolotayakorona",
	"interest payment",
	"points exchange",
	"point redemption",
	"foreign exchange",
	"incoming transfer",
	"credit funds",
}

var reRowDate = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)

// Dialect returns the parser name.
func (p *BoGParser) Dialect() string { return "bog" }

// Parse reads a BoG CSV export and returns transaction skeletons.
// Header, balance, internal and unrecognized rows are dropped; rows that
// carry an expense marker but cannot be priced are dropped with a warning.
func (p *BoGParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(stripBOM(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for _, rec := range records[1:] { // first line is the header
		if txn, ok := p.parseRow(rec); ok {
			txns = append(txns, txn)
		}
	}
	return txns, nil
}

// columns holds the per-currency amounts of one row. Negative values are
// debits in that currency.
type columns struct {
	GEL, USD, EUR, GBP decimal.Decimal
}

func (p *BoGParser) parseRow(rec []string) (model.Transaction, bool) {
	if len(rec) < 2 {
		return model.Transaction{}, false
	}

	dateRaw := strings.TrimSpace(rec[bogColDate])
	details := strings.TrimSpace(rec[bogColDetails])

	// Header continuation and balance lines have no date.
	if !reRowDate.MatchString(dateRaw) {
		return model.Transaction{}, false
	}
	if isInternal(details) {
		return model.Transaction{}, false
	}

	date, err := time.Parse(bogDateFormat, dateRaw[:10])
	if err != nil {
		return model.Transaction{}, false
	}

	cols := columns{
		GEL: columnAmount(rec, bogColGEL),
		USD: columnAmount(rec, bogColUSD),
		EUR: columnAmount(rec, bogColEUR),
		GBP: columnAmount(rec, bogColGBP),
	}
	key := dedup.Key(dateRaw, details)

	switch {
	case strings.HasPrefix(details, "Withdrawal"):
		return p.cashRow(date, details, cols, key)
	case strings.HasPrefix(details, "Outgoing Transfer"):
		return p.transferRow(date, details, cols, key)
	case strings.HasPrefix(details, "Payment"):
		return p.paymentRow(date, details, cols, key)
	default:
		return model.Transaction{}, false
	}
}

// cashRow handles ATM withdrawals. Always flagged for review.
func (p *BoGParser) cashRow(date time.Time, details string, cols columns, key string) (model.Transaction, bool) {
	amt, cur, ok := extractCharged(details)
	if !ok {
		amt, cur, ok = extractLeading(details)
	}
	if !ok && cols.GEL.IsNegative() {
		amt, cur, ok = cols.GEL.Abs(), "GEL", true
	}
	if !ok {
		log.Warn("dropping unpriceable withdrawal", "date", date.Format("2006-01-02"))
		return model.Transaction{}, false
	}

	if actual, found := extractActualDate(details); found {
		date = actual
	}

	return model.Transaction{
		Date:        date,
		Description: fmt.Sprintf("Cash (ATM: %s)", extractATM(details)),
		Amount:      amt,
		Currency:    cur,
		Flag:        model.FlagCash,
		DedupKey:    key,
	}, true
}

// transferRow handles outgoing transfers. Flagged unless the beneficiary
// matches the known-beneficiary table.
func (p *BoGParser) transferRow(date time.Time, details string, cols columns, key string) (model.Transaction, bool) {
	beneficiary := extractBeneficiary(details)
	note := extractTransferNote(details)

	amt, cur, ok := extractLeading(details)
	if !ok {
		switch {
		case cols.USD.IsNegative():
			amt, cur, ok = cols.USD.Abs(), "USD", true
		case cols.GEL.IsNegative():
			amt, cur, ok = cols.GEL.Abs(), "GEL", true
		case cols.EUR.IsNegative():
			amt, cur, ok = cols.EUR.Abs(), "EUR", true
		}
	}
	if !ok {
		log.Warn("dropping unpriceable transfer", "date", date.Format("2006-01-02"), "beneficiary", beneficiary)
		return model.Transaction{}, false
	}

	description := "→ " + beneficiary
	if note != "" {
		description += " (" + note + ")"
	}

	txn := model.Transaction{
		Date:        date,
		Description: description,
		Amount:      amt,
		Currency:    cur,
		Flag:        model.FlagTransfer,
		DedupKey:    key,
	}

	lower := strings.ToLower(beneficiary)
	for known, category := range p.Beneficiaries {
		if strings.Contains(lower, strings.ToLower(known)) {
			txn.Category = category
			txn.Flag = model.FlagNone
			break
		}
	}
	return txn, true
}

// paymentRow handles merchant payments. Left uncategorized here; the
// categorization engine decides category or flags the transaction.
func (p *BoGParser) paymentRow(date time.Time, details string, cols columns, key string) (model.Transaction, bool) {
	amt, cur, ok := extractCharged(details)
	if !ok {
		amt, cur, ok = extractLeading(details)
	}
	if !ok {
		switch {
		case cols.GEL.IsNegative():
			amt, cur, ok = cols.GEL.Abs(), "GEL", true
		case cols.USD.IsNegative():
			amt, cur, ok = cols.USD.Abs(), "USD", true
		case cols.EUR.IsNegative():
			amt, cur, ok = cols.EUR.Abs(), "EUR", true
		case cols.GBP.IsNegative():
			amt, cur, ok = cols.GBP.Abs(), "GBP", true
		}
	}
	if !ok {
		log.Warn("dropping unpriceable payment", "date", date.Format("2006-01-02"))
		return model.Transaction{}, false
	}

	merchant := extractMerchant(details)
	if actual, found := extractActualDate(details); found {
		date = actual
	}

	description := merchant
	if description == "" {
		description = truncate(details, descriptionLimit)
	}
	if p.Normalize != nil {
		description = p.Normalize(details, description)
	}

	return model.Transaction{
		Date:        date,
		Description: description,
		Amount:      amt,
		Currency:    cur,
		DedupKey:    key,
		Merchant:    merchant,
		MCC:         extractMCC(details),
	}, true
}

func isInternal(details string) bool {
	lower := strings.ToLower(details)
	for _, marker := range internalMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// columnAmount reads a per-currency column, tolerating short rows and
// unparsable cells as zero.
func columnAmount(rec []string, col int) decimal.Decimal {
	if col >= len(rec) {
		return decimal.Zero
	}
	d, err := ParseEuropeanAmount(rec[col])
	if err != nil {
		return decimal.Zero
	}
	return d
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// stripBOM drops the UTF-8 byte order mark some exports lead with.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if ch, _, err := br.ReadRune(); err != nil || ch != '\ufeff' {
		_ = br.UnreadRune()
	}
	return br
}
