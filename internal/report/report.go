// Package report aggregates the expense ledger into a cash-flow summary,
// converted into the reporting currency.
package report

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bogie-dev/bogie/internal/config"
	"github.com/bogie-dev/bogie/internal/model"
)

// ErrUnknownCurrency is returned when the ledger holds a currency absent
// from the configured rate table. Aggregation refuses to guess a rate.
var ErrUnknownCurrency = errors.New("unknown currency")

// weeksPerMonth normalizes a tracked period into calendar months.
const weeksPerMonth = 4.33

// Converter converts amounts into USD using a static rate snapshot.
type Converter struct {
	perUSD map[string]decimal.Decimal
	asOf   string
}

// NewConverter builds a Converter from the configured rate table.
func NewConverter(rates config.RatesConfig) *Converter {
	perUSD := make(map[string]decimal.Decimal, len(rates.PerUSD))
	for currency, rate := range rates.PerUSD {
		perUSD[currency] = decimal.NewFromFloat(rate)
	}
	return &Converter{perUSD: perUSD, asOf: rates.AsOf}
}

// AsOf returns the effective date of the rate snapshot.
func (c *Converter) AsOf() string { return c.asOf }

// ToUSD converts an amount. USD passes through; any currency missing from
// the table is an explicit error.
func (c *Converter) ToUSD(amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	if currency == "USD" {
		return amount, nil
	}
	rate, ok := c.perUSD[currency]
	if !ok || rate.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w %q, add it to report.rates.per_usd", ErrUnknownCurrency, currency)
	}
	return amount.Div(rate).Round(2), nil
}

// FromUSD converts a USD amount into another tabled currency.
func (c *Converter) FromUSD(amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	if currency == "USD" {
		return amount, nil
	}
	rate, ok := c.perUSD[currency]
	if !ok || rate.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w %q, add it to report.rates.per_usd", ErrUnknownCurrency, currency)
	}
	return amount.Mul(rate).Round(2), nil
}

// Convert converts between any two tabled currencies via USD.
func (c *Converter) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	usd, err := c.ToUSD(amount, from)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.FromUSD(usd, to)
}

// CategoryTotal is one category's spend over the tracked period, in the
// reporting currency.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
	PerMonth decimal.Decimal // normalized
}

// Summary is the aggregated cash-flow view of the ledger.
type Summary struct {
	Currency   string
	Start, End time.Time
	Weeks      float64
	Months     float64
	Categories []CategoryTotal // sorted by descending total
	Total      decimal.Decimal
	PerMonth   decimal.Decimal
}

// Build aggregates ledger entries into the reporting currency. Fails on
// the first entry whose currency cannot be converted.
func Build(entries []model.Entry, conv *Converter, currency string) (*Summary, error) {
	if len(entries) == 0 {
		return &Summary{Currency: currency}, nil
	}

	summary := &Summary{Currency: currency, Start: entries[0].Date, End: entries[0].Date}
	byCategory := make(map[model.Category]decimal.Decimal)

	for _, e := range entries {
		converted, err := conv.Convert(e.Amount, e.Currency, currency)
		if err != nil {
			return nil, fmt.Errorf("entry %q (%s): %w", e.Description, e.Date.Format("2006-01-02"), err)
		}
		byCategory[e.Category] = byCategory[e.Category].Add(converted)
		summary.Total = summary.Total.Add(converted)

		if e.Date.Before(summary.Start) {
			summary.Start = e.Date
		}
		if e.Date.After(summary.End) {
			summary.End = e.Date
		}
	}

	summary.Weeks = summary.End.Sub(summary.Start).Hours() / 24 / 7
	if summary.Weeks < 1 {
		summary.Weeks = 1
	}
	summary.Months = summary.Weeks / weeksPerMonth

	months := decimal.NewFromFloat(summary.Months)
	for category, total := range byCategory {
		summary.Categories = append(summary.Categories, CategoryTotal{
			Category: category,
			Total:    total,
			PerMonth: total.Div(months).Round(2),
		})
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		if !summary.Categories[i].Total.Equal(summary.Categories[j].Total) {
			return summary.Categories[i].Total.GreaterThan(summary.Categories[j].Total)
		}
		return summary.Categories[i].Category < summary.Categories[j].Category
	})
	summary.PerMonth = summary.Total.Div(months).Round(2)

	return summary, nil
}
