package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// BaseCurrencyCode is the currency every exchange rate is expressed against.
const BaseCurrencyCode = "USD"

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g., "USD"
	Name         string `json:"name"`         // e.g., "US Dollar"
	Symbol       string `json:"symbol"`       // e.g., "$"
	FlagEmoji    string `json:"flagEmoji,omitempty"`
}

// ExchangeRateTable maps currency codes to their rate against the base currency.
// A table is immutable once built.
type ExchangeRateTable struct {
	base  string
	rates map[string]decimal.Decimal
}

// NewExchangeRateTable builds a table from rates relative to base. Every rate must be
// positive and the base currency's own rate must be exactly 1.
func NewExchangeRateTable(base string, rates map[string]decimal.Decimal) (*ExchangeRateTable, error) {
	baseRate, ok := rates[base]
	if !ok {
		return nil, fmt.Errorf("base currency %q has no rate", base)
	}
	if !baseRate.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("base currency %q must have rate 1, got %s", base, baseRate)
	}

	copied := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate for %q must be positive, got %s", code, rate)
		}
		copied[code] = rate
	}
	return &ExchangeRateTable{base: base, rates: copied}, nil
}

// Base returns the base currency code.
func (t *ExchangeRateTable) Base() string {
	return t.base
}

// Rate returns the rate of code against the base currency.
func (t *ExchangeRateTable) Rate(code string) (decimal.Decimal, bool) {
	r, ok := t.rates[code]
	return r, ok
}

// Codes returns the currency codes in the table, sorted.
func (t *ExchangeRateTable) Codes() []string {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// CrossRate returns how many units of to one unit of from buys.
func (t *ExchangeRateTable) CrossRate(from, to string) (decimal.Decimal, bool) {
	fromRate, ok := t.rates[from]
	if !ok {
		return decimal.Zero, false
	}
	toRate, ok := t.rates[to]
	if !ok {
		return decimal.Zero, false
	}
	return toRate.Div(fromRate), true
}
