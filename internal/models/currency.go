package models

import "github.com/shopspring/decimal"

// Currency is the seed record for a supported currency.
type Currency struct {
	CurrencyCode string `json:"currencyCode" yaml:"currencyCode" validate:"required,len=3,uppercase"` // e.g., "USD"
	Symbol       string `json:"symbol" yaml:"symbol" validate:"required"`                              // e.g., "$"
	Name         string `json:"name" yaml:"name" validate:"required"`                                  // e.g., "US Dollar"
	FlagEmoji    string `json:"flagEmoji,omitempty" yaml:"flagEmoji,omitempty"`
}

// ExchangeRate is the seed record for one currency's rate against the base currency.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode" yaml:"currencyCode" validate:"required,len=3,uppercase"`
	Rate         decimal.Decimal `json:"rate" yaml:"rate"`
}
