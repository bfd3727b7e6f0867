package services

import (
	"context"

	"github.com/SscSPs/convertly/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate returns how many units of toCode one unit of fromCode buys.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error)
}

// CurrencyConverterSvc converts amounts between currencies.
type CurrencyConverterSvc interface {
	// ConvertCurrency parses amountText and converts it from fromCode to toCode.
	// Unparseable amounts and unknown codes yield apperrors.ErrUnconvertible.
	ConvertCurrency(ctx context.Context, amountText, fromCode, toCode string) (*domain.ConversionResult, error)

	// ConvertCurrencyAmount converts an already parsed amount.
	ConvertCurrencyAmount(ctx context.Context, amount float64, fromCode, toCode string) (*domain.ConversionResult, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	ExchangeRateReaderSvc
	CurrencyConverterSvc
}
