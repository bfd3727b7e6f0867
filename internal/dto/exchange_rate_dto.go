package dto

import (
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	BaseCurrencyCode string          `json:"baseCurrencyCode"`
	Rate             decimal.Decimal `json:"rate" swaggertype:"string" example:"0.92"`
}
