package mapping

import (
	"github.com/SscSPs/convertly/internal/core/domain"
	"github.com/SscSPs/convertly/internal/models"
	"github.com/shopspring/decimal"
)

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Symbol:       m.Symbol,
		Name:         m.Name,
		FlagEmoji:    m.FlagEmoji,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}

// ToDomainExchangeRateTable builds a rate table from model exchange rates.
func ToDomainExchangeRateTable(base string, ms []models.ExchangeRate) (*domain.ExchangeRateTable, error) {
	rates := make(map[string]decimal.Decimal, len(ms))
	for _, m := range ms {
		rates[m.CurrencyCode] = m.Rate
	}
	return domain.NewExchangeRateTable(base, rates)
}
