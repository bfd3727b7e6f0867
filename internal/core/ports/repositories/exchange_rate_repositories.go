package repositories

import (
	"context"

	"github.com/SscSPs/convertly/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// GetRateTable returns the exchange rate table loaded at startup.
	GetRateTable(ctx context.Context) (*domain.ExchangeRateTable, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
}
