package catalog

import (
	"context"
	"fmt"

	"github.com/SscSPs/convertly/internal/apperrors"
	"github.com/SscSPs/convertly/internal/core/domain"
	portsrepo "github.com/SscSPs/convertly/internal/core/ports/repositories"
	"github.com/SscSPs/convertly/internal/models"
	"github.com/SscSPs/convertly/internal/utils/mapping"
)

// StaticExchangeRateRepository holds the exchange rate table built at startup.
type StaticExchangeRateRepository struct {
	table *domain.ExchangeRateTable
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRateRepositoryFacade = (*StaticExchangeRateRepository)(nil)

// NewStaticExchangeRateRepository validates the seed rates and builds the table against base.
func NewStaticExchangeRateRepository(base string, seed []models.ExchangeRate) (*StaticExchangeRateRepository, error) {
	seen := make(map[string]struct{}, len(seed))
	for _, m := range seed {
		if err := validateRecord("exchange rate", m.CurrencyCode, m); err != nil {
			return nil, err
		}
		if _, dup := seen[m.CurrencyCode]; dup {
			return nil, fmt.Errorf("%w: duplicate exchange rate for %q", apperrors.ErrValidation, m.CurrencyCode)
		}
		seen[m.CurrencyCode] = struct{}{}
	}

	table, err := mapping.ToDomainExchangeRateTable(base, seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return &StaticExchangeRateRepository{table: table}, nil
}

// GetRateTable returns the table. It never changes after construction.
func (r *StaticExchangeRateRepository) GetRateTable(ctx context.Context) (*domain.ExchangeRateTable, error) {
	return r.table, nil
}
