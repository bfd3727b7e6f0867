package catalog

import (
	"fmt"

	"github.com/SscSPs/convertly/internal/apperrors"
	"github.com/SscSPs/convertly/internal/core/domain"
	portsrepo "github.com/SscSPs/convertly/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the static repositories from the built-in tables.
func NewRepositoryProvider() (portsrepo.RepositoryProvider, error) {
	unitRepo, err := NewStaticUnitRepository(unitSeed)
	if err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to load unit catalog: %w", err)
	}
	currencyRepo, err := NewStaticCurrencyRepository(currencySeed)
	if err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to load currency catalog: %w", err)
	}
	rateRepo, err := NewStaticExchangeRateRepository(domain.BaseCurrencyCode, exchangeRateSeed)
	if err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	if err := checkRatesCoverCurrencies(currencyRepo, rateRepo); err != nil {
		return portsrepo.RepositoryProvider{}, err
	}

	return portsrepo.RepositoryProvider{
		UnitRepo:         unitRepo,
		CurrencyRepo:     currencyRepo,
		ExchangeRateRepo: rateRepo,
	}, nil
}

// checkRatesCoverCurrencies makes sure every listed currency can be converted.
func checkRatesCoverCurrencies(currencies *StaticCurrencyRepository, rates *StaticExchangeRateRepository) error {
	for _, c := range currencies.currencies {
		if _, ok := rates.table.Rate(c.CurrencyCode); !ok {
			return fmt.Errorf("%w: currency %q has no exchange rate", apperrors.ErrValidation, c.CurrencyCode)
		}
	}
	return nil
}
