package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/convertly/internal/apperrors"
	"github.com/SscSPs/convertly/internal/core/domain"
	portsrepo "github.com/SscSPs/convertly/internal/core/ports/repositories"
	"github.com/SscSPs/convertly/internal/models"
	"github.com/SscSPs/convertly/internal/utils/mapping"
)

// StaticCurrencyRepository serves currency definitions from an in-memory table.
type StaticCurrencyRepository struct {
	currencies []domain.Currency
	index      map[string]int
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*StaticCurrencyRepository)(nil)

// NewStaticCurrencyRepository validates the seed records and indexes them by code.
func NewStaticCurrencyRepository(seed []models.Currency) (*StaticCurrencyRepository, error) {
	r := &StaticCurrencyRepository{index: make(map[string]int, len(seed))}
	for _, m := range seed {
		if err := validateRecord("currency", m.CurrencyCode, m); err != nil {
			return nil, err
		}
		if _, dup := r.index[m.CurrencyCode]; dup {
			return nil, fmt.Errorf("%w: duplicate currency %q", apperrors.ErrValidation, m.CurrencyCode)
		}
		r.index[m.CurrencyCode] = len(r.currencies)
		r.currencies = append(r.currencies, mapping.ToDomainCurrency(m))
	}
	return r, nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code, ignoring case.
func (r *StaticCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	i, ok := r.index[strings.ToUpper(strings.TrimSpace(currencyCode))]
	if !ok {
		return nil, fmt.Errorf("currency %q: %w", currencyCode, apperrors.ErrNotFound)
	}
	c := r.currencies[i]
	return &c, nil
}

// ListCurrencies returns every currency in seed order.
func (r *StaticCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	out := make([]domain.Currency, len(r.currencies))
	copy(out, r.currencies)
	return out, nil
}
