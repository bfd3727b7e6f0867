package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/SscSPs/convertly/internal/apperrors"
	"github.com/SscSPs/convertly/internal/core/domain"
	portsrepo "github.com/SscSPs/convertly/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/convertly/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// CurrencyPrecision is the number of decimal places currency conversions are rounded to.
const CurrencyPrecision int32 = 4

// currencyService lists currencies and converts amounts through the base currency.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
	rateRepo     portsrepo.ExchangeRateReader
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyReader, rateRepo portsrepo.ExchangeRateReader) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo, rateRepo: rateRepo}
}

// Ensure currencyService implements the CurrencySvcFacade interface
var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, normalizeCurrencyCode(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	fromCode = normalizeCurrencyCode(fromCode)
	toCode = normalizeCurrencyCode(toCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return decimal.Zero, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	table, err := s.rateRepo.GetRateTable(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get exchange rates in service: %w", err)
	}
	rate, ok := table.CrossRate(fromCode, toCode)
	if !ok {
		return decimal.Zero, fmt.Errorf("exchange rate %s/%s: %w", fromCode, toCode, apperrors.ErrNotFound)
	}
	return rate, nil
}

func (s *currencyService) ConvertCurrency(ctx context.Context, amountText, fromCode, toCode string) (*domain.ConversionResult, error) {
	amount, err := domain.ParseAmount(amountText)
	if err != nil {
		s.LogDebug(ctx, "Rejected currency conversion input", slog.String("amount", amountText))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnconvertible, err)
	}
	return s.ConvertCurrencyAmount(ctx, amount, fromCode, toCode)
}

func (s *currencyService) ConvertCurrencyAmount(ctx context.Context, amount float64, fromCode, toCode string) (*domain.ConversionResult, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: amount must be a finite number", apperrors.ErrUnconvertible)
	}
	fromCode = normalizeCurrencyCode(fromCode)
	toCode = normalizeCurrencyCode(toCode)

	table, err := s.rateRepo.GetRateTable(ctx)
	if err != nil {
		s.LogWarn(ctx, err, "Exchange rate table unavailable")
		return nil, fmt.Errorf("failed to get exchange rates in service: %w", err)
	}
	fromRate, ok := table.Rate(fromCode)
	if !ok {
		return nil, fmt.Errorf("%w: no exchange rate for %q", apperrors.ErrUnconvertible, fromCode)
	}
	toRate, ok := table.Rate(toCode)
	if !ok {
		return nil, fmt.Errorf("%w: no exchange rate for %q", apperrors.ErrUnconvertible, toCode)
	}

	inBase := decimal.NewFromFloat(amount).Div(fromRate)
	result := domain.NewConversionResult(fromCode, toCode, amount, inBase.Mul(toRate), CurrencyPrecision)

	s.LogDebug(ctx, "Converted currency amount",
		slog.String("from", fromCode),
		slog.String("to", toCode),
		slog.String("result", result.String()))
	return result, nil
}

func normalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsUnconvertible reports whether err means a conversion produced no result.
func IsUnconvertible(err error) bool {
	return errors.Is(err, apperrors.ErrUnconvertible)
}
