package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/convertly/internal/adapters/catalog"
	"github.com/SscSPs/convertly/internal/apperrors"
	"github.com/SscSPs/convertly/internal/core/domain"
	portssvc "github.com/SscSPs/convertly/internal/core/ports/services"
	"github.com/SscSPs/convertly/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	mockRateRepo     *MockExchangeRateRepository
	table            *domain.ExchangeRateTable
	service          portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewCurrencyService(suite.mockCurrencyRepo, suite.mockRateRepo)

	table, err := domain.NewExchangeRateTable("USD", map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.92"),
		"JPY": decimal.RequireFromString("150.13"),
	})
	suite.Require().NoError(err)
	suite.table = table
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestConvertCurrency_USDToEUR() {
	ctx := context.Background()
	suite.mockRateRepo.On("GetRateTable", ctx).Return(suite.table, nil).Once()

	result, err := suite.service.ConvertCurrency(ctx, "1", "USD", "EUR")

	suite.Require().NoError(err)
	suite.Equal("0.9200", result.String())
	suite.Equal(int32(4), result.Precision)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestConvertCurrency_EURToUSD() {
	ctx := context.Background()
	suite.mockRateRepo.On("GetRateTable", ctx).Return(suite.table, nil).Once()

	result, err := suite.service.ConvertCurrency(ctx, "1", "EUR", "USD")

	suite.Require().NoError(err)
	suite.Equal("1.0870", result.String())
	suite.True(result.Raw.GreaterThan(result.Value.Sub(decimal.RequireFromString("0.0001"))))
}

func (suite *CurrencyServiceTestSuite) TestConvertCurrency_CrossThroughBase() {
	ctx := context.Background()
	suite.mockRateRepo.On("GetRateTable", ctx).Return(suite.table, nil).Once()

	result, err := suite.service.ConvertCurrency(ctx, "100", "eur", " jpy ")

	suite.Require().NoError(err)
	suite.Equal("EUR", result.From)
	suite.Equal("JPY", result.To)
	suite.Equal("16318.4783", result.String())
}

func (suite *CurrencyServiceTestSuite) TestConvertCurrency_InvalidAmount() {
	ctx := context.Background()

	for _, input := range []string{"abc", "", "12$", "Inf"} {
		result, err := suite.service.ConvertCurrency(ctx, input, "USD", "EUR")
		suite.Nil(result, "input %q", input)
		suite.ErrorIs(err, apperrors.ErrUnconvertible, "input %q", input)
	}
	suite.mockRateRepo.AssertNotCalled(suite.T(), "GetRateTable", mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestConvertCurrency_UnknownCode() {
	ctx := context.Background()
	suite.mockRateRepo.On("GetRateTable", ctx).Return(suite.table, nil).Twice()

	result, err := suite.service.ConvertCurrency(ctx, "1", "XXX", "EUR")
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnconvertible)

	result, err = suite.service.ConvertCurrency(ctx, "1", "USD", "GBP")
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnconvertible)
}

func (suite *CurrencyServiceTestSuite) TestConvertCurrency_RateTableFailure() {
	ctx := context.Background()
	suite.mockRateRepo.On("GetRateTable", ctx).Return(nil, errors.New("unavailable")).Once()

	result, err := suite.service.ConvertCurrency(ctx, "1", "USD", "EUR")

	suite.Nil(result)
	suite.Error(err)
	suite.NotErrorIs(err, apperrors.ErrUnconvertible)
}

func (suite *CurrencyServiceTestSuite) TestGetExchangeRate() {
	ctx := context.Background()
	suite.mockRateRepo.On("GetRateTable", ctx).Return(suite.table, nil)

	rate, err := suite.service.GetExchangeRate(ctx, "usd", "eur")
	suite.Require().NoError(err)
	suite.Equal("0.92", rate.String())

	_, err = suite.service.GetExchangeRate(ctx, "USD", "GBP")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.GetExchangeRate(ctx, "US", "EUR")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode() {
	ctx := context.Background()
	euro := &domain.Currency{CurrencyCode: "EUR", Name: "Euro", Symbol: "€"}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(euro, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").
		Return(nil, fmt.Errorf("currency %q: %w", "XXX", apperrors.ErrNotFound)).Once()

	got, err := suite.service.GetCurrencyByCode(ctx, "eur")
	suite.Require().NoError(err)
	suite.Equal(euro, got)

	_, err = suite.service.GetCurrencyByCode(ctx, "xxx")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return([]domain.Currency(nil), nil).Once()

	got, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

// --- Behaviour against the built-in catalog ---

func TestCurrencyService_BuiltInRates(t *testing.T) {
	repos, err := catalog.NewRepositoryProvider()
	require.NoError(t, err)
	svc := services.NewCurrencyService(repos.CurrencyRepo, repos.ExchangeRateRepo)
	ctx := context.Background()

	currencies, err := svc.ListCurrencies(ctx)
	require.NoError(t, err)

	for _, from := range currencies {
		for _, to := range currencies {
			there, err := svc.ConvertCurrencyAmount(ctx, 250, from.CurrencyCode, to.CurrencyCode)
			require.NoError(t, err)
			mid, _ := there.Raw.Float64()

			back, err := svc.ConvertCurrencyAmount(ctx, mid, to.CurrencyCode, from.CurrencyCode)
			require.NoError(t, err)
			got, _ := back.Raw.Float64()
			assert.InDelta(t, 250, got, 1e-9, "%s -> %s -> %s", from.CurrencyCode, to.CurrencyCode, from.CurrencyCode)
		}
	}

	result, err := svc.ConvertCurrency(ctx, "10", "GBP", "INR")
	require.NoError(t, err)
	assert.Equal(t, "1055.3165", result.String())
}
