package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/convertly/internal/adapters/catalog"
	"github.com/SscSPs/convertly/internal/core/domain"
	portssvc "github.com/SscSPs/convertly/internal/core/ports/services"
	"github.com/SscSPs/convertly/internal/core/services"
	"github.com/SscSPs/convertly/internal/dto"
	"github.com/SscSPs/convertly/internal/handlers"
	"github.com/SscSPs/convertly/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, fromCode, toCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCurrencyService) ConvertCurrency(ctx context.Context, amountText, fromCode, toCode string) (*domain.ConversionResult, error) {
	args := m.Called(ctx, amountText, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionResult), args.Error(1)
}

func (m *MockCurrencyService) ConvertCurrencyAmount(ctx context.Context, amount float64, fromCode, toCode string) (*domain.ConversionResult, error) {
	args := m.Called(ctx, amount, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *HandlersTestSuite) SetupTest() {
	repos, err := catalog.NewRepositoryProvider()
	suite.Require().NoError(err)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, services.NewServiceContainer(repos), nil)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v))
}

// --- Test Cases ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.get("/health")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestListUnitCategories() {
	w := suite.get("/api/v1/units")
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp []dto.UnitCategoryResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 4)
	suite.Equal("length", resp[0].Category)
	suite.Equal("m", resp[0].BaseUnit)
	suite.Equal("temperature", resp[2].Category)
	suite.Equal(int32(2), resp[2].Precision)
	suite.Zero(resp[2].Units[1].Factor)
}

func (suite *HandlersTestSuite) TestGetUnitCategory() {
	w := suite.get("/api/v1/units/Volume")
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.UnitCategoryResponse
	suite.decode(w, &resp)
	suite.Equal("volume", resp.Category)
	suite.Len(resp.Units, 9)
	suite.Equal("Gallons (US)", resp.Units[2].Label)

	w = suite.get("/api/v1/units/speed")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestCurrencies() {
	w := suite.get("/api/v1/currencies")
	suite.Require().Equal(http.StatusOK, w.Code)
	var list []dto.CurrencyResponse
	suite.decode(w, &list)
	suite.Len(list, 15)

	w = suite.get("/api/v1/currencies/inr")
	suite.Require().Equal(http.StatusOK, w.Code)
	var inr dto.CurrencyResponse
	suite.decode(w, &inr)
	suite.Equal("Indian Rupee", inr.Name)
	suite.Equal("₹", inr.Symbol)

	suite.Equal(http.StatusNotFound, suite.get("/api/v1/currencies/XXX").Code)
	suite.Equal(http.StatusBadRequest, suite.get("/api/v1/currencies/EURO").Code)
}

func (suite *HandlersTestSuite) TestExchangeRate() {
	w := suite.get("/api/v1/exchange-rates/usd/eur")
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.ExchangeRateResponse
	suite.decode(w, &resp)
	suite.Equal("USD", resp.FromCurrencyCode)
	suite.Equal("EUR", resp.ToCurrencyCode)
	suite.Equal("USD", resp.BaseCurrencyCode)
	suite.Equal("0.92", resp.Rate.String())

	suite.Equal(http.StatusNotFound, suite.get("/api/v1/exchange-rates/USD/XXX").Code)
	suite.Equal(http.StatusBadRequest, suite.get("/api/v1/exchange-rates/US/EUR").Code)
}

func (suite *HandlersTestSuite) TestConvertUnit() {
	w := suite.get("/api/v1/conversions/unit?category=length&value=1&from=km&to=m")
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.ConversionResponse
	suite.decode(w, &resp)
	suite.Equal("1000.0000", resp.Result)
	suite.Equal("km", resp.From)
	suite.Equal("m", resp.To)
	suite.Equal(int32(4), resp.Precision)

	w = suite.get("/api/v1/conversions/unit?category=temperature&value=100&from=c&to=f")
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &resp)
	suite.Equal("212.00", resp.Result)
}

func (suite *HandlersTestSuite) TestConvertUnit_Unconvertible() {
	w := suite.get("/api/v1/conversions/unit?category=length&value=abc&from=m&to=cm")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(w.Body.String(), "unconvertible input")

	w = suite.get("/api/v1/conversions/unit?category=length&value=1&from=m&to=kg")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.get("/api/v1/conversions/unit?category=length&from=m&to=cm")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlersTestSuite) TestConvertUnit_MalformedQuery() {
	suite.Equal(http.StatusBadRequest, suite.get("/api/v1/conversions/unit?category=speed&value=1&from=m&to=cm").Code)
	suite.Equal(http.StatusBadRequest, suite.get("/api/v1/conversions/unit?category=length&value=1&to=cm").Code)
}

func (suite *HandlersTestSuite) TestConvertCurrency() {
	w := suite.get("/api/v1/conversions/currency?amount=1&from=EUR&to=USD")
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.ConversionResponse
	suite.decode(w, &resp)
	suite.Equal("1.0870", resp.Result)

	suite.Equal(http.StatusUnprocessableEntity, suite.get("/api/v1/conversions/currency?amount=ten&from=EUR&to=USD").Code)
	suite.Equal(http.StatusUnprocessableEntity, suite.get("/api/v1/conversions/currency?amount=1&from=EUR&to=XXX").Code)
	suite.Equal(http.StatusBadRequest, suite.get("/api/v1/conversions/currency?amount=1&from=EURO&to=USD").Code)
}

func (suite *HandlersTestSuite) TestSwaggerDisabledInProduction() {
	suite.Equal(http.StatusNotFound, suite.get("/swagger/index.html").Code)
}

// --- Service failures ---

func TestCurrencyHandlers_ServiceFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repos, err := catalog.NewRepositoryProvider()
	if err != nil {
		t.Fatal(err)
	}
	mockSvc := new(MockCurrencyService)
	container := &portssvc.ServiceContainer{
		Unit:     services.NewUnitService(repos.UnitRepo),
		Currency: mockSvc,
	}
	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{IsProduction: true}, container, nil)

	mockSvc.On("ListCurrencies", mock.Anything).Return(nil, errors.New("boom")).Once()
	mockSvc.On("ConvertCurrency", mock.Anything, "1", "USD", "EUR").Return(nil, errors.New("boom")).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("list currencies: got status %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/conversions/currency?amount=1&from=USD&to=EUR", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("convert currency: got status %d", w.Code)
	}

	mockSvc.AssertExpectations(t)
}
