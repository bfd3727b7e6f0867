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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type UnitServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUnitRepository
	service  portssvc.UnitSvcFacade
}

func (suite *UnitServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUnitRepository)
	suite.service = services.NewUnitService(suite.mockRepo)
}

func TestUnitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UnitServiceTestSuite))
}

var (
	meter      = &domain.UnitDefinition{Code: "m", Label: "Meters", Category: domain.CategoryLength, Factor: 1}
	centimeter = &domain.UnitDefinition{Code: "cm", Label: "Centimeters", Category: domain.CategoryLength, Factor: 0.01}
)

func (suite *UnitServiceTestSuite) TestConvertUnit_Success() {
	ctx := context.Background()
	suite.mockRepo.On("FindUnit", ctx, domain.CategoryLength, "m").Return(meter, nil).Once()
	suite.mockRepo.On("FindUnit", ctx, domain.CategoryLength, "cm").Return(centimeter, nil).Once()

	result, err := suite.service.ConvertUnit(ctx, domain.CategoryLength, "1", "m", "cm")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("100.0000", result.String())
	suite.Equal("m", result.From)
	suite.Equal("cm", result.To)
	suite.Equal(int32(4), result.Precision)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UnitServiceTestSuite) TestConvertUnit_InvalidValue() {
	ctx := context.Background()

	for _, input := range []string{"abc", "", "  ", "NaN", "1,5"} {
		result, err := suite.service.ConvertUnit(ctx, domain.CategoryLength, input, "m", "cm")
		suite.Nil(result, "input %q", input)
		suite.ErrorIs(err, apperrors.ErrUnconvertible, "input %q", input)
	}
	// Parsing fails before any lookup
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUnit")
}

func (suite *UnitServiceTestSuite) TestConvertUnit_UnknownUnit() {
	ctx := context.Background()
	suite.mockRepo.On("FindUnit", ctx, domain.CategoryLength, "m").Return(meter, nil).Once()
	suite.mockRepo.On("FindUnit", ctx, domain.CategoryLength, "kg").
		Return(nil, fmt.Errorf("length unit %q: %w", "kg", apperrors.ErrNotFound)).Once()

	result, err := suite.service.ConvertUnit(ctx, domain.CategoryLength, "1", "m", "kg")

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnconvertible)
	suite.Contains(err.Error(), "kg")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UnitServiceTestSuite) TestConvertUnit_UnknownCategory() {
	result, err := suite.service.ConvertUnit(context.Background(), domain.UnitCategory("speed"), "1", "m", "cm")

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnconvertible)
}

func (suite *UnitServiceTestSuite) TestConvertUnit_RepositoryFailure() {
	ctx := context.Background()
	suite.mockRepo.On("FindUnit", ctx, domain.CategoryLength, "m").Return(nil, errors.New("boom")).Once()

	result, err := suite.service.ConvertUnit(ctx, domain.CategoryLength, "1", "m", "cm")

	suite.Nil(result)
	suite.Error(err)
	suite.NotErrorIs(err, apperrors.ErrUnconvertible)
}

func (suite *UnitServiceTestSuite) TestConvertUnitValue_Overflow() {
	ctx := context.Background()
	km := &domain.UnitDefinition{Code: "km", Category: domain.CategoryLength, Factor: 1000}
	mm := &domain.UnitDefinition{Code: "mm", Category: domain.CategoryLength, Factor: 0.001}
	suite.mockRepo.On("FindUnit", ctx, domain.CategoryLength, "km").Return(km, nil).Once()
	suite.mockRepo.On("FindUnit", ctx, domain.CategoryLength, "mm").Return(mm, nil).Once()

	result, err := suite.service.ConvertUnitValue(ctx, domain.CategoryLength, 1e306, "km", "mm")

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnconvertible)
}

func (suite *UnitServiceTestSuite) TestListUnits() {
	ctx := context.Background()
	units := []domain.UnitDefinition{*meter, *centimeter}
	suite.mockRepo.On("ListUnits", ctx, domain.CategoryLength).Return(units, nil).Once()

	got, err := suite.service.ListUnits(ctx, domain.CategoryLength)
	suite.Require().NoError(err)
	suite.Equal(units, got)

	_, err = suite.service.ListUnits(ctx, domain.UnitCategory("speed"))
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UnitServiceTestSuite) TestListCategories() {
	got := suite.service.ListCategories(context.Background())
	suite.Equal([]domain.UnitCategory{
		domain.CategoryLength, domain.CategoryWeight, domain.CategoryTemperature, domain.CategoryVolume,
	}, got)
}

// --- Behaviour against the built-in catalog ---

func newCatalogUnitService(t *testing.T) portssvc.UnitSvcFacade {
	t.Helper()
	repos, err := catalog.NewRepositoryProvider()
	require.NoError(t, err)
	return services.NewUnitService(repos.UnitRepo)
}

func TestUnitService_KnownConversions(t *testing.T) {
	svc := newCatalogUnitService(t)
	ctx := context.Background()

	tests := []struct {
		category domain.UnitCategory
		value    string
		from, to string
		want     string
	}{
		{domain.CategoryTemperature, "0", "c", "f", "32.00"},
		{domain.CategoryTemperature, "100", "c", "f", "212.00"},
		{domain.CategoryTemperature, "0", "c", "k", "273.15"},
		{domain.CategoryTemperature, "-40", "f", "c", "-40.00"},
		{domain.CategoryTemperature, "0", "k", "f", "-459.67"},
		{domain.CategoryLength, "1", "km", "m", "1000.0000"},
		{domain.CategoryLength, "1", "mi", "ft", "5279.9869"},
		{domain.CategoryLength, "12", "in", "ft", "1.0000"},
		{domain.CategoryWeight, "1", "kg", "lb", "2.2046"},
		{domain.CategoryWeight, "1", "t", "mg", "1000000000.0000"},
		{domain.CategoryVolume, "1", "gal", "l", "3.7854"},
		{domain.CategoryVolume, "3", "tsp", "tbsp", "1.0000"},
		{domain.CategoryVolume, " 2 ", "l", "ml", "2000.0000"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s %s->%s", tt.category, tt.value, tt.from, tt.to), func(t *testing.T) {
			result, err := svc.ConvertUnit(ctx, tt.category, tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.String())
		})
	}
}

func TestUnitService_RoundTrip(t *testing.T) {
	svc := newCatalogUnitService(t)
	ctx := context.Background()

	for _, category := range []domain.UnitCategory{domain.CategoryLength, domain.CategoryWeight, domain.CategoryVolume, domain.CategoryTemperature} {
		units, err := svc.ListUnits(ctx, category)
		require.NoError(t, err)

		for _, u1 := range units {
			for _, u2 := range units {
				for _, x := range []float64{-12.5, 0, 1, 37.25, 1234.5678} {
					there, err := svc.ConvertUnitValue(ctx, category, x, u1.Code, u2.Code)
					require.NoError(t, err)
					mid, _ := there.Raw.Float64()

					back, err := svc.ConvertUnitValue(ctx, category, mid, u2.Code, u1.Code)
					require.NoError(t, err)
					got, _ := back.Raw.Float64()

					assert.InDelta(t, x, got, 1e-6, "%s: %g %s -> %s -> %s", category, x, u1.Code, u2.Code, u1.Code)
				}
			}
		}
	}
}

func TestUnitService_InvalidInputIsAbsentNotNaN(t *testing.T) {
	svc := newCatalogUnitService(t)

	result, err := svc.ConvertUnit(context.Background(), domain.CategoryLength, "abc", "m", "cm")

	assert.Nil(t, result)
	assert.True(t, services.IsUnconvertible(err))
}
