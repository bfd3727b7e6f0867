package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/SscSPs/convertly/internal/apperrors"
	"github.com/SscSPs/convertly/internal/core/domain"
	portsrepo "github.com/SscSPs/convertly/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/convertly/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// unitService converts values between units of the same category.
type unitService struct {
	BaseService
	unitRepo portsrepo.UnitReader
}

// NewUnitService creates a new unit conversion service.
func NewUnitService(unitRepo portsrepo.UnitReader) portssvc.UnitSvcFacade {
	return &unitService{unitRepo: unitRepo}
}

// Ensure unitService implements the UnitSvcFacade interface
var _ portssvc.UnitSvcFacade = (*unitService)(nil)

func (s *unitService) ListCategories(ctx context.Context) []domain.UnitCategory {
	out := make([]domain.UnitCategory, len(domain.UnitCategories))
	copy(out, domain.UnitCategories)
	return out
}

func (s *unitService) ListUnits(ctx context.Context, category domain.UnitCategory) ([]domain.UnitDefinition, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("unit category %q: %w", category, apperrors.ErrNotFound)
	}
	units, err := s.unitRepo.ListUnits(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s units: %w", category, err)
	}
	return units, nil
}

func (s *unitService) ConvertUnit(ctx context.Context, category domain.UnitCategory, valueText, fromCode, toCode string) (*domain.ConversionResult, error) {
	value, err := domain.ParseAmount(valueText)
	if err != nil {
		s.LogDebug(ctx, "Rejected unit conversion input", slog.String("value", valueText))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnconvertible, err)
	}
	return s.ConvertUnitValue(ctx, category, value, fromCode, toCode)
}

func (s *unitService) ConvertUnitValue(ctx context.Context, category domain.UnitCategory, value float64, fromCode, toCode string) (*domain.ConversionResult, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w: value must be a finite number", apperrors.ErrUnconvertible)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown unit category %q", apperrors.ErrUnconvertible, category)
	}

	from, err := s.findUnit(ctx, category, fromCode)
	if err != nil {
		return nil, err
	}
	to, err := s.findUnit(ctx, category, toCode)
	if err != nil {
		return nil, err
	}

	var raw float64
	if category.UsesFunctions() {
		raw = to.FromBase(from.ToBase(value))
	} else {
		raw = value * from.Factor / to.Factor
	}
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return nil, fmt.Errorf("%w: %g %s is out of range in %s", apperrors.ErrUnconvertible, value, from.Code, to.Code)
	}

	result := domain.NewConversionResult(from.Code, to.Code, value, decimal.NewFromFloat(raw), category.Precision())
	s.LogDebug(ctx, "Converted unit value",
		slog.String("category", string(category)),
		slog.String("from", from.Code),
		slog.String("to", to.Code),
		slog.String("result", result.String()))
	return result, nil
}

// findUnit maps a lookup miss to ErrUnconvertible so callers see a single failure kind.
func (s *unitService) findUnit(ctx context.Context, category domain.UnitCategory, code string) (*domain.UnitDefinition, error) {
	u, err := s.unitRepo.FindUnit(ctx, category, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown %s unit %q", apperrors.ErrUnconvertible, category, code)
		}
		s.LogWarn(ctx, err, "Unit lookup failed", slog.String("category", string(category)), slog.String("code", code))
		return nil, fmt.Errorf("failed to look up %s unit %q: %w", category, code, err)
	}
	return u, nil
}
