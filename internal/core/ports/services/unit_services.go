package services

import (
	"context"

	"github.com/SscSPs/convertly/internal/core/domain"
)

// UnitReaderSvc defines read operations for unit definitions
type UnitReaderSvc interface {
	// ListCategories returns the supported unit categories in display order.
	ListCategories(ctx context.Context) []domain.UnitCategory

	// ListUnits returns the units of a category.
	ListUnits(ctx context.Context, category domain.UnitCategory) ([]domain.UnitDefinition, error)
}

// UnitConverterSvc converts values between units of one category.
type UnitConverterSvc interface {
	// ConvertUnit parses valueText and converts it between two units of category.
	// Unparseable values and unknown units yield apperrors.ErrUnconvertible.
	ConvertUnit(ctx context.Context, category domain.UnitCategory, valueText, fromCode, toCode string) (*domain.ConversionResult, error)

	// ConvertUnitValue converts an already parsed value.
	ConvertUnitValue(ctx context.Context, category domain.UnitCategory, value float64, fromCode, toCode string) (*domain.ConversionResult, error)
}

// UnitSvcFacade combines all unit-related service interfaces
type UnitSvcFacade interface {
	UnitReaderSvc
	UnitConverterSvc
}
