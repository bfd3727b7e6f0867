package repositories

import (
	"context"

	"github.com/SscSPs/convertly/internal/core/domain"
)

// UnitReader defines read operations for unit definitions
type UnitReader interface {
	// ListUnits returns the units of a category in display order.
	ListUnits(ctx context.Context, category domain.UnitCategory) ([]domain.UnitDefinition, error)

	// FindUnit retrieves a unit by its code within a category.
	FindUnit(ctx context.Context, category domain.UnitCategory, code string) (*domain.UnitDefinition, error)
}

// UnitRepositoryFacade combines all unit-related repository interfaces
type UnitRepositoryFacade interface {
	UnitReader
}
