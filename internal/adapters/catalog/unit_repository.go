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

// StaticUnitRepository serves unit definitions from an in-memory table.
type StaticUnitRepository struct {
	byCategory map[domain.UnitCategory][]domain.UnitDefinition
	index      map[domain.UnitCategory]map[string]int
}

// Ensure implementation matches interface
var _ portsrepo.UnitRepositoryFacade = (*StaticUnitRepository)(nil)

// NewStaticUnitRepository validates the seed records and indexes them by category.
func NewStaticUnitRepository(seed []models.Unit) (*StaticUnitRepository, error) {
	r := &StaticUnitRepository{
		byCategory: make(map[domain.UnitCategory][]domain.UnitDefinition),
		index:      make(map[domain.UnitCategory]map[string]int),
	}

	for _, m := range seed {
		if err := validateRecord("unit", m.Code, m); err != nil {
			return nil, err
		}
		u := mapping.ToDomainUnit(m)
		if err := u.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if r.index[u.Category] == nil {
			r.index[u.Category] = make(map[string]int)
		}
		if _, dup := r.index[u.Category][u.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate %s unit %q", apperrors.ErrValidation, u.Category, u.Code)
		}
		r.index[u.Category][u.Code] = len(r.byCategory[u.Category])
		r.byCategory[u.Category] = append(r.byCategory[u.Category], u)
	}

	for _, c := range domain.UnitCategories {
		if _, ok := r.index[c][c.BaseUnit()]; !ok && len(r.byCategory[c]) > 0 {
			return nil, fmt.Errorf("%w: %s is missing its base unit %q", apperrors.ErrValidation, c, c.BaseUnit())
		}
	}
	return r, nil
}

// ListUnits returns the units of a category in seed order.
func (r *StaticUnitRepository) ListUnits(ctx context.Context, category domain.UnitCategory) ([]domain.UnitDefinition, error) {
	units, ok := r.byCategory[category]
	if !ok {
		return nil, fmt.Errorf("unit category %q: %w", category, apperrors.ErrNotFound)
	}
	out := make([]domain.UnitDefinition, len(units))
	copy(out, units)
	return out, nil
}

// FindUnit looks up a unit code within a category. Codes are matched case-insensitively.
func (r *StaticUnitRepository) FindUnit(ctx context.Context, category domain.UnitCategory, code string) (*domain.UnitDefinition, error) {
	i, ok := r.index[category][strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, fmt.Errorf("%s unit %q: %w", category, code, apperrors.ErrNotFound)
	}
	u := r.byCategory[category][i]
	return &u, nil
}
