package mapping

import (
	"github.com/SscSPs/convertly/internal/core/domain"
	"github.com/SscSPs/convertly/internal/models"
)

// ToDomainUnit converts a model Unit to a domain UnitDefinition
func ToDomainUnit(m models.Unit) domain.UnitDefinition {
	return domain.UnitDefinition{
		Code:     m.Code,
		Label:    m.Label,
		Category: domain.UnitCategory(m.Category),
		Factor:   m.Factor,
		ToBase:   m.ToBase,
		FromBase: m.FromBase,
	}
}

// ToDomainUnitSlice converts a slice of model Units to a slice of domain UnitDefinitions
func ToDomainUnitSlice(ms []models.Unit) []domain.UnitDefinition {
	ds := make([]domain.UnitDefinition, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUnit(m)
	}
	return ds
}
