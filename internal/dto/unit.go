package dto

import (
	"github.com/SscSPs/convertly/internal/core/domain"
)

// UnitResponse defines the data returned for a unit.
type UnitResponse struct {
	Code  string `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
	// Factor to the category base unit; omitted for temperature units.
	Factor float64 `json:"factor,omitempty" yaml:"factor,omitempty"`
}

// UnitCategoryResponse describes a category and its units.
type UnitCategoryResponse struct {
	Category  string         `json:"category" yaml:"category"`
	Label     string         `json:"label" yaml:"label"`
	BaseUnit  string         `json:"baseUnit" yaml:"baseUnit"`
	Precision int32          `json:"precision" yaml:"precision"`
	Units     []UnitResponse `json:"units" yaml:"units"`
}

// ToUnitResponse converts a domain.UnitDefinition to UnitResponse DTO
func ToUnitResponse(u domain.UnitDefinition) UnitResponse {
	resp := UnitResponse{Code: u.Code, Label: u.Label}
	if u.IsLinear() {
		resp.Factor = u.Factor
	}
	return resp
}

// ToUnitCategoryResponse converts a category and its units to UnitCategoryResponse DTO
func ToUnitCategoryResponse(category domain.UnitCategory, units []domain.UnitDefinition) UnitCategoryResponse {
	resp := UnitCategoryResponse{
		Category:  string(category),
		Label:     category.Label(),
		BaseUnit:  category.BaseUnit(),
		Precision: category.Precision(),
		Units:     make([]UnitResponse, len(units)),
	}
	for i, u := range units {
		resp.Units[i] = ToUnitResponse(u)
	}
	return resp
}
