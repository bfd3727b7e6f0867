package domain

import (
	"fmt"
	"strings"
)

// UnitCategory groups units that can be converted into one another.
type UnitCategory string

const (
	CategoryLength      UnitCategory = "length"
	CategoryWeight      UnitCategory = "weight"
	CategoryTemperature UnitCategory = "temperature"
	CategoryVolume      UnitCategory = "volume"
)

// UnitCategories lists the supported categories in display order.
var UnitCategories = []UnitCategory{CategoryLength, CategoryWeight, CategoryTemperature, CategoryVolume}

// ParseUnitCategory resolves a category name, ignoring case and surrounding whitespace.
func ParseUnitCategory(s string) (UnitCategory, error) {
	c := UnitCategory(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown unit category %q", s)
	}
	return c, nil
}

// IsValid reports whether c is one of the supported categories.
func (c UnitCategory) IsValid() bool {
	switch c {
	case CategoryLength, CategoryWeight, CategoryTemperature, CategoryVolume:
		return true
	}
	return false
}

// Label is the display name of the category.
func (c UnitCategory) Label() string {
	switch c {
	case CategoryLength:
		return "Length"
	case CategoryWeight:
		return "Weight"
	case CategoryTemperature:
		return "Temperature"
	case CategoryVolume:
		return "Volume"
	}
	return string(c)
}

// BaseUnit is the code of the unit every conversion in the category passes through.
func (c UnitCategory) BaseUnit() string {
	switch c {
	case CategoryLength:
		return "m"
	case CategoryWeight:
		return "kg"
	case CategoryTemperature:
		return "c"
	case CategoryVolume:
		return "l"
	}
	return ""
}

// Precision is the number of decimal places conversion results are rounded to.
func (c UnitCategory) Precision() int32 {
	if c == CategoryTemperature {
		return 2
	}
	return 4
}

// UsesFunctions reports whether units of the category convert through ToBase/FromBase
// functions instead of a linear factor.
func (c UnitCategory) UsesFunctions() bool {
	return c == CategoryTemperature
}

// UnitDefinition describes one unit. Linear units set Factor, the multiplier that takes a
// value in this unit to the category base unit. Units whose conversion is not proportional
// (temperature) set ToBase and FromBase instead.
type UnitDefinition struct {
	Code     string       `json:"code"`
	Label    string       `json:"label"`
	Category UnitCategory `json:"category"`
	Factor   float64      `json:"factor,omitempty"`

	ToBase   func(float64) float64 `json:"-"`
	FromBase func(float64) float64 `json:"-"`
}

// IsLinear reports whether the unit converts through Factor.
func (u UnitDefinition) IsLinear() bool {
	return u.ToBase == nil && u.FromBase == nil
}

// Normalize converts v from this unit to the category base unit.
func (u UnitDefinition) Normalize(v float64) float64 {
	if u.IsLinear() {
		return v * u.Factor
	}
	return u.ToBase(v)
}

// Denormalize converts v from the category base unit to this unit.
func (u UnitDefinition) Denormalize(v float64) float64 {
	if u.IsLinear() {
		return v / u.Factor
	}
	return u.FromBase(v)
}

// Validate checks the unit against the conversion convention of its category.
func (u UnitDefinition) Validate() error {
	if !u.Category.IsValid() {
		return fmt.Errorf("unit %q: unknown category %q", u.Code, u.Category)
	}
	if u.Category.UsesFunctions() {
		if u.ToBase == nil || u.FromBase == nil {
			return fmt.Errorf("unit %q: %s units need both ToBase and FromBase", u.Code, u.Category)
		}
		if u.Factor != 0 {
			return fmt.Errorf("unit %q: %s units must not set a factor", u.Code, u.Category)
		}
		return nil
	}
	if !u.IsLinear() {
		return fmt.Errorf("unit %q: %s units must not set conversion functions", u.Code, u.Category)
	}
	if u.Factor <= 0 {
		return fmt.Errorf("unit %q: factor must be positive", u.Code)
	}
	return nil
}
