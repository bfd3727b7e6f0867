package models

// Unit is the seed record for a unit of measurement. Factor-based units set Factor;
// temperature units set ToBase and FromBase.
type Unit struct {
	Code     string  `json:"code" validate:"required,lowercase,max=8"`
	Label    string  `json:"label" validate:"required"`
	Category string  `json:"category" validate:"required,oneof=length weight temperature volume"`
	Factor   float64 `json:"factor,omitempty" validate:"gte=0"`

	ToBase   func(float64) float64 `json:"-" validate:"-"`
	FromBase func(float64) float64 `json:"-" validate:"-"`
}
