package domain_test

import (
	"testing"

	"github.com/SscSPs/convertly/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnitCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.UnitCategory
		wantErr bool
	}{
		{name: "lower case", input: "length", want: domain.CategoryLength},
		{name: "mixed case with spaces", input: "  Temperature ", want: domain.CategoryTemperature},
		{name: "volume", input: "VOLUME", want: domain.CategoryVolume},
		{name: "unknown", input: "speed", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseUnitCategory(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnitCategory_Metadata(t *testing.T) {
	assert.Equal(t, "m", domain.CategoryLength.BaseUnit())
	assert.Equal(t, "kg", domain.CategoryWeight.BaseUnit())
	assert.Equal(t, "c", domain.CategoryTemperature.BaseUnit())
	assert.Equal(t, "l", domain.CategoryVolume.BaseUnit())

	assert.Equal(t, int32(2), domain.CategoryTemperature.Precision())
	assert.Equal(t, int32(4), domain.CategoryVolume.Precision())
	assert.Equal(t, "Weight", domain.CategoryWeight.Label())
	assert.True(t, domain.CategoryTemperature.UsesFunctions())
	assert.False(t, domain.CategoryLength.UsesFunctions())
}

func TestUnitDefinition_NormalizeDenormalize(t *testing.T) {
	km := domain.UnitDefinition{Code: "km", Category: domain.CategoryLength, Factor: 1000}
	assert.InDelta(t, 2500.0, km.Normalize(2.5), 1e-9)
	assert.InDelta(t, 2.5, km.Denormalize(2500), 1e-9)

	f := domain.UnitDefinition{
		Code:     "f",
		Category: domain.CategoryTemperature,
		ToBase:   func(v float64) float64 { return (v - 32) * 5 / 9 },
		FromBase: func(v float64) float64 { return v*9/5 + 32 },
	}
	assert.False(t, f.IsLinear())
	assert.InDelta(t, 100.0, f.Normalize(212), 1e-9)
	assert.InDelta(t, 32.0, f.Denormalize(0), 1e-9)
}

func TestUnitDefinition_Validate(t *testing.T) {
	identity := func(v float64) float64 { return v }

	tests := []struct {
		name    string
		unit    domain.UnitDefinition
		wantErr bool
	}{
		{
			name: "linear unit",
			unit: domain.UnitDefinition{Code: "cm", Category: domain.CategoryLength, Factor: 0.01},
		},
		{
			name: "function unit",
			unit: domain.UnitDefinition{Code: "c", Category: domain.CategoryTemperature, ToBase: identity, FromBase: identity},
		},
		{
			name:    "zero factor",
			unit:    domain.UnitDefinition{Code: "x", Category: domain.CategoryWeight},
			wantErr: true,
		},
		{
			name:    "negative factor",
			unit:    domain.UnitDefinition{Code: "x", Category: domain.CategoryVolume, Factor: -1},
			wantErr: true,
		},
		{
			name:    "functions in a factor category",
			unit:    domain.UnitDefinition{Code: "x", Category: domain.CategoryLength, Factor: 1, ToBase: identity, FromBase: identity},
			wantErr: true,
		},
		{
			name:    "temperature missing FromBase",
			unit:    domain.UnitDefinition{Code: "x", Category: domain.CategoryTemperature, ToBase: identity},
			wantErr: true,
		},
		{
			name:    "temperature with factor",
			unit:    domain.UnitDefinition{Code: "x", Category: domain.CategoryTemperature, Factor: 2, ToBase: identity, FromBase: identity},
			wantErr: true,
		},
		{
			name:    "unknown category",
			unit:    domain.UnitDefinition{Code: "x", Category: "speed", Factor: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.unit.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
