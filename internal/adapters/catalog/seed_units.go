package catalog

import "github.com/SscSPs/convertly/internal/models"

func celsius(v float64) float64 { return v }

// unitSeed is the unit table, grouped by category in display order. Factors take a value
// in the unit to the category base unit (m, kg, l); temperature passes through Celsius.
var unitSeed = []models.Unit{
	{Code: "km", Label: "Kilometers", Category: "length", Factor: 1000},
	{Code: "m", Label: "Meters", Category: "length", Factor: 1},
	{Code: "cm", Label: "Centimeters", Category: "length", Factor: 0.01},
	{Code: "mm", Label: "Millimeters", Category: "length", Factor: 0.001},
	{Code: "mi", Label: "Miles", Category: "length", Factor: 1609.34},
	{Code: "yd", Label: "Yards", Category: "length", Factor: 0.9144},
	{Code: "ft", Label: "Feet", Category: "length", Factor: 0.3048},
	{Code: "in", Label: "Inches", Category: "length", Factor: 0.0254},

	{Code: "t", Label: "Metric Tons", Category: "weight", Factor: 1000},
	{Code: "kg", Label: "Kilograms", Category: "weight", Factor: 1},
	{Code: "g", Label: "Grams", Category: "weight", Factor: 0.001},
	{Code: "mg", Label: "Milligrams", Category: "weight", Factor: 0.000001},
	{Code: "lb", Label: "Pounds", Category: "weight", Factor: 0.453592},
	{Code: "oz", Label: "Ounces", Category: "weight", Factor: 0.0283495},

	{Code: "c", Label: "Celsius", Category: "temperature", ToBase: celsius, FromBase: celsius},
	{
		Code:     "f",
		Label:    "Fahrenheit",
		Category: "temperature",
		ToBase:   func(v float64) float64 { return (v - 32) * 5 / 9 },
		FromBase: func(v float64) float64 { return v*9/5 + 32 },
	},
	{
		Code:     "k",
		Label:    "Kelvin",
		Category: "temperature",
		ToBase:   func(v float64) float64 { return v - 273.15 },
		FromBase: func(v float64) float64 { return v + 273.15 },
	},

	{Code: "l", Label: "Liters", Category: "volume", Factor: 1},
	{Code: "ml", Label: "Milliliters", Category: "volume", Factor: 0.001},
	{Code: "gal", Label: "Gallons (US)", Category: "volume", Factor: 3.78541},
	{Code: "qt", Label: "Quarts (US)", Category: "volume", Factor: 0.946353},
	{Code: "pt", Label: "Pints (US)", Category: "volume", Factor: 0.473176},
	{Code: "cup", Label: "Cups (US)", Category: "volume", Factor: 0.24},
	{Code: "floz", Label: "Fluid Ounces (US)", Category: "volume", Factor: 0.0295735},
	{Code: "tbsp", Label: "Tablespoons (US)", Category: "volume", Factor: 0.0147868},
	{Code: "tsp", Label: "Teaspoons (US)", Category: "volume", Factor: 0.00492892},
}
