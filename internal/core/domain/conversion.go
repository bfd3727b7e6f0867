package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ConversionResult is the outcome of a successful unit or currency conversion.
type ConversionResult struct {
	From      string          // resolved source unit or currency code
	To        string          // resolved target unit or currency code
	Input     float64         // parsed input value
	Raw       decimal.Decimal // unrounded result
	Value     decimal.Decimal // result rounded to Precision places
	Precision int32
}

// NewConversionResult rounds raw to precision places.
func NewConversionResult(from, to string, input float64, raw decimal.Decimal, precision int32) *ConversionResult {
	return &ConversionResult{
		From:      from,
		To:        to,
		Input:     input,
		Raw:       raw,
		Value:     raw.Round(precision),
		Precision: precision,
	}
}

// String renders the rounded value with exactly Precision decimal places.
func (r *ConversionResult) String() string {
	return r.Value.StringFixed(r.Precision)
}

// ParseAmount parses user-entered text as a finite real number. Surrounding whitespace is
// ignored; empty text, trailing garbage, NaN and infinities are rejected.
func ParseAmount(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", text)
	}
	return v, nil
}
