package services

import (
	"context"
	"strings"

	"github.com/SscSPs/convertly/internal/core/domain"
	portssvc "github.com/SscSPs/convertly/internal/core/ports/services"
)

// ConvertFunc converts text entered for fromCode into toCode.
type ConvertFunc func(ctx context.Context, text, fromCode, toCode string) (*domain.ConversionResult, error)

// UnitConvertFunc binds a unit converter to one category.
func UnitConvertFunc(svc portssvc.UnitConverterSvc, category domain.UnitCategory) ConvertFunc {
	return func(ctx context.Context, text, fromCode, toCode string) (*domain.ConversionResult, error) {
		return svc.ConvertUnit(ctx, category, text, fromCode, toCode)
	}
}

// CurrencyConvertFunc adapts a currency converter.
func CurrencyConvertFunc(svc portssvc.CurrencyConverterSvc) ConvertFunc {
	return svc.ConvertCurrency
}

// FieldPair keeps a source and a target field consistent. Editing either field recomputes
// the other; changing codes recomputes the target from the source text. A field whose
// counterpart cannot be converted is cleared rather than left holding an old result.
// A FieldPair is not safe for concurrent use.
type FieldPair struct {
	convert  ConvertFunc
	fromCode string
	toCode   string
	fromText string
	toText   string
	err      error
}

// NewFieldPair creates a pair with fromText in the source field and computes the target.
func NewFieldPair(ctx context.Context, convert ConvertFunc, fromCode, toCode, fromText string) *FieldPair {
	p := &FieldPair{convert: convert, fromCode: fromCode, toCode: toCode, fromText: fromText}
	p.forward(ctx)
	return p
}

// FromCode returns the source unit or currency code.
func (p *FieldPair) FromCode() string { return p.fromCode }

// ToCode returns the target unit or currency code.
func (p *FieldPair) ToCode() string { return p.toCode }

// FromText returns the source field content.
func (p *FieldPair) FromText() string { return p.fromText }

// ToText returns the target field content.
func (p *FieldPair) ToText() string { return p.toText }

// Err returns the error of the last recomputation, or nil if it succeeded or the edited
// field was empty.
func (p *FieldPair) Err() error { return p.err }

// SetFromText replaces the source text and recomputes the target.
func (p *FieldPair) SetFromText(ctx context.Context, text string) {
	p.fromText = text
	p.forward(ctx)
}

// SetToText replaces the target text and recomputes the source in the reverse direction.
func (p *FieldPair) SetToText(ctx context.Context, text string) {
	p.toText = text
	p.fromText, p.err = p.run(ctx, p.toText, p.toCode, p.fromCode)
}

// SetFromCode changes the source unit or currency.
func (p *FieldPair) SetFromCode(ctx context.Context, code string) {
	p.fromCode = code
	p.forward(ctx)
}

// SetToCode changes the target unit or currency.
func (p *FieldPair) SetToCode(ctx context.Context, code string) {
	p.toCode = code
	p.forward(ctx)
}

// SetCodes changes both codes at once.
func (p *FieldPair) SetCodes(ctx context.Context, fromCode, toCode string) {
	p.fromCode, p.toCode = fromCode, toCode
	p.forward(ctx)
}

// Rebind switches to another converter, for example a different unit category, with a
// new pair of codes.
func (p *FieldPair) Rebind(ctx context.Context, convert ConvertFunc, fromCode, toCode string) {
	p.convert = convert
	p.SetCodes(ctx, fromCode, toCode)
}

// Swap exchanges the two sides, codes and texts, then recomputes the target.
func (p *FieldPair) Swap(ctx context.Context) {
	p.fromCode, p.toCode = p.toCode, p.fromCode
	p.fromText, p.toText = p.toText, p.fromText
	p.forward(ctx)
}

// SwapCodes exchanges the two codes and converts the entered source text in the new
// direction. The source text is left as typed.
func (p *FieldPair) SwapCodes(ctx context.Context) {
	p.SetCodes(ctx, p.toCode, p.fromCode)
}

func (p *FieldPair) forward(ctx context.Context) {
	p.toText, p.err = p.run(ctx, p.fromText, p.fromCode, p.toCode)
}

// run converts text and returns the derived field's new content. Empty input clears the
// derived field without reporting an error.
func (p *FieldPair) run(ctx context.Context, text, fromCode, toCode string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	result, err := p.convert(ctx, text, fromCode, toCode)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}
