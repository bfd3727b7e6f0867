package dto

import (
	"github.com/SscSPs/convertly/internal/core/domain"
)

// ConvertUnitRequest holds the query parameters of a unit conversion.
type ConvertUnitRequest struct {
	Category string `form:"category" binding:"required,oneof=length weight temperature volume"`
	Value    string `form:"value"`
	From     string `form:"from" binding:"required"`
	To       string `form:"to" binding:"required"`
}

// ConvertCurrencyRequest holds the query parameters of a currency conversion.
type ConvertCurrencyRequest struct {
	Amount string `form:"amount"`
	From   string `form:"from" binding:"required,len=3,alpha"`
	To     string `form:"to" binding:"required,len=3,alpha"`
}

// ConversionResponse is returned for a successful conversion. Result is the value rounded
// for display with exactly Precision decimal places.
type ConversionResponse struct {
	From      string  `json:"from" yaml:"from"`
	To        string  `json:"to" yaml:"to"`
	Input     float64 `json:"input" yaml:"input"`
	Result    string  `json:"result" yaml:"result" example:"100.0000"`
	Raw       string  `json:"raw" yaml:"raw" example:"100"`
	Precision int32   `json:"precision" yaml:"precision"`
}

// ToConversionResponse converts a domain.ConversionResult to ConversionResponse DTO
func ToConversionResponse(r *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		From:      r.From,
		To:        r.To,
		Input:     r.Input,
		Result:    r.String(),
		Raw:       r.Raw.String(),
		Precision: r.Precision,
	}
}
