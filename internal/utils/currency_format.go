package utils

import (
	"strings"

	"github.com/SscSPs/convertly/internal/core/domain"
)

// FormatCurrencyAmount prefixes a formatted amount with the currency symbol.
// Example: "0.9200" with EUR returns "€0.9200"
// Example: "16318.4783" with JPY returns "¥16318.4783"
func FormatCurrencyAmount(amount string, currency domain.Currency) string {
	if strings.HasPrefix(amount, "-") {
		return "-" + currency.Symbol + strings.TrimPrefix(amount, "-")
	}
	return currency.Symbol + amount
}

// CurrencyDisplayName joins the flag glyph and the currency name.
// Example: EUR returns "🇪🇺 Euro"
func CurrencyDisplayName(currency domain.Currency) string {
	if currency.FlagEmoji == "" {
		return currency.Name
	}
	return currency.FlagEmoji + " " + currency.Name
}
