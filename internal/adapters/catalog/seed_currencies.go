package catalog

import (
	"github.com/SscSPs/convertly/internal/models"
	"github.com/shopspring/decimal"
)

var currencySeed = []models.Currency{
	{CurrencyCode: "USD", Name: "US Dollar", Symbol: "$", FlagEmoji: "🇺🇸"},
	{CurrencyCode: "EUR", Name: "Euro", Symbol: "€", FlagEmoji: "🇪🇺"},
	{CurrencyCode: "GBP", Name: "British Pound", Symbol: "£", FlagEmoji: "🇬🇧"},
	{CurrencyCode: "JPY", Name: "Japanese Yen", Symbol: "¥", FlagEmoji: "🇯🇵"},
	{CurrencyCode: "AUD", Name: "Australian Dollar", Symbol: "$", FlagEmoji: "🇦🇺"},
	{CurrencyCode: "CAD", Name: "Canadian Dollar", Symbol: "$", FlagEmoji: "🇨🇦"},
	{CurrencyCode: "CHF", Name: "Swiss Franc", Symbol: "Fr", FlagEmoji: "🇨🇭"},
	{CurrencyCode: "CNY", Name: "Chinese Yuan", Symbol: "¥", FlagEmoji: "🇨🇳"},
	{CurrencyCode: "INR", Name: "Indian Rupee", Symbol: "₹", FlagEmoji: "🇮🇳"},
	{CurrencyCode: "MXN", Name: "Mexican Peso", Symbol: "$", FlagEmoji: "🇲🇽"},
	{CurrencyCode: "SGD", Name: "Singapore Dollar", Symbol: "$", FlagEmoji: "🇸🇬"},
	{CurrencyCode: "NZD", Name: "New Zealand Dollar", Symbol: "$", FlagEmoji: "🇳🇿"},
	{CurrencyCode: "BRL", Name: "Brazilian Real", Symbol: "R$", FlagEmoji: "🇧🇷"},
	{CurrencyCode: "SEK", Name: "Swedish Krona", Symbol: "kr", FlagEmoji: "🇸🇪"},
	{CurrencyCode: "ZAR", Name: "South African Rand", Symbol: "R", FlagEmoji: "🇿🇦"},
}

// Mock rates against USD. They are fixed for the lifetime of the process.
var exchangeRateSeed = []models.ExchangeRate{
	{CurrencyCode: "USD", Rate: decimal.NewFromInt(1)},
	{CurrencyCode: "EUR", Rate: decimal.RequireFromString("0.92")},
	{CurrencyCode: "GBP", Rate: decimal.RequireFromString("0.79")},
	{CurrencyCode: "JPY", Rate: decimal.RequireFromString("150.13")},
	{CurrencyCode: "AUD", Rate: decimal.RequireFromString("1.52")},
	{CurrencyCode: "CAD", Rate: decimal.RequireFromString("1.37")},
	{CurrencyCode: "CHF", Rate: decimal.RequireFromString("0.88")},
	{CurrencyCode: "CNY", Rate: decimal.RequireFromString("7.24")},
	{CurrencyCode: "INR", Rate: decimal.RequireFromString("83.37")},
	{CurrencyCode: "MXN", Rate: decimal.RequireFromString("16.73")},
	{CurrencyCode: "SGD", Rate: decimal.RequireFromString("1.34")},
	{CurrencyCode: "NZD", Rate: decimal.RequireFromString("1.65")},
	{CurrencyCode: "BRL", Rate: decimal.RequireFromString("5.06")},
	{CurrencyCode: "SEK", Rate: decimal.RequireFromString("10.42")},
	{CurrencyCode: "ZAR", Rate: decimal.RequireFromString("18.31")},
}
