package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/convertly/internal/core/services"
	"github.com/SscSPs/convertly/internal/dto"
	"github.com/SscSPs/convertly/internal/utils"
	"github.com/spf13/cobra"
)

var currencyCmd = &cobra.Command{
	Use:   "currency <amount> <from> <to>",
	Short: "Convert an amount between currencies",
	Long: `Currency converts an amount using the built-in mock exchange rates.
Amounts are converted through USD and rounded to 4 decimal places.

Example:
  convertly currency 100 EUR JPY
  convertly currency 1 usd gbp -o yaml`,
	// Parsed by valueArgs so negative values are not read as flags.
	DisableFlagParsing: true,
	RunE:               runCurrency,
}

func runCurrency(cmd *cobra.Command, raw []string) error {
	args, err := valueArgs(cmd, raw, 3)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	result, err := container.Currency.ConvertCurrency(ctx, args[0], args[1], args[2])
	if err != nil {
		if services.IsUnconvertible(err) {
			return fmt.Errorf("invalid conversion: %w", err)
		}
		return fmt.Errorf("convert currency: %w", err)
	}

	from, err := container.Currency.GetCurrencyByCode(ctx, result.From)
	if err != nil {
		return err
	}
	to, err := container.Currency.GetCurrencyByCode(ctx, result.To)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), dto.ToConversionResponse(result), func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s = %s %s\n",
			utils.FormatCurrencyAmount(strings.TrimSpace(args[0]), *from), from.CurrencyCode,
			utils.FormatCurrencyAmount(result.String(), *to), to.CurrencyCode)
		return err
	})
}
