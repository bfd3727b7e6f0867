package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/SscSPs/convertly/internal/core/domain"
	"github.com/SscSPs/convertly/internal/dto"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported units or currencies",
}

var listUnitsCmd = &cobra.Command{
	Use:   "units [category]",
	Short: "List units, optionally for one category",
	Long: `List units prints every unit with its code, label and factor to the
category base unit. Temperature units convert through Celsius and have no factor.

Example:
  convertly list units
  convertly list units weight -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runListUnits,
}

var listCurrenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List currencies and their mock rates against USD",
	Args:  cobra.NoArgs,
	RunE:  runListCurrencies,
}

func init() {
	listCmd.AddCommand(listUnitsCmd)
	listCmd.AddCommand(listCurrenciesCmd)
}

func runListUnits(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	categories := container.Unit.ListCategories(ctx)
	if len(args) == 1 {
		category, err := domain.ParseUnitCategory(args[0])
		if err != nil {
			return err
		}
		categories = []domain.UnitCategory{category}
	}

	resp := make([]dto.UnitCategoryResponse, 0, len(categories))
	for _, category := range categories {
		units, err := container.Unit.ListUnits(ctx, category)
		if err != nil {
			return fmt.Errorf("list %s units: %w", category, err)
		}
		resp = append(resp, dto.ToUnitCategoryResponse(category, units))
	}

	return render(cmd.OutOrStdout(), resp, func(w io.Writer) error {
		var rows [][]string
		for _, c := range resp {
			for _, u := range c.Units {
				factor := "-"
				if u.Factor != 0 {
					factor = strconv.FormatFloat(u.Factor, 'g', -1, 64)
				}
				rows = append(rows, []string{c.Label, u.Code, u.Label, factor})
			}
		}
		return writeTable(w, []string{"CATEGORY", "CODE", "UNIT", "FACTOR"}, rows)
	})
}

// currencyListing is one row of list currencies.
type currencyListing struct {
	dto.CurrencyResponse `yaml:",inline"`
	Rate                 string `json:"rate" yaml:"rate"`
}

func runListCurrencies(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	currencies, err := container.Currency.ListCurrencies(ctx)
	if err != nil {
		return fmt.Errorf("list currencies: %w", err)
	}

	listing := make([]currencyListing, 0, len(currencies))
	for _, c := range currencies {
		rate, err := container.Currency.GetExchangeRate(ctx, domain.BaseCurrencyCode, c.CurrencyCode)
		if err != nil {
			return fmt.Errorf("rate for %s: %w", c.CurrencyCode, err)
		}
		listing = append(listing, currencyListing{CurrencyResponse: dto.ToCurrencyResponse(&c), Rate: rate.String()})
	}

	return render(cmd.OutOrStdout(), listing, func(w io.Writer) error {
		rows := make([][]string, len(listing))
		for i, l := range listing {
			rows[i] = []string{l.FlagEmoji, l.CurrencyCode, l.Name, l.Symbol, l.Rate}
		}
		return writeTable(w, []string{"", "CODE", "CURRENCY", "SYMBOL", "PER USD"}, rows)
	})
}
