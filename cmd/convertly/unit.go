package main

import (
	"fmt"
	"io"

	"github.com/SscSPs/convertly/internal/core/domain"
	"github.com/SscSPs/convertly/internal/core/services"
	"github.com/SscSPs/convertly/internal/dto"
	"github.com/spf13/cobra"
)

var unitCmd = &cobra.Command{
	Use:   "unit <category> <value> <from> <to>",
	Short: "Convert a value between units of one category",
	Long: `Unit converts a value between two units of the same category.

Categories: length, weight, temperature, volume.
Results are rounded to 4 decimal places, 2 for temperature.

Example:
  convertly unit length 1 km m
  convertly unit temperature 100 c f
  convertly unit volume 3 tsp tbsp -o json`,
	// Parsed by valueArgs so negative values are not read as flags.
	DisableFlagParsing: true,
	RunE:               runUnit,
}

func runUnit(cmd *cobra.Command, raw []string) error {
	args, err := valueArgs(cmd, raw, 4)
	if err != nil {
		return err
	}

	category, err := domain.ParseUnitCategory(args[0])
	if err != nil {
		return err
	}

	result, err := container.Unit.ConvertUnit(cmd.Context(), category, args[1], args[2], args[3])
	if err != nil {
		if services.IsUnconvertible(err) {
			return fmt.Errorf("invalid conversion: %w", err)
		}
		return fmt.Errorf("convert unit: %w", err)
	}

	return render(cmd.OutOrStdout(), dto.ToConversionResponse(result), func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s = %s %s\n", args[1], result.From, result.String(), result.To)
		return err
	})
}
