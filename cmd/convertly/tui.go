package main

import (
	"errors"
	"os"

	"github.com/SscSPs/convertly/internal/tui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errNotATerminal = errors.New("tui needs an interactive terminal")

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive converter",
	Long: `Tui opens a two-tab converter. The Metric tab converts units, the Currency tab
converts amounts. Editing either field updates the other.

The initial currency pair comes from DEFAULT_FROM_CURRENCY and DEFAULT_TO_CURRENCY.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
			return errNotATerminal
		}
		return tui.Run(cmd.Context(), container, tui.Options{
			FromCurrency: cfg.DefaultFromCurrency,
			ToCurrency:   cfg.DefaultToCurrency,
		})
	},
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
