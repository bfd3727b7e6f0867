// Root command for the convertly CLI.
package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/convertly/internal/adapters/catalog"
	portssvc "github.com/SscSPs/convertly/internal/core/ports/services"
	"github.com/SscSPs/convertly/internal/core/services"
	"github.com/SscSPs/convertly/internal/middleware"
	"github.com/SscSPs/convertly/internal/platform/config"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// Global flag values.
var (
	flagOutput string
)

// Set by PersistentPreRunE for every command except version.
var (
	cfg       *config.Config
	container *portssvc.ServiceContainer
)

var rootCmd = &cobra.Command{
	Use:   "convertly",
	Short: "Convert units of measurement and currencies",
	Long: `Convertly converts values between units of length, weight, temperature
and volume, and amounts between currencies using a fixed table of mock
exchange rates quoted against USD.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
		slog.SetDefault(logger)
		cmd.SetContext(middleware.WithLogger(cmd.Context(), logger))

		repos, err := catalog.NewRepositoryProvider()
		if err != nil {
			return fmt.Errorf("load reference data: %w", err)
		}
		container = services.NewServiceContainer(repos)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", outputTable, "output format: table, json or yaml")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(unitCmd)
	rootCmd.AddCommand(currencyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tuiCmd)
}
