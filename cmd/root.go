// Package cmd implements the ripple CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Jeppcode/KPIVisualization/internal/config"
	"github.com/Jeppcode/KPIVisualization/internal/logging"
)

var (
	flagTheme    string
	flagCurrency string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "ripple",
	Short: "Retail KPI what-if calculator",
	Long: "Explore how changes to hitrate, average purchase and products per customer\n" +
		"ripple through yearly purchases, revenue, products sold and profit.",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return config.LoadDotEnv()
	},
	RunE: runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Currency label (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig is the shared config path used by all commands: file, then
// environment, then flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	if flagCurrency != "" {
		cfg.Display.Currency = flagCurrency
	}
	if flagLogLevel != "" {
		cfg.Server.LogLevel = flagLogLevel
	}
	return cfg, nil
}

// newLogger builds the stderr logger for non-interactive commands.
func newLogger(cfg config.Config) *zap.Logger {
	return logging.New(cfg.Server.LogLevel, os.Stderr)
}

func warnConfig(err error) {
	fmt.Fprintf(os.Stderr, "  warning: %v (using defaults)\n", err)
}
