package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jeppcode/KPIVisualization/internal/cli"
	"github.com/Jeppcode/KPIVisualization/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	k := cfg.BaseKPIs()
	fmt.Println("  [Base]")
	fmt.Printf("    Visitors / year:       %s\n", cli.FormatNumber(k.Visitors))
	fmt.Printf("    Hitrate:               %s\n", cli.FormatPercent(k.Hitrate))
	fmt.Printf("    Avg purchase:          %s\n", cli.FormatAmount(k.AvgPurchase, cfg.Display.Currency))
	fmt.Printf("    Products per customer: %s\n", cli.FormatFixed(k.ProductsPerCustomer, 2))
	fmt.Printf("    Profit margin:         %s\n", cli.FormatPercent(k.ProfitMargin))
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency: %s\n", cfg.Display.Currency)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:   %s\n", cfg.Server.Addr)
	fmt.Printf("    Log level: %s\n", cfg.Server.LogLevel)
	fmt.Println()

	fmt.Println("  Run `ripple setup` to reconfigure.")
	return nil
}
