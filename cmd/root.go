package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "excelsior",
	Short: "Multi-venue swap route simulator",
	Long: `Excelsior simulates token swaps across multiple liquidity venue models
(concentrated liquidity, constant product, aggregator split, stable pair),
scores each candidate route on total cost, and selects the cheapest one.

It also detects round-trip arbitrage cycles across venues, recommends
gas timing, surfaces yield opportunities, and tracks portfolio positions.
It is a decision-support simulator: no transaction is ever submitted.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	// Optional .env for local development; absence is fine
	_ = godotenv.Load()
}
