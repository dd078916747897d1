package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/arbitrage"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/marketdata"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

//nolint:gochecknoglobals // Cobra boilerplate
var arbitrageCmd = &cobra.Command{
	Use:   "arbitrage",
	Short: "Scan for round-trip arbitrage cycles between two tokens",
	Long: `Simulates forward (A→B) and reverse (B→A) routes across every venue,
composes all round-trip pairs, and reports cycles whose profit exceeds
the profitability threshold.

Example:
  excelsior arbitrage --token-a ETH --token-b USDC --amount 10`,
	RunE: runArbitrage,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(arbitrageCmd)
	arbitrageCmd.Flags().String("token-a", "", "First token symbol or address")
	arbitrageCmd.Flags().String("token-b", "", "Second token symbol or address")
	arbitrageCmd.Flags().Float64P("amount", "a", 0, "Amount in whole tokens of token A")
	_ = arbitrageCmd.MarkFlagRequired("token-a")
	_ = arbitrageCmd.MarkFlagRequired("token-b")
	_ = arbitrageCmd.MarkFlagRequired("amount")
}

func runArbitrage(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	tokenA, _ := cmd.Flags().GetString("token-a")
	tokenB, _ := cmd.Flags().GetString("token-b")
	amount, _ := cmd.Flags().GetFloat64("amount")

	if amount <= 0 {
		return &types.InvalidRequestError{Field: "amount", Reason: "must be positive"}
	}

	detector := arbitrage.New(arbitrage.Config{
		ProfitThresholdPct: cfg.ArbProfitThresholdPct,
		Resolver:           marketdata.NewReferenceResolver(),
		Logger:             logger,
	})

	cycles := detector.FindCyclesByRef(context.Background(), tokenA, tokenB, amount, nil)
	if len(cycles) == 0 {
		fmt.Printf("No arbitrage cycles above %.2f%% profit.\n", cfg.ArbProfitThresholdPct)
		return nil
	}

	fmt.Printf("Found %d arbitrage cycle(s):\n", len(cycles))
	for i, cycle := range cycles {
		fmt.Printf("%2d. %s\n", i+1, cycle.String())
	}

	return nil
}
