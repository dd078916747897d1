package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/engine"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/gasoracle"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/marketdata"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/storage"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

//nolint:gochecknoglobals // Cobra boilerplate
var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Find and record the best swap route",
	Long: `Simulates the swap across all configured venues, filters candidates by
the slippage ceiling, selects the minimum-cost route, and records the
execute decision together with a gas timing recommendation.

Examples:
  excelsior swap --source ETH --target USDC --amount 1.5
  excelsior swap -s MATIC -t USDC -a 1000 --network polygon --max-slippage 3.0`,
	RunE: runSwap,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(swapCmd)
	swapCmd.Flags().StringP("source", "s", "", "Source token symbol or address")
	swapCmd.Flags().StringP("target", "t", "", "Target token symbol or address")
	swapCmd.Flags().Float64P("amount", "a", 0, "Amount to swap in whole source tokens")
	swapCmd.Flags().StringP("network", "n", string(types.NetworkEthereum), "Blockchain network")
	swapCmd.Flags().Float64("max-slippage", types.DefaultMaxSlippagePct, "Maximum acceptable slippage (%)")
	_ = swapCmd.MarkFlagRequired("source")
	_ = swapCmd.MarkFlagRequired("target")
	_ = swapCmd.MarkFlagRequired("amount")
}

func runSwap(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	source, _ := cmd.Flags().GetString("source")
	target, _ := cmd.Flags().GetString("target")
	amount, _ := cmd.Flags().GetFloat64("amount")
	networkStr, _ := cmd.Flags().GetString("network")
	maxSlippage, _ := cmd.Flags().GetFloat64("max-slippage")

	network, err := types.ParseNetwork(networkStr)
	if err != nil {
		return err
	}

	store := storage.NewConsoleStorage(logger)
	eng := engine.New(engine.Config{
		MaxHistory: cfg.EngineMaxHistory,
		Logger:     logger,
	}, marketdata.NewReferenceResolver(), gasoracle.NewStaticSource(), store)

	record, err := eng.Quote(context.Background(), source, target, amount, network, maxSlippage)
	if err != nil {
		if errors.Is(err, types.ErrNoViableRoute) {
			fmt.Println("No viable swap route found within the slippage ceiling.")
			return nil
		}
		return err
	}

	fmt.Printf("\nEffective price: %.6f %s per %s\n",
		record.Route.EffectivePrice(), record.Route.Source.Symbol, record.Route.Target.Symbol)

	return nil
}
