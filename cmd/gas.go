package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/gasoracle"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

//nolint:gochecknoglobals // Cobra boilerplate
var gasCmd = &cobra.Command{
	Use:   "gas",
	Short: "Recommend gas timing for a network",
	Long: `Classifies current fee conditions against the trailing average and
recommends whether to execute now or wait, with estimated savings.

Example:
  excelsior gas --network ethereum --gas-units 120000`,
	RunE: runGas,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(gasCmd)
	gasCmd.Flags().StringP("network", "n", string(types.NetworkEthereum), "Blockchain network")
	gasCmd.Flags().Int64("gas-units", 120000, "Gas budget for savings estimate")
}

func runGas(cmd *cobra.Command, args []string) error {
	_, logger, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	networkStr, _ := cmd.Flags().GetString("network")
	gasUnits, _ := cmd.Flags().GetInt64("gas-units")

	network, err := types.ParseNetwork(networkStr)
	if err != nil {
		return err
	}

	source := gasoracle.NewStaticSource()
	plan := gasoracle.Optimize(source.FeeSignal(context.Background(), network))

	fmt.Printf("Network:          %s\n", network)
	fmt.Printf("Current:          %.2f gwei\n", plan.CurrentGwei)
	fmt.Printf("24h Average:      %.2f gwei\n", plan.AverageGwei)
	fmt.Printf("Recommended:      %.2f gwei\n", plan.RecommendedGwei)
	fmt.Printf("Urgency:          %s\n", plan.Urgency)
	if plan.WaitSeconds > 0 {
		fmt.Printf("Suggested wait:   %ds\n", plan.WaitSeconds)
		fmt.Printf("Savings:          %.2f%% ($%.4f on %d gas)\n",
			plan.SavingsPct, plan.EstimateSavingsUSD(gasUnits), gasUnits)
	} else {
		fmt.Println("Execute now: fees are at or below the trailing average.")
	}

	return nil
}
