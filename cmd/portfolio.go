package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/marketdata"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/portfolio"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

//nolint:gochecknoglobals // Cobra boilerplate
var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Value a portfolio of positions",
	Long: `Builds a ledger from --position flags, values it against the reference
price table, and prints composition and projected returns.

Example:
  excelsior portfolio --position WETH=2.5 --position USDC=5000 --days 30`,
	RunE: runPortfolio,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(portfolioCmd)
	portfolioCmd.Flags().StringArrayP("position", "p", nil, "Position as SYMBOL=AMOUNT (repeatable)")
	portfolioCmd.Flags().StringArray("target", nil, "Target allocation as SYMBOL=PCT for a rebalance plan (repeatable)")
	portfolioCmd.Flags().StringP("network", "n", string(types.NetworkEthereum), "Blockchain network")
	portfolioCmd.Flags().Int("days", 30, "Projection horizon in days")
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	_, logger, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	positionFlags, _ := cmd.Flags().GetStringArray("position")
	targetFlags, _ := cmd.Flags().GetStringArray("target")
	networkStr, _ := cmd.Flags().GetString("network")
	days, _ := cmd.Flags().GetInt("days")

	network, err := types.ParseNetwork(networkStr)
	if err != nil {
		return err
	}
	if len(positionFlags) == 0 {
		return &types.InvalidRequestError{Field: "position", Reason: "at least one SYMBOL=AMOUNT position is required"}
	}

	ledger := portfolio.NewLedger()
	prices := make(map[string]float64)
	symbols := make(map[string]string)

	for _, raw := range positionFlags {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			return &types.InvalidRequestError{Field: "position", Reason: fmt.Sprintf("%q is not SYMBOL=AMOUNT", raw)}
		}

		var amount float64
		if _, err := fmt.Sscanf(parts[1], "%f", &amount); err != nil || amount <= 0 {
			return &types.InvalidRequestError{Field: "position", Reason: fmt.Sprintf("amount %q must be a positive number", parts[1])}
		}

		asset, ok := marketdata.ReferenceAsset(parts[0])
		if !ok {
			return &types.InvalidRequestError{Field: "position", Reason: fmt.Sprintf("unknown asset %q", parts[0])}
		}

		ledger.Add(asset.Address, amount, network)
		prices[asset.Address] = asset.PriceUSD
		symbols[asset.Address] = asset.Symbol
	}

	snapshot := ledger.Snapshot(prices)
	composition := ledger.Composition(prices)
	returns := ledger.EstimateReturns(days, prices)

	fmt.Printf("Total value:      $%.2f across %d network(s)\n\n", snapshot.TotalValueUSD, len(snapshot.Networks))

	addresses := make([]string, 0, len(composition))
	for address := range composition {
		addresses = append(addresses, address)
	}
	sort.Slice(addresses, func(i, j int) bool {
		return composition[addresses[i]] > composition[addresses[j]]
	})
	for _, address := range addresses {
		fmt.Printf("  %-6s %6.2f%%  (%.4f units)\n",
			symbols[address], composition[address], snapshot.Positions[address])
	}

	fmt.Printf("\nProjected %d-day returns:\n", days)
	fmt.Printf("  conservative:  $%.2f\n", returns["conservative"])
	fmt.Printf("  moderate:      $%.2f\n", returns["moderate"])
	fmt.Printf("  aggressive:    $%.2f\n", returns["aggressive"])

	if len(targetFlags) > 0 {
		target := make(map[string]float64, len(targetFlags))
		for _, raw := range targetFlags {
			parts := strings.SplitN(raw, "=", 2)
			if len(parts) != 2 {
				return &types.InvalidRequestError{Field: "target", Reason: fmt.Sprintf("%q is not SYMBOL=PCT", raw)}
			}

			var pct float64
			if _, err := fmt.Sscanf(parts[1], "%f", &pct); err != nil || pct < 0 || pct > 100 {
				return &types.InvalidRequestError{Field: "target", Reason: fmt.Sprintf("allocation %q must be in [0, 100]", parts[1])}
			}

			asset, ok := marketdata.ReferenceAsset(parts[0])
			if !ok {
				return &types.InvalidRequestError{Field: "target", Reason: fmt.Sprintf("unknown asset %q", parts[0])}
			}
			target[asset.Address] = pct
		}

		trades := ledger.RebalancePlan(target, prices)
		if len(trades) == 0 {
			fmt.Println("\nAllocation is within the rebalance deviation gate; no trades suggested.")
			return nil
		}

		fmt.Println("\nSuggested rebalance trades:")
		for _, trade := range trades {
			from, to := trade.From, trade.To
			if s, ok := symbols[from]; ok {
				from = s
			}
			if s, ok := symbols[to]; ok {
				to = s
			}
			fmt.Printf("  shift %.2f%% from %s to %s\n", trade.DeltaPct, from, to)
		}
	}

	return nil
}
