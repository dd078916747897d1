package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/yields"
)

//nolint:gochecknoglobals // Cobra boilerplate
var yieldsCmd = &cobra.Command{
	Use:   "yields",
	Short: "Recommend yield opportunities for a stake",
	Long: `Scans the yield catalog and recommends up to five viable pools with
a 30-day earnings projection for the given stake.

Example:
  excelsior yields --amount 5000 --min-apy 8`,
	RunE: runYields,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(yieldsCmd)
	yieldsCmd.Flags().Float64P("amount", "a", 1000, "Stake size in USD")
	yieldsCmd.Flags().Float64("min-apy", 5, "Minimum APY in percent")
}

func runYields(cmd *cobra.Command, args []string) error {
	_, logger, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	amount, _ := cmd.Flags().GetFloat64("amount")
	minAPY, _ := cmd.Flags().GetFloat64("min-apy")

	scanner := yields.NewScanner(yields.NewReferenceCatalog(), logger)

	recs, err := scanner.Recommend(context.Background(), amount, minAPY)
	if err != nil {
		return fmt.Errorf("recommend yields: %w", err)
	}
	if len(recs) == 0 {
		fmt.Printf("No viable opportunities at or above %.2f%% APY.\n", minAPY)
		return nil
	}

	fmt.Printf("Top opportunities for $%.2f (min APY %.2f%%):\n\n", amount, minAPY)
	for i, rec := range recs {
		fmt.Printf("%d. %s (%s on %s)\n", i+1, rec.PoolName, rec.Venue, rec.Network)
		fmt.Printf("   APY: %.2f%%  Risk: %.0f (%s)  TVL: $%.0f\n",
			rec.APY, rec.RiskScore, rec.Tier, rec.TVLUSD)
		fmt.Printf("   Est. 30d earnings: $%.2f\n\n", rec.EstimatedEarnings30d)
	}

	return nil
}
