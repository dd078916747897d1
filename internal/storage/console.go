package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/engine"
)

// ConsoleStorage implements Storage by pretty-printing to console.
type ConsoleStorage struct {
	logger *zap.Logger
}

// NewConsoleStorage creates a new console storage.
func NewConsoleStorage(logger *zap.Logger) *ConsoleStorage {
	logger.Info("console-storage-initialized")
	return &ConsoleStorage{logger: logger}
}

// StoreRecord pretty-prints an execution record to console.
func (c *ConsoleStorage) StoreRecord(_ context.Context, record *engine.ExecutionRecord) error {
	route := record.Route

	fmt.Println("\n" + "────────────────────────────────────────────────────────────")
	fmt.Printf("EXECUTE DECISION\n")
	fmt.Println("────────────────────────────────────────────────────────────")
	fmt.Printf("ID:        %s\n", record.ID[:8])
	fmt.Printf("Swap:      %s → %s on %s via %s\n", route.Source.Symbol, route.Target.Symbol, route.Network, route.Venue)
	fmt.Printf("Time:      %s\n", record.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Println("────────────────────────────────────────────────────────────")
	fmt.Printf("ROUTE\n")
	fmt.Printf("  Amount In:     %s %s\n", route.Source.FormatAmount(route.AmountIn), route.Source.Symbol)
	fmt.Printf("  Expected Out:  %s %s\n", route.Target.FormatAmount(route.ExpectedOut), route.Target.Symbol)
	fmt.Printf("  Slippage:      %.4f%%\n", route.SlippagePct)
	fmt.Printf("  Price Impact:  %.4f%%\n", route.PriceImpactPct)
	fmt.Printf("  Gas Units:     %d\n", route.GasUnits)
	fmt.Printf("  Total Cost:    $%.2f\n", record.TotalCostUSD)
	fmt.Println("────────────────────────────────────────────────────────────")
	fmt.Printf("GAS TIMING\n")
	fmt.Printf("  Current:       %.2f gwei\n", record.GasPlan.CurrentGwei)
	fmt.Printf("  Recommended:   %.2f gwei\n", record.GasPlan.RecommendedGwei)
	fmt.Printf("  Urgency:       %s\n", record.GasPlan.Urgency)
	fmt.Printf("  Wait:          %ds\n", record.GasPlan.WaitSeconds)
	fmt.Printf("  Savings:       %.2f%%\n", record.GasPlan.SavingsPct)
	fmt.Println("────────────────────────────────────────────────────────────")

	return nil
}

// Close is a no-op for console storage.
func (c *ConsoleStorage) Close() error {
	c.logger.Info("closing-console-storage")
	return nil
}
