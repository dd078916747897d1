package portfolio

import (
	"sort"
	"sync"
	"time"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// rebalanceDeviationPct is the minimum allocation drift, in percentage
// points, before a rebalancing trade is worth its gas.
const rebalanceDeviationPct = 2.0

// Ledger tracks held positions across networks and computes aggregate
// value. Safe for concurrent use.
type Ledger struct {
	mu          sync.RWMutex
	positions   map[string]float64 // asset address -> raw amount
	networks    []types.Network
	lastUpdated time.Time
}

// Snapshot is a read-only view of the ledger state.
type Snapshot struct {
	Positions     map[string]float64
	Networks      []types.Network
	TotalValueUSD float64
	LastUpdated   time.Time
}

// RebalanceTrade is one suggested trade toward a target allocation.
// DeltaPct is the allocation drift in percentage points.
type RebalanceTrade struct {
	From     string
	To       string
	DeltaPct float64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{positions: make(map[string]float64)}
}

// Add records a position increment for an asset on a network.
func (l *Ledger) Add(address string, amount float64, network types.Network) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.positions[address] += amount
	l.lastUpdated = time.Now()

	for _, n := range l.networks {
		if n == network {
			return
		}
	}
	l.networks = append(l.networks, network)
}

// TotalValue computes the USD value of all positions priced by the given
// table. Assets with no price entry contribute nothing.
func (l *Ledger) TotalValue(prices map[string]float64) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := 0.0
	for address, amount := range l.positions {
		if price, ok := prices[address]; ok {
			total += amount * price
		}
	}

	return total
}

// Composition returns each asset's share of total value as a percentage.
// Empty when nothing is priced.
func (l *Ledger) Composition(prices map[string]float64) map[string]float64 {
	total := l.TotalValue(prices)
	if total <= 0 {
		return map[string]float64{}
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	composition := make(map[string]float64, len(l.positions))
	for address, amount := range l.positions {
		if price, ok := prices[address]; ok {
			composition[address] = amount * price / total * 100
		}
	}

	return composition
}

// RebalancePlan compares current composition against a target allocation
// (percent per asset) and returns the trades for drifts beyond the
// deviation gate.
func (l *Ledger) RebalancePlan(target map[string]float64, prices map[string]float64) []RebalanceTrade {
	current := l.Composition(prices)

	addresses := make([]string, 0, len(target))
	for address := range target {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	var trades []RebalanceTrade
	for _, address := range addresses {
		diff := target[address] - current[address]
		if diff > rebalanceDeviationPct {
			trades = append(trades, RebalanceTrade{From: "OTHER", To: address, DeltaPct: diff})
		} else if diff < -rebalanceDeviationPct {
			trades = append(trades, RebalanceTrade{From: address, To: "OTHER", DeltaPct: -diff})
		}
	}

	return trades
}

// EstimateReturns projects USD returns over the given timeframe under
// three fixed yield assumptions.
func (l *Ledger) EstimateReturns(days int, prices map[string]float64) map[string]float64 {
	total := l.TotalValue(prices)
	fraction := float64(days) / 365

	return map[string]float64{
		"conservative": total * 0.08 * fraction,
		"moderate":     total * 0.15 * fraction,
		"aggressive":   total * 0.35 * fraction,
	}
}

// Snapshot returns a copy of the ledger state valued at the given prices.
func (l *Ledger) Snapshot(prices map[string]float64) Snapshot {
	total := l.TotalValue(prices)

	l.mu.RLock()
	defer l.mu.RUnlock()

	positions := make(map[string]float64, len(l.positions))
	for k, v := range l.positions {
		positions[k] = v
	}
	networks := make([]types.Network, len(l.networks))
	copy(networks, l.networks)

	return Snapshot{
		Positions:     positions,
		Networks:      networks,
		TotalValueUSD: total,
		LastUpdated:   l.lastUpdated,
	}
}
