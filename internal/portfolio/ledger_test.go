package portfolio

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

const (
	addrWETH = "0xweth"
	addrUSDC = "0xusdc"
)

func seededLedger() (*Ledger, map[string]float64) {
	l := NewLedger()
	l.Add(addrWETH, 2.0, types.NetworkEthereum)
	l.Add(addrUSDC, 5000.0, types.NetworkEthereum)

	prices := map[string]float64{addrWETH: 2500.0, addrUSDC: 1.0}

	return l, prices
}

func TestLedger_TotalValue(t *testing.T) {
	l, prices := seededLedger()

	assert.InDelta(t, 10000.0, l.TotalValue(prices), 1e-9)

	// Unpriced assets contribute nothing.
	l.Add("0xunknown", 42, types.NetworkPolygon)
	assert.InDelta(t, 10000.0, l.TotalValue(prices), 1e-9)
}

func TestLedger_AddAccumulates(t *testing.T) {
	l := NewLedger()
	l.Add(addrWETH, 1.0, types.NetworkEthereum)
	l.Add(addrWETH, 1.5, types.NetworkEthereum)

	snapshot := l.Snapshot(map[string]float64{addrWETH: 2500})
	assert.InDelta(t, 2.5, snapshot.Positions[addrWETH], 1e-9)
	assert.Equal(t, []types.Network{types.NetworkEthereum}, snapshot.Networks)
}

func TestLedger_Composition(t *testing.T) {
	l, prices := seededLedger()

	composition := l.Composition(prices)
	assert.InDelta(t, 50.0, composition[addrWETH], 1e-9)
	assert.InDelta(t, 50.0, composition[addrUSDC], 1e-9)

	empty := NewLedger()
	assert.Empty(t, empty.Composition(prices))
}

func TestLedger_RebalancePlan(t *testing.T) {
	l, prices := seededLedger()

	// Current composition is 50/50; a 60/40 target drifts 10 points each way.
	target := map[string]float64{addrWETH: 60, addrUSDC: 40}
	trades := l.RebalancePlan(target, prices)

	require.Len(t, trades, 2)
	byTo := map[string]RebalanceTrade{}
	for _, trade := range trades {
		byTo[trade.To] = trade
	}

	buy, ok := byTo[addrWETH]
	require.True(t, ok)
	assert.InDelta(t, 10.0, buy.DeltaPct, 1e-9)

	sell, ok := byTo["OTHER"]
	require.True(t, ok)
	assert.Equal(t, addrUSDC, sell.From)
}

func TestLedger_RebalancePlan_WithinDeviation(t *testing.T) {
	l, prices := seededLedger()

	// 51/49 is within the 2-point gate: no trades worth their gas.
	target := map[string]float64{addrWETH: 51, addrUSDC: 49}
	assert.Empty(t, l.RebalancePlan(target, prices))
}

func TestLedger_RebalancePlan_StableOrder(t *testing.T) {
	l, prices := seededLedger()

	target := map[string]float64{addrWETH: 70, addrUSDC: 20, "0xextra": 10}

	first := l.RebalancePlan(target, prices)
	require.NotEmpty(t, first)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, l.RebalancePlan(target, prices))
	}
}

func TestLedger_EstimateReturns(t *testing.T) {
	l, prices := seededLedger()

	returns := l.EstimateReturns(365, prices)
	assert.InDelta(t, 10000*0.08, returns["conservative"], 1e-9)
	assert.InDelta(t, 10000*0.15, returns["moderate"], 1e-9)
	assert.InDelta(t, 10000*0.35, returns["aggressive"], 1e-9)

	half := l.EstimateReturns(182, prices)
	assert.Less(t, half["moderate"], returns["moderate"])
}

func TestLedger_SnapshotIsolation(t *testing.T) {
	l, prices := seededLedger()

	snapshot := l.Snapshot(prices)
	snapshot.Positions[addrWETH] = 999

	assert.InDelta(t, 2.0, l.Snapshot(prices).Positions[addrWETH], 1e-9)
}

func TestLedger_ConcurrentAccess(t *testing.T) {
	l := NewLedger()
	prices := map[string]float64{addrWETH: 2500}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Add(addrWETH, 1, types.NetworkEthereum)
			_ = l.TotalValue(prices)
			_ = l.Composition(prices)
		}()
	}
	wg.Wait()

	assert.InDelta(t, 10.0, l.Snapshot(prices).Positions[addrWETH], 1e-9)
}
