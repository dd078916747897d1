package engine

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/marketdata"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/testutil"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// recordingStorage records flushed execution records in memory.
type recordingStorage struct {
	mu      sync.Mutex
	records []*ExecutionRecord
	failErr error
}

func (s *recordingStorage) StoreRecord(_ context.Context, record *ExecutionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return s.failErr
	}
	s.records = append(s.records, record)

	return nil
}

func (s *recordingStorage) Close() error { return nil }

func (s *recordingStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

func newTestEngine(store Storage) *Engine {
	return New(Config{}, marketdata.NewReferenceResolver(), testutil.NewMockSignalSource(55, 60), store)
}

func TestDecide_EndToEnd(t *testing.T) {
	store := &recordingStorage{}
	e := newTestEngine(store)

	weth := testutil.WETH()
	usdc := testutil.USDC()
	req := types.TradeRequest{
		Source:         weth,
		Target:         usdc,
		AmountIn:       weth.Denormalize(1.5),
		Network:        types.NetworkEthereum,
		MaxSlippagePct: 5.0,
	}

	record, err := e.Decide(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, record)

	// 1.5 ETH at $2500 lands in [3375, 3750] USDC after slippage.
	outWhole := usdc.Normalize(record.Route.ExpectedOut)
	assert.GreaterOrEqual(t, outWhole, 1.5*2500*0.90)
	assert.LessOrEqual(t, outWhole, 1.5*2500*1.0)
	assert.LessOrEqual(t, record.Route.SlippagePct, 5.0)
	assert.NotEmpty(t, record.ID)
	assert.NotZero(t, record.GasPlan.Urgency)

	// Appended to history exactly once, flushed to storage exactly once.
	assert.Len(t, e.History(), 1)
	assert.Equal(t, 1, store.count())
}

func TestDecide_InvalidRequest(t *testing.T) {
	e := newTestEngine(nil)

	tests := []struct {
		name string
		req  types.TradeRequest
	}{
		{
			name: "non-positive amount",
			req:  types.TradeRequest{Source: testutil.WETH(), Target: testutil.USDC(), AmountIn: 0, Network: types.NetworkEthereum},
		},
		{
			name: "unknown network",
			req:  types.TradeRequest{Source: testutil.WETH(), Target: testutil.USDC(), AmountIn: 1e18, Network: "solana"},
		},
		{
			name: "negative ceiling",
			req:  types.TradeRequest{Source: testutil.WETH(), Target: testutil.USDC(), AmountIn: 1e18, Network: types.NetworkEthereum, MaxSlippagePct: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Decide(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, types.IsInvalidRequest(err))
			assert.Empty(t, e.History(), "rejected requests must not touch history")
		})
	}
}

func TestDecide_NoViableRoute(t *testing.T) {
	e := newTestEngine(nil)

	thin := testutil.ThinToken()
	req := types.TradeRequest{
		Source:         thin,
		Target:         testutil.USDC(),
		AmountIn:       thin.Denormalize(1e9),
		Network:        types.NetworkEthereum,
		MaxSlippagePct: 0.001,
	}

	_, err := e.Decide(context.Background(), req)
	assert.ErrorIs(t, err, types.ErrNoViableRoute)
	assert.Empty(t, e.History())
}

func TestDecide_StorageFailureIsNotFatal(t *testing.T) {
	store := &recordingStorage{failErr: errors.New("connection refused")}
	e := newTestEngine(store)

	record, err := e.Decide(context.Background(), testutil.CreateTradeRequest(testutil.WETH(), testutil.USDC(), 1))
	require.NoError(t, err)
	assert.NotNil(t, record)
	assert.Len(t, e.History(), 1, "decision survives a failed flush")
}

func TestDecide_DefaultSlippageCeiling(t *testing.T) {
	e := newTestEngine(nil)

	req := testutil.CreateTradeRequest(testutil.WETH(), testutil.USDC(), 2)
	record, err := e.Decide(context.Background(), req)

	require.NoError(t, err)
	assert.LessOrEqual(t, record.Route.SlippagePct, types.DefaultMaxSlippagePct)
}

func TestQuote_ResolvesReferences(t *testing.T) {
	e := newTestEngine(nil)

	record, err := e.Quote(context.Background(), "WETH", "USDC", 1.5, types.NetworkEthereum, 5.0)
	require.NoError(t, err)

	assert.Equal(t, "WETH", record.Route.Source.Symbol)
	assert.Equal(t, "USDC", record.Route.Target.Symbol)
	assert.InDelta(t, 1.5e18, record.Route.AmountIn, 1e9)
}

func TestQuote_UnknownRefDegrades(t *testing.T) {
	e := newTestEngine(nil)

	// Unknown references resolve to degraded descriptors with zero price;
	// the amount normalizes to zero and fails request validation.
	_, err := e.Quote(context.Background(), "NOPE", "ALSO_NOPE", 0, types.NetworkEthereum, 5.0)
	require.Error(t, err)
	assert.True(t, types.IsInvalidRequest(err))
}

func TestHistory_Bounded(t *testing.T) {
	e := New(Config{MaxHistory: 3}, marketdata.NewReferenceResolver(), testutil.NewMockSignalSource(55, 60), nil)

	for i := 0; i < 5; i++ {
		_, err := e.Decide(context.Background(), testutil.CreateTradeRequest(testutil.WETH(), testutil.USDC(), 1))
		require.NoError(t, err)
	}

	history := e.History()
	assert.Len(t, history, 3, "history must evict beyond the bound")
}

func TestHistory_SnapshotIsolation(t *testing.T) {
	e := newTestEngine(nil)

	_, err := e.Decide(context.Background(), testutil.CreateTradeRequest(testutil.WETH(), testutil.USDC(), 1))
	require.NoError(t, err)

	snapshot := e.History()
	snapshot[0] = nil

	assert.NotNil(t, e.History()[0], "mutating the snapshot must not affect the engine")
}

func TestSummary(t *testing.T) {
	e := newTestEngine(nil)

	assert.Equal(t, Summary{}, e.Summary(), "empty history yields a zero summary")

	for _, amount := range []float64{1, 2, 3} {
		_, err := e.Decide(context.Background(), testutil.CreateTradeRequest(testutil.WETH(), testutil.USDC(), amount))
		require.NoError(t, err)
	}

	summary := e.Summary()
	assert.Equal(t, 3, summary.TotalExecutions)
	assert.InDelta(t, 6.0, summary.TotalVolume, 1e-6)
	assert.Greater(t, summary.AverageSlippagePct, 0.0)
	assert.False(t, summary.LastExecution.IsZero())
}

func TestDecide_Concurrent(t *testing.T) {
	e := newTestEngine(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Decide(context.Background(), testutil.CreateTradeRequest(testutil.WETH(), testutil.USDC(), 1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, e.History(), 20)
}
