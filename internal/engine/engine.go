package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/gasoracle"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/marketdata"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/routing"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// DefaultMaxHistory bounds the in-memory execution history. Older entries
// are evicted; the Storage backend holds the durable copy.
const DefaultMaxHistory = 1000

// Storage is the interface for flushing execution records.
type Storage interface {
	StoreRecord(ctx context.Context, record *ExecutionRecord) error
	Close() error
}

// Engine composes route selection and fee timing into execute decisions
// and owns the append-only execution history. The history append is the
// only stateful step; it is guarded by a single mutex so decide→append is
// atomic with respect to concurrent callers.
type Engine struct {
	config   Config
	resolver marketdata.Resolver
	signals  gasoracle.SignalSource
	storage  Storage
	logger   *zap.Logger

	mu      sync.Mutex
	history []*ExecutionRecord
}

// Config holds engine configuration.
type Config struct {
	Networks   []types.Network
	Venues     []types.Venue
	MaxHistory int
	Logger     *zap.Logger
}

// New creates a new decision engine. Storage may be nil, in which case
// records live only in the in-memory history.
func New(cfg Config, resolver marketdata.Resolver, signals gasoracle.SignalSource, storage Storage) *Engine {
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if len(cfg.Venues) == 0 {
		cfg.Venues = types.DefaultVenues()
	}

	return &Engine{
		config:   cfg,
		resolver: resolver,
		signals:  signals,
		storage:  storage,
		logger:   cfg.Logger,
	}
}

// Decide selects the best route for the request, computes a fee timing
// plan for its network, appends an ExecutionRecord to history exactly
// once, and returns it. Returns types.ErrNoViableRoute when no candidate
// survives the slippage ceiling.
func (e *Engine) Decide(ctx context.Context, req types.TradeRequest) (*ExecutionRecord, error) {
	start := time.Now()
	defer func() {
		DecisionDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	if err := req.Validate(); err != nil {
		DecisionsTotal.WithLabelValues("invalid_request").Inc()
		return nil, err
	}

	maxSlippage := req.MaxSlippagePct
	if maxSlippage == 0 {
		maxSlippage = types.DefaultMaxSlippagePct
	}

	networks := e.config.Networks
	if len(networks) == 0 {
		networks = []types.Network{req.Network}
	}

	route, ok := routing.SelectBest(req.Source, req.Target, req.AmountIn, networks, e.config.Venues, maxSlippage)
	if !ok {
		DecisionsTotal.WithLabelValues("no_viable_route").Inc()
		e.logger.Info("no-viable-route",
			zap.String("source", req.Source.Symbol),
			zap.String("target", req.Target.Symbol),
			zap.Float64("max-slippage", maxSlippage))
		return nil, types.ErrNoViableRoute
	}

	signal := e.signals.FeeSignal(ctx, route.Network)
	plan := gasoracle.Optimize(signal)

	record := newExecutionRecord(route, plan)
	e.append(record)

	if e.storage != nil {
		if err := e.storage.StoreRecord(ctx, record); err != nil {
			// Storage is a flush target, not the source of truth; a failed
			// write does not fail the decision.
			e.logger.Error("failed-to-store-record",
				zap.String("record-id", record.ID),
				zap.Error(err))
		}
	}

	DecisionsTotal.WithLabelValues("selected").Inc()
	e.logger.Info("route-selected",
		zap.String("record-id", record.ID),
		zap.String("venue", string(route.Venue)),
		zap.String("network", string(route.Network)),
		zap.Float64("slippage-pct", route.SlippagePct),
		zap.Float64("total-cost-usd", record.TotalCostUSD),
		zap.String("urgency", string(plan.Urgency)))

	return record, nil
}

// Quote resolves both asset references through the market data boundary
// (with a timeout, degrading on failure) and runs Decide. amount is in
// whole source tokens.
func (e *Engine) Quote(ctx context.Context, sourceRef, targetRef string, amount float64, network types.Network, maxSlippagePct float64) (*ExecutionRecord, error) {
	if e.resolver == nil {
		return nil, fmt.Errorf("no market data resolver configured")
	}

	resolveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	source := e.resolver.Resolve(resolveCtx, sourceRef, network)
	target := e.resolver.Resolve(resolveCtx, targetRef, network)

	return e.Decide(ctx, types.TradeRequest{
		Source:         source,
		Target:         target,
		AmountIn:       source.Denormalize(amount),
		Network:        network,
		MaxSlippagePct: maxSlippagePct,
	})
}

func (e *Engine) append(record *ExecutionRecord) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.history = append(e.history, record)
	if len(e.history) > e.config.MaxHistory {
		e.history = e.history[len(e.history)-e.config.MaxHistory:]
	}

	HistorySize.Set(float64(len(e.history)))
}

// History returns a read-only snapshot of the execution history in
// append order.
func (e *Engine) History() []*ExecutionRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*ExecutionRecord, len(e.history))
	copy(out, e.history)

	return out
}

// Summary aggregates the current history: execution count, total volume
// in whole source tokens, and average slippage.
func (e *Engine) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.history) == 0 {
		return Summary{}
	}

	var volume, slippage float64
	for _, record := range e.history {
		volume += record.Route.Source.Normalize(record.Route.AmountIn)
		slippage += record.Route.SlippagePct
	}

	return Summary{
		TotalExecutions:    len(e.history),
		TotalVolume:        volume,
		AverageSlippagePct: slippage / float64(len(e.history)),
		LastExecution:      e.history[len(e.history)-1].CreatedAt,
	}
}
