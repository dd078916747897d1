package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/arbitrage"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/engine"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/gasoracle"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// APIHandler serves the JSON API on top of the decision engine.
type APIHandler struct {
	engine   *engine.Engine
	detector *arbitrage.Detector
	signals  gasoracle.SignalSource
	logger   *zap.Logger
}

// NewAPIHandler creates the API handler.
func NewAPIHandler(eng *engine.Engine, detector *arbitrage.Detector, signals gasoracle.SignalSource, logger *zap.Logger) *APIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &APIHandler{engine: eng, detector: detector, signals: signals, logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// HandleQuote handles GET /api/quote?source=ETH&target=USDC&amount=1.5&network=ethereum&max_slippage=5.0
func (h *APIHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	source := q.Get("source")
	target := q.Get("target")
	if source == "" || target == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "source and target are required"})
		return
	}

	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil || amount <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "amount must be a positive number"})
		return
	}

	network := types.NetworkEthereum
	if nw := q.Get("network"); nw != "" {
		network, err = types.ParseNetwork(nw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}

	maxSlippage := types.DefaultMaxSlippagePct
	if ms := q.Get("max_slippage"); ms != "" {
		maxSlippage, err = strconv.ParseFloat(ms, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "max_slippage must be a number"})
			return
		}
	}

	record, err := h.engine.Quote(r.Context(), source, target, amount, network, maxSlippage)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrNoViableRoute):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "no viable swap route found"})
		case types.IsInvalidRequest(err):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		default:
			h.logger.Error("quote-failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, recordResponse(record))
}

// HandleArbitrage handles GET /api/arbitrage?token_a=ETH&token_b=USDC&amount=1.0
func (h *APIHandler) HandleArbitrage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tokenA := q.Get("token_a")
	tokenB := q.Get("token_b")
	if tokenA == "" || tokenB == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "token_a and token_b are required"})
		return
	}

	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil || amount <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "amount must be a positive number"})
		return
	}

	cycles := h.detector.FindCyclesByRef(r.Context(), tokenA, tokenB, amount, nil)

	out := make([]cycleJSON, 0, len(cycles))
	for _, c := range cycles {
		out = append(out, cycleResponse(c))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"cycles": out})
}

// HandleGas handles GET /api/gas?network=ethereum&gas_units=120000
func (h *APIHandler) HandleGas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	network := types.NetworkEthereum
	if nw := q.Get("network"); nw != "" {
		var err error
		network, err = types.ParseNetwork(nw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}

	gasUnits := int64(120000)
	if gu := q.Get("gas_units"); gu != "" {
		parsed, err := strconv.ParseInt(gu, 10, 64)
		if err != nil || parsed <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "gas_units must be a positive integer"})
			return
		}
		gasUnits = parsed
	}

	signal := h.signals.FeeSignal(r.Context(), network)
	plan := gasoracle.Optimize(signal)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"network":          network,
		"current_gwei":     plan.CurrentGwei,
		"average_gwei":     plan.AverageGwei,
		"recommended_gwei": plan.RecommendedGwei,
		"urgency":          plan.Urgency,
		"wait_seconds":     plan.WaitSeconds,
		"savings_pct":      plan.SavingsPct,
		"savings_usd":      plan.EstimateSavingsUSD(gasUnits),
		"quoted_gas_units": gasUnits,
	})
}

// HandleHistory handles GET /api/history
func (h *APIHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	history := h.engine.History()

	out := make([]recordJSON, 0, len(history))
	for _, record := range history {
		out = append(out, recordResponse(record))
	}

	summary := h.engine.Summary()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"records": out,
		"summary": map[string]interface{}{
			"total_executions":     summary.TotalExecutions,
			"total_volume":         summary.TotalVolume,
			"average_slippage_pct": summary.AverageSlippagePct,
			"last_execution":       summary.LastExecution,
		},
	})
}

type recordJSON struct {
	ID              string  `json:"id"`
	CreatedAt       string  `json:"created_at"`
	Source          string  `json:"source"`
	Target          string  `json:"target"`
	Network         string  `json:"network"`
	Venue           string  `json:"venue"`
	AmountIn        float64 `json:"amount_in"`
	ExpectedOut     float64 `json:"expected_out"`
	SlippagePct     float64 `json:"slippage_pct"`
	PriceImpactPct  float64 `json:"price_impact_pct"`
	GasUnits        int64   `json:"gas_units"`
	TotalCostUSD    float64 `json:"total_cost_usd"`
	GasUrgency      string  `json:"gas_urgency"`
	GasWaitSeconds  int     `json:"gas_wait_seconds"`
	GasSavingsPct   float64 `json:"gas_savings_pct"`
	RecommendedGwei float64 `json:"recommended_gwei"`
}

func recordResponse(record *engine.ExecutionRecord) recordJSON {
	route := record.Route

	return recordJSON{
		ID:              record.ID,
		CreatedAt:       record.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Source:          route.Source.Symbol,
		Target:          route.Target.Symbol,
		Network:         string(route.Network),
		Venue:           string(route.Venue),
		AmountIn:        route.AmountIn,
		ExpectedOut:     route.ExpectedOut,
		SlippagePct:     route.SlippagePct,
		PriceImpactPct:  route.PriceImpactPct,
		GasUnits:        route.GasUnits,
		TotalCostUSD:    record.TotalCostUSD,
		GasUrgency:      string(record.GasPlan.Urgency),
		GasWaitSeconds:  record.GasPlan.WaitSeconds,
		GasSavingsPct:   record.GasPlan.SavingsPct,
		RecommendedGwei: record.GasPlan.RecommendedGwei,
	}
}

type cycleJSON struct {
	ID           string  `json:"id"`
	ForwardVenue string  `json:"forward_venue"`
	ReverseVenue string  `json:"reverse_venue"`
	ProfitPct    float64 `json:"profit_pct"`
	RankingKey   float64 `json:"ranking_key"`
}

func cycleResponse(c arbitrage.Cycle) cycleJSON {
	return cycleJSON{
		ID:           c.ID,
		ForwardVenue: string(c.Forward.Venue),
		ReverseVenue: string(c.Reverse.Venue),
		ProfitPct:    c.ProfitPct,
		RankingKey:   c.RankingKey,
	}
}
