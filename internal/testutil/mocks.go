package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// MockPricingAPI simulates a Coingecko-style simple token price API.
// Prices are keyed by lower-cased contract address.
type MockPricingAPI struct {
	*httptest.Server
	mu     sync.RWMutex
	prices map[string]PricePoint
	fail   bool
}

// PricePoint is one mock price entry.
type PricePoint struct {
	USD       float64 `json:"usd"`
	USD24hVol float64 `json:"usd_24h_vol"`
}

// NewMockPricingAPI starts a mock pricing server with the given entries.
func NewMockPricingAPI(prices map[string]PricePoint) *MockPricingAPI {
	mock := &MockPricingAPI{prices: make(map[string]PricePoint)}
	for addr, p := range prices {
		mock.prices[strings.ToLower(addr)] = p
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.RLock()
		defer mock.mu.RUnlock()

		if mock.fail {
			http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
			return
		}
		if !strings.HasPrefix(r.URL.Path, "/api/v3/simple/token_price/") {
			http.NotFound(w, r)
			return
		}

		response := make(map[string]PricePoint)
		for _, addr := range strings.Split(r.URL.Query().Get("contract_addresses"), ",") {
			if p, ok := mock.prices[strings.ToLower(addr)]; ok {
				response[strings.ToLower(addr)] = p
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	})

	mock.Server = httptest.NewServer(handler)

	return mock
}

// SetPrice adds or replaces a price entry.
func (m *MockPricingAPI) SetPrice(address string, point PricePoint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[strings.ToLower(address)] = point
}

// SetFailure makes every subsequent request return a 503.
func (m *MockPricingAPI) SetFailure(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = fail
}

// MockSignalSource returns a fixed fee signal for every network and counts
// calls for verification.
type MockSignalSource struct {
	Signal types.FeeSignal

	mu    sync.Mutex
	calls int
}

// NewMockSignalSource creates a source returning the given signal.
func NewMockSignalSource(current, average float64) *MockSignalSource {
	return &MockSignalSource{
		Signal: types.FeeSignal{CurrentGwei: current, AverageGwei: average},
	}
}

// FeeSignal returns the configured signal.
func (m *MockSignalSource) FeeSignal(_ context.Context, _ types.Network) types.FeeSignal {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	return m.Signal
}

// Calls returns how many times FeeSignal was invoked.
func (m *MockSignalSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.calls
}
