package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/arbitrage"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/engine"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/marketdata"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/testutil"
)

func newTestHandler() *APIHandler {
	resolver := marketdata.NewReferenceResolver()
	signals := testutil.NewMockSignalSource(55, 60)
	eng := engine.New(engine.Config{Logger: zap.NewNop()}, resolver, signals, nil)
	detector := arbitrage.New(arbitrage.Config{Resolver: resolver, Logger: zap.NewNop()})

	return NewAPIHandler(eng, detector, signals, zap.NewNop())
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandleQuote(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/quote?source=WETH&target=USDC&amount=1.5", nil)
	rec := httptest.NewRecorder()

	h.HandleQuote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	assert.Equal(t, "WETH", body["source"])
	assert.Equal(t, "USDC", body["target"])
	assert.Equal(t, "ethereum", body["network"])
	assert.NotEmpty(t, body["id"])
	assert.Greater(t, body["expected_out"].(float64), 0.0)
}

func TestHandleQuote_BadRequests(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name string
		url  string
	}{
		{"missing source", "/api/quote?target=USDC&amount=1"},
		{"missing target", "/api/quote?source=WETH&amount=1"},
		{"missing amount", "/api/quote?source=WETH&target=USDC"},
		{"negative amount", "/api/quote?source=WETH&target=USDC&amount=-1"},
		{"bad network", "/api/quote?source=WETH&target=USDC&amount=1&network=solana"},
		{"bad slippage", "/api/quote?source=WETH&target=USDC&amount=1&max_slippage=wide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleQuote(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeBody(t, rec)["error"])
		})
	}
}

func TestHandleQuote_NoViableRoute(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/quote?source=WETH&target=USDC&amount=1&max_slippage=0.0000001", nil)
	rec := httptest.NewRecorder()

	h.HandleQuote(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleArbitrage(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/arbitrage?token_a=WETH&token_b=USDC&amount=1", nil)
	rec := httptest.NewRecorder()

	h.HandleArbitrage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	_, ok := body["cycles"]
	assert.True(t, ok, "response always carries a cycles array")
}

func TestHandleArbitrage_MissingTokens(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.HandleArbitrage(rec, httptest.NewRequest(http.MethodGet, "/api/arbitrage?amount=1", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGas(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/gas?network=ethereum&gas_units=100000", nil)
	rec := httptest.NewRecorder()

	h.HandleGas(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	assert.Equal(t, 55.0, body["current_gwei"])
	assert.Equal(t, 60.0, body["average_gwei"])
	assert.Equal(t, "LOW", body["urgency"])
	assert.Equal(t, 100000.0, body["quoted_gas_units"])
}

func TestHandleGas_BadNetwork(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.HandleGas(rec, httptest.NewRequest(http.MethodGet, "/api/gas?network=solana", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHistory(t *testing.T) {
	h := newTestHandler()

	// Seed one decision through the quote endpoint.
	seed := httptest.NewRecorder()
	h.HandleQuote(seed, httptest.NewRequest(http.MethodGet, "/api/quote?source=WETH&target=USDC&amount=1", nil))
	require.Equal(t, http.StatusOK, seed.Code)

	rec := httptest.NewRecorder()
	h.HandleHistory(rec, httptest.NewRequest(http.MethodGet, "/api/history", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	records, ok := body["records"].([]interface{})
	require.True(t, ok)
	assert.Len(t, records, 1)

	summary, ok := body["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1.0, summary["total_executions"])
}

func TestHandleGas_ContextPropagated(t *testing.T) {
	h := newTestHandler()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/gas", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	// A static signal source ignores cancellation; the handler still serves.
	h.HandleGas(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
