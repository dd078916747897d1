package marketdata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/circuitbreaker"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// HTTPResolver fetches token pricing from a Coingecko-style simple token
// price API. Every failure mode (transport, status, parse, open breaker)
// resolves to a degraded descriptor rather than an error.
type HTTPResolver struct {
	baseURL    string
	httpClient *http.Client
	breaker    *circuitbreaker.Breaker
	logger     *zap.Logger
}

// HTTPResolverConfig holds resolver configuration.
type HTTPResolverConfig struct {
	BaseURL string
	Timeout time.Duration
	Breaker *circuitbreaker.Breaker
	Logger  *zap.Logger
}

// NewHTTPResolver creates a resolver against the pricing API.
func NewHTTPResolver(cfg *HTTPResolverConfig) *HTTPResolver {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &HTTPResolver{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    cfg.Breaker,
		logger:     cfg.Logger,
	}
}

// platformID maps a network to the pricing API's platform identifier.
func platformID(network types.Network) string {
	switch network {
	case types.NetworkEthereum:
		return "ethereum"
	case types.NetworkPolygon:
		return "polygon"
	case types.NetworkArbitrum:
		return "arbitrum-one"
	case types.NetworkOptimism:
		return "optimistic-ethereum"
	case types.NetworkBase:
		return "base"
	}

	return "ethereum"
}

// Resolve fetches USD price and 24h volume for a contract address.
func (r *HTTPResolver) Resolve(ctx context.Context, ref string, network types.Network) types.AssetDescriptor {
	start := time.Now()
	defer func() {
		ResolutionDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	ResolutionsTotal.Inc()

	if r.breaker != nil && !r.breaker.Allow() {
		ResolutionFailuresTotal.WithLabelValues("breaker_open").Inc()
		r.logger.Debug("resolution-skipped-breaker-open", zap.String("ref", ref))
		return degradedDescriptor(ref)
	}

	desc, err := r.fetch(ctx, ref, network)
	if err != nil {
		if r.breaker != nil {
			r.breaker.RecordFailure()
		}
		ResolutionFailuresTotal.WithLabelValues("fetch_error").Inc()
		r.logger.Warn("asset-resolution-degraded",
			zap.String("ref", ref),
			zap.String("network", string(network)),
			zap.Error(err))
		return degradedDescriptor(ref)
	}

	if r.breaker != nil {
		r.breaker.RecordSuccess()
	}

	return desc
}

func (r *HTTPResolver) fetch(ctx context.Context, ref string, network types.Network) (types.AssetDescriptor, error) {
	address := strings.ToLower(ref)

	endpoint := fmt.Sprintf("%s/api/v3/simple/token_price/%s", r.baseURL, platformID(network))
	params := url.Values{}
	params.Set("contract_addresses", address)
	params.Set("vs_currencies", "usd")
	params.Set("include_24hr_vol", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return types.AssetDescriptor{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return types.AssetDescriptor{}, fmt.Errorf("fetch token price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.AssetDescriptor{}, fmt.Errorf("pricing API status %d", resp.StatusCode)
	}

	var payload map[string]struct {
		USD       float64 `json:"usd"`
		USD24hVol float64 `json:"usd_24h_vol"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return types.AssetDescriptor{}, fmt.Errorf("decode response: %w", err)
	}

	data, ok := payload[address]
	if !ok {
		return types.AssetDescriptor{}, fmt.Errorf("no pricing data for %s", address)
	}

	desc := degradedDescriptor(ref)
	desc.PriceUSD = data.USD
	// The simple price endpoint carries no depth; 24h volume stands in as
	// the liquidity proxy until a pool-level source is wired.
	desc.LiquidityUSD = data.USD24hVol

	return desc, nil
}
