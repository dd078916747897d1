package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/cache"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/types"
)

// CachedResolver wraps a Resolver with TTL caching. Degraded descriptors
// are not cached, so a recovered upstream is picked up on the next call.
type CachedResolver struct {
	inner Resolver
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedResolver creates a caching wrapper around inner.
func NewCachedResolver(inner Resolver, c cache.Cache, ttl time.Duration) *CachedResolver {
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &CachedResolver{inner: inner, cache: c, ttl: ttl}
}

// Resolve serves from cache when possible, otherwise delegates and caches
// the result.
func (c *CachedResolver) Resolve(ctx context.Context, ref string, network types.Network) types.AssetDescriptor {
	key := fmt.Sprintf("asset:%s:%s", network, ref)

	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			if desc, ok := cached.(types.AssetDescriptor); ok {
				ResolutionCacheHitsTotal.Inc()
				return desc
			}
		}
		ResolutionCacheMissesTotal.Inc()
	}

	desc := c.inner.Resolve(ctx, ref, network)

	if c.cache != nil && !desc.Degraded() {
		c.cache.Set(key, desc, c.ttl)
	}

	return desc
}
