package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/arbitrage"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/circuitbreaker"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/engine"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/gasoracle"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/marketdata"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/storage"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/cache"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/config"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/healthprobe"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/httpserver"
)

// New creates a new application instance.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		cfg:           cfg,
		logger:        logger,
		healthChecker: healthprobe.New("excelsior"),
		ctx:           ctx,
		cancel:        cancel,
	}

	resolver, err := a.setupResolver()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup resolver: %w", err)
	}
	a.resolver = resolver

	a.signals = gasoracle.NewStaticSource()

	store, err := a.setupStorage()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup storage: %w", err)
	}
	a.storage = store

	a.engine = engine.New(engine.Config{
		MaxHistory: cfg.EngineMaxHistory,
		Logger:     logger,
	}, a.resolver, a.signals, a.storage)

	a.detector = arbitrage.New(arbitrage.Config{
		ProfitThresholdPct: cfg.ArbProfitThresholdPct,
		Resolver:           a.resolver,
		Logger:             logger,
	})

	a.httpServer = httpserver.New(&httpserver.Config{
		Port:          cfg.HTTPPort,
		Logger:        logger,
		HealthChecker: a.healthChecker,
		Engine:        a.engine,
		Detector:      a.detector,
		Signals:       a.signals,
	})

	return a, nil
}

func (a *App) setupResolver() (marketdata.Resolver, error) {
	if a.cfg.MarketDataMode == "static" {
		a.logger.Info("market-data-static-mode")
		return marketdata.NewReferenceResolver(), nil
	}

	breaker, err := circuitbreaker.New(&circuitbreaker.Config{
		FailureThreshold: a.cfg.BreakerFailureThreshold,
		RecoveryTimeout:  a.cfg.BreakerRecoveryTimeout,
		Logger:           a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create breaker: %w", err)
	}

	httpResolver := marketdata.NewHTTPResolver(&marketdata.HTTPResolverConfig{
		BaseURL: a.cfg.MarketDataBaseURL,
		Timeout: a.cfg.MarketDataTimeout,
		Breaker: breaker,
		Logger:  a.logger,
	})

	assetCache, err := cache.NewRistrettoCache(&cache.RistrettoConfig{Logger: a.logger})
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	a.closers = append(a.closers, func() error {
		assetCache.Close()
		return nil
	})

	return marketdata.NewCachedResolver(httpResolver, assetCache, a.cfg.MarketDataCacheTTL), nil
}

func (a *App) setupStorage() (engine.Storage, error) {
	if a.cfg.StorageMode == "postgres" {
		pg, err := storage.NewPostgresStorage(&storage.PostgresConfig{
			Host:     a.cfg.PostgresHost,
			Port:     a.cfg.PostgresPort,
			User:     a.cfg.PostgresUser,
			Password: a.cfg.PostgresPass,
			Database: a.cfg.PostgresDB,
			SSLMode:  a.cfg.PostgresSSL,
			Logger:   a.logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create postgres storage: %w", err)
		}
		return pg, nil
	}

	return storage.NewConsoleStorage(a.logger), nil
}

// Engine exposes the decision engine for CLI callers.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// Detector exposes the arbitrage detector for CLI callers.
func (a *App) Detector() *arbitrage.Detector {
	return a.detector
}
