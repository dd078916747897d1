package app

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/arbitrage"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/engine"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/gasoracle"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/marketdata"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/config"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/healthprobe"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/pkg/httpserver"
)

// App is the long-running service composition: engine, detector, market
// data resolver, storage backend, and the HTTP surface.
type App struct {
	cfg           *config.Config
	logger        *zap.Logger
	healthChecker *healthprobe.HealthChecker
	httpServer    *httpserver.Server
	engine        *engine.Engine
	detector      *arbitrage.Detector
	resolver      marketdata.Resolver
	signals       gasoracle.SignalSource
	storage       engine.Storage
	closers       []func() error
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}
