package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Shutdown stops the HTTP server, flushes storage, and releases resources.
func (a *App) Shutdown() error {
	a.logger.Info("application-shutting-down")
	a.healthChecker.SetReady(false)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("http-server-shutdown-failed", zap.Error(err))
	}

	a.cancel()
	a.wg.Wait()

	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			a.logger.Error("storage-close-failed", zap.Error(err))
		}
	}

	for _, closer := range a.closers {
		if err := closer(); err != nil {
			a.logger.Error("resource-close-failed", zap.Error(err))
		}
	}

	a.logger.Info("application-stopped")

	return nil
}
