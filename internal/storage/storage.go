package storage

import (
	"context"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/engine"
)

// Storage is the interface for flushing execution records out of the
// in-memory history.
type Storage interface {
	// StoreRecord persists one execution record.
	StoreRecord(ctx context.Context, record *engine.ExecutionRecord) error

	// Close closes the storage connection.
	Close() error
}
