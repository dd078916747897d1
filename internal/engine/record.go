package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/gasoracle"
	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/routing"
)

// ExecutionRecord combines a selected route, its cost metrics, and the fee
// timing plan computed alongside it. Immutable once appended to history.
type ExecutionRecord struct {
	ID           string
	CreatedAt    time.Time
	Route        routing.RouteCandidate
	TotalCostUSD float64
	GasPlan      gasoracle.Plan
}

func newExecutionRecord(route routing.RouteCandidate, plan gasoracle.Plan) *ExecutionRecord {
	return &ExecutionRecord{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Route:        route,
		TotalCostUSD: route.TotalCostUSD(),
		GasPlan:      plan,
	}
}

// String renders a compact one-line summary for logs and console output.
func (r *ExecutionRecord) String() string {
	return fmt.Sprintf(
		"Execution[%s] %s cost=$%.2f urgency=%s wait=%ds",
		r.ID[:8], r.Route.String(), r.TotalCostUSD, r.GasPlan.Urgency, r.GasPlan.WaitSeconds,
	)
}

// Summary aggregates the execution history.
type Summary struct {
	TotalExecutions    int
	TotalVolume        float64
	AverageSlippagePct float64
	LastExecution      time.Time
}
