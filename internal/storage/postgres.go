package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/internal/engine"
)

// PostgresStorage implements Storage using PostgreSQL.
type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

// PostgresConfig holds PostgreSQL configuration.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
	Logger   *zap.Logger
}

// NewPostgresStorage creates a new PostgreSQL storage.
func NewPostgresStorage(cfg *PostgresConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	cfg.Logger.Info("postgres-storage-connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database))

	return &PostgresStorage{
		db:     db,
		logger: cfg.Logger,
	}, nil
}

// StoreRecord inserts an execution record into PostgreSQL.
func (p *PostgresStorage) StoreRecord(ctx context.Context, record *engine.ExecutionRecord) error {
	query := `
		INSERT INTO execution_records (
			id, created_at, source_symbol, target_symbol, network, venue,
			amount_in, expected_out, slippage_pct, price_impact_pct,
			gas_units, total_cost_usd,
			gas_current_gwei, gas_recommended_gwei, gas_urgency,
			gas_wait_seconds, gas_savings_pct
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
	`

	route := record.Route

	_, err := p.db.ExecContext(ctx, query,
		record.ID,
		record.CreatedAt,
		route.Source.Symbol,
		route.Target.Symbol,
		string(route.Network),
		string(route.Venue),
		route.AmountIn,
		route.ExpectedOut,
		route.SlippagePct,
		route.PriceImpactPct,
		route.GasUnits,
		record.TotalCostUSD,
		record.GasPlan.CurrentGwei,
		record.GasPlan.RecommendedGwei,
		string(record.GasPlan.Urgency),
		record.GasPlan.WaitSeconds,
		record.GasPlan.SavingsPct,
	)
	if err != nil {
		RecordStoreFailuresTotal.Inc()
		return fmt.Errorf("insert execution record: %w", err)
	}

	RecordsStoredTotal.Inc()

	return nil
}

// Close closes the database connection.
func (p *PostgresStorage) Close() error {
	p.logger.Info("closing-postgres-storage")
	return p.db.Close()
}
