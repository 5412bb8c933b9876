package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/jmoiron/sqlx"

	"github.com/tldm-bits/ordnance-service/pkg/metrics"
)

// PostgresDB wraps sqlx.DB (over the pgx driver) with health reporting
type PostgresDB struct {
	db      *sqlx.DB
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewPostgresDB creates a new PostgreSQL connection pool
func NewPostgresDB(databaseURL string, maxConns int, logger *slog.Logger, metricsCollector *metrics.Metrics) (*PostgresDB, error) {
	db, err := sqlx.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns / 2)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pg := &PostgresDB{
		db:      db,
		logger:  logger,
		metrics: metricsCollector,
	}

	if metricsCollector != nil {
		metricsCollector.DatabaseConnections.Set(float64(maxConns))
		metricsCollector.UpdateDependencyHealth("postgres", true)
	}

	logger.Info("PostgreSQL connection established", "max_conns", maxConns)
	return pg, nil
}

// DB returns the underlying sqlx.DB
func (p *PostgresDB) DB() *sqlx.DB {
	return p.db
}

// Health checks the health of the database connection
func (p *PostgresDB) Health(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		if p.metrics != nil {
			p.metrics.UpdateDependencyHealth("postgres", false)
		}
		return err
	}

	if p.metrics != nil {
		p.metrics.UpdateDependencyHealth("postgres", true)
		p.metrics.DatabaseConnections.Set(float64(p.db.Stats().OpenConnections))
	}
	return nil
}

// Close closes the database connection pool
func (p *PostgresDB) Close() {
	if p.db != nil {
		p.db.Close()
		p.logger.Info("PostgreSQL connection pool closed")

		if p.metrics != nil {
			p.metrics.DatabaseConnections.Set(0)
			p.metrics.UpdateDependencyHealth("postgres", false)
		}
	}
}
