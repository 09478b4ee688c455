package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 5 * time.Second

type PostgresStorage struct {
	Connection *pgxpool.Pool
}

// NewPostgresStorage - opens a connection pool and pings the database.
func NewPostgresStorage(ctx context.Context, url string, maxConns int32) (*PostgresStorage, error) {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("can't parse database config: %w", err)
	}

	if maxConns > 0 {
		config.MaxConns = maxConns
	}

	initCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(initCtx, config)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = pool.Ping(initCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &PostgresStorage{Connection: pool}, nil
}

// Init - creates the win log table.
func (that *PostgresStorage) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS games (
			id         BIGSERIAL PRIMARY KEY,
			player     TEXT        NOT NULL,
			result     TEXT        NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	if _, err := that.Connection.Exec(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *PostgresStorage) Name() string {
	return "postgres"
}

// Check - pings the database through the pool.
func (that *PostgresStorage) Check(ctx context.Context) error {
	if err := that.Connection.Ping(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}
	return nil
}

func (that *PostgresStorage) Close() {
	that.Connection.Close()
}
