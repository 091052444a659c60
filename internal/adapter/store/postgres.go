package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"order-up/internal/app/core"
	"order-up/internal/config"
)

// PostgresStore keeps each collection as a single jsonb document, one row per
// collection. The document is replaced whole on save, matching the file
// backend's unit of atomicity.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, cfg config.Postgres) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			records    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("create collections table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, collection string, v any) error {
	var records []byte
	err := s.pool.QueryRow(ctx,
		`SELECT records FROM collections WHERE name = $1`, collection,
	).Scan(&records)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: select %s: %v", core.ErrStoreFailure, collection, err)
	}
	if err := json.Unmarshal(records, v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", core.ErrStoreFailure, collection, err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", core.ErrStoreFailure, collection, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO collections (name, records, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET records = EXCLUDED.records, updated_at = now()`,
		collection, data)
	if err != nil {
		return fmt.Errorf("%w: upsert %s: %v", core.ErrStoreFailure, collection, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
