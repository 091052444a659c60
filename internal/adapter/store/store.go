package store

import (
	"context"
	"fmt"

	"order-up/internal/app/core"
	"order-up/internal/config"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// New builds the store backend named by the configuration.
func New(ctx context.Context, cfg *config.Config) (core.Store, error) {
	switch cfg.Store.Backend {
	case "", BackendFile:
		return NewFileStore(cfg.Store.DataDir)
	case BackendPostgres:
		return NewPostgresStore(ctx, cfg.DB)
	case BackendRedis:
		return NewRedisStore(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
