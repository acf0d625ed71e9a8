// Package search keeps the last search term across sessions.
package search

import (
	"context"
	"fmt"

	"hackerstories/config"
)

// Store is a durable string key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open returns the store selected by cfg.Store.
func Open(cfg config.Config) (Store, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		return NewSQLiteStore(cfg.DBPath)
	case config.StoreRedis:
		return NewRedisStore(RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case config.StoreMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("search: unknown store %q", cfg.Store)
	}
}
