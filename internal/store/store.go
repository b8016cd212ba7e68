// Package store provides the persisted key-value slot store backing carts
// and sessions. Slots are namespaced by key (e.g., "cart:42") and hold
// opaque serialized values; all reads and writes go through this single
// boundary rather than ad hoc storage calls at mutation sites.
package store

import (
	"context"
	"errors"
	"fmt"

	"freshcart/internal"
)

// ErrSlotNotFound is returned by Get when no value exists for the key.
var ErrSlotNotFound = errors.New("slot not found")

// Store is a durable key-value slot store.
// Implementations can use SQLite, PostgreSQL, or an in-memory map (tests).
type Store interface {
	// Get returns the value stored under key, or ErrSlotNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the value under key. Returns nil if the key doesn't
	// exist (idempotent).
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}

// NewStore creates a Store implementation based on configuration.
// Returns SQLiteStore for "sqlite", PostgresStore for "postgres", and
// MemoryStore for "memory".
func NewStore(ctx context.Context, cfg internal.StoreConfig) (Store, error) {
	switch cfg.Provider {
	case "sqlite", "":
		return NewSQLiteStore(cfg.SQLitePath)
	case "postgres":
		return NewPostgresStore(ctx, cfg.PostgresURL)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store provider: %s", cfg.Provider)
	}
}
