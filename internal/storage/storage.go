// Package storage defines the key-value contract the catalog engine persists
// through. Drivers: file (single-node flat files) and redis (shared).
package storage

import (
	"context"
	"time"
)

// Store is the driver contract.
type Store interface {
	// Get retrieves a value by key. Returns ErrKeyNotFound when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value at the given key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Del removes a key. Deleting a missing key is not an error.
	Del(ctx context.Context, key string) error
	// Ping checks backend availability.
	Ping(ctx context.Context) error
	// WaitForReady polls Ping until the store responds or timeout expires.
	WaitForReady(ctx context.Context, timeout time.Duration) error
	// Close releases driver resources.
	Close()
}
