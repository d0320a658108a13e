// Package storage provides abstractions for persistent data storage.
package storage

import "context"

// Entry is a single key/value pair written by SaveMany.
type Entry struct {
	Key   string
	Value []byte
}

// Store defines the interface for record persistence.
// The ledger serializes each of its collections under a fixed key and relies
// on the store only for durability: a Load returns whatever the last
// successful Save wrote.
type Store interface {
	// Load returns the value stored under key.
	// A missing key yields nil and no error.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save stores value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error

	// SaveMany stores all entries atomically.
	SaveMany(ctx context.Context, entries ...Entry) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// Close releases any resources held by the store.
	Close() error
}
