// Package storage defines the key-value collaborator the record stores persist through.
package storage

import "context"

// Adapter is a persistent key-value store namespaced by string keys
type Adapter interface {
	// Get returns the value for key and whether it was present
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	// Clear removes every key of the adapter's namespace
	Clear(ctx context.Context) error
}
