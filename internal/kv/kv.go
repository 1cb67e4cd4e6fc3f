// Package kv defines the synchronous key-value primitive the note store
// persists itself into, together with the available backends. Values are
// opaque strings; one key holds one whole serialized collection.
package kv

import "context"

// Store is the persistence primitive: blocking get/set/delete by string
// key. A missing key is not an error; Get reports presence separately.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases any held resources.
	Close() error
}
