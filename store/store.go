// Package store defines the persistent key-value tier used by the cache and
// session packages.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Set for a key (no
// prepended/appended metadata, no re-encoding, no mutation).
//
// Set is allowed to fail (quota, disk, transport); callers treat the store as
// best-effort and degrade to memory-only operation.
package store

import "context"

// Store is a minimal persistent byte store with key enumeration.
// Must be safe for concurrent use.
type Store interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value, replacing any previous one. May fail under pressure
	// (the localStorage-quota analog); callers must tolerate that.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key (best-effort; deleting a missing key is not an error).
	Delete(ctx context.Context, key string) error

	// Keys returns every stored key starting with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases resources.
	Close(ctx context.Context) error
}
