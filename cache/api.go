package cache

import (
	"time"

	"github.com/negadras/summarizer-go/cache/codec"
	"github.com/negadras/summarizer-go/session"
	"github.com/negadras/summarizer-go/store"
)

const (
	// DefaultPrefix namespaces every key the cache writes, on both tiers.
	// Prefix-scoped bulk eviction depends on it being applied consistently.
	DefaultPrefix = "cache_"

	DefaultTTL       = 5 * time.Minute
	DefaultMemoryTTL = time.Minute // memory-tier cap; shorter than DefaultTTL on purpose
	DefaultMaxMemory = 100
)

// Options tune the cache. Only Store is required; others have sensible
// defaults.
type Options struct {
	// Required
	Store store.Store // persistent tier

	Codec    codec.Codec    // value serialization; nil => codec.JSON
	Logger   Logger         // if nil, NopLogger is used
	Hooks    Hooks          // if nil, NopHooks is used
	Sessions *session.Store // enables ClearUserCache; nil makes it a no-op

	Prefix           string        // key namespace; "" => DefaultPrefix
	TTL              time.Duration // default entry TTL; 0 => DefaultTTL
	MemoryTTLCap     time.Duration // memory-tier TTL ceiling; 0 => DefaultMemoryTTL
	MaxMemoryEntries int           // memory-tier size cap; 0 => DefaultMaxMemory

	// Clock overrides the time source. Tests use it to simulate expiry.
	Clock func() time.Time
}

func New(opts Options) (*Cache, error) {
	return newCache(opts)
}
