package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/negadras/summarizer-go/cache/codec"
	"github.com/negadras/summarizer-go/internal/wire"
	"github.com/negadras/summarizer-go/session"
	"github.com/negadras/summarizer-go/store"
)

type Cache struct {
	kv       store.Store
	codec    codec.Codec
	log      Logger
	hooks    Hooks
	sessions *session.Store

	prefix     string
	defaultTTL time.Duration
	memTTLCap  time.Duration
	mem        *memoryTier
	now        func() time.Time
}

func newCache(opts Options) (*Cache, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("cache: store is required")
	}

	c := &Cache{
		kv:       opts.Store,
		sessions: opts.Sessions,
		prefix:   coalesce(opts.Prefix, DefaultPrefix),
	}

	// defaults
	if opts.Codec != nil {
		c.codec = opts.Codec
	} else {
		c.codec = codec.JSON{}
	}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.defaultTTL = coalesce(opts.TTL, DefaultTTL)
	c.memTTLCap = coalesce(opts.MemoryTTLCap, DefaultMemoryTTL)
	c.mem = newMemoryTier(coalesce(opts.MaxMemoryEntries, DefaultMaxMemory))

	if opts.Clock != nil {
		c.now = opts.Clock
	} else {
		c.now = time.Now
	}

	return c, nil
}

func (c *Cache) Close(ctx context.Context) error {
	c.mem.clear()
	return c.kv.Close(ctx)
}

// Set writes value to both tiers with the given TTL (0 => default TTL).
// The memory entry expires after min(ttl, MemoryTTLCap). A persistent-tier
// write failure degrades the entry to memory-only and never fails the call.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.set(ctx, key, value, ttl, false)
}

// SetMemoryOnly is Set without the persistent write.
func (c *Cache) SetMemoryOnly(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.set(ctx, key, value, ttl, true)
}

func (c *Cache) set(ctx context.Context, key string, value any, ttl time.Duration, memoryOnly bool) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	payload, err := c.codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %q: %w", key, err)
	}

	now := c.now()
	k := c.storageKey(key)

	memTTL := ttl
	if memTTL > c.memTTLCap {
		memTTL = c.memTTLCap
	}
	if evicted, ok := c.mem.set(k, payload, now.Add(memTTL)); ok {
		c.hooks.MemoryEvicted(evicted)
		c.log.Debug("memory tier evicted oldest entry", Fields{"key": evicted})
	}

	if memoryOnly {
		return nil
	}

	entry := wire.EncodeEntry(now.Add(ttl).UnixMilli(), payload)
	if err := c.kv.Set(ctx, k, entry); err != nil {
		// Quota analog: degrade to memory-only, never fail the caller.
		c.hooks.PersistWriteFailed(k, err)
		c.log.Warn("persistent cache write failed", Fields{"key": key, "err": err})
	}
	return nil
}

// Get decodes the cached value for key into dest (a pointer). It checks the
// memory tier first, then the persistent tier; a persistent hit re-populates
// memory with the remaining TTL capped at MemoryTTLCap. Expired and corrupt
// entries are deleted on the way through.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	now := c.now()
	k := c.storageKey(key)

	if payload, ok := c.mem.get(k, now); ok {
		if err := c.codec.Unmarshal(payload, dest); err != nil {
			c.mem.delete(k)
			return false, fmt.Errorf("cache: decode %q: %w", key, err)
		}
		return true, nil
	}

	raw, ok, err := c.kv.Get(ctx, k)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	expMilli, payload, err := wire.DecodeEntry(raw)
	if err != nil {
		_ = c.kv.Delete(ctx, k) // self-heal corrupt
		c.hooks.SelfHeal(k, "decode")
		return false, nil
	}
	if now.UnixMilli() > expMilli {
		_ = c.kv.Delete(ctx, k)
		c.hooks.SelfHeal(k, "expired")
		return false, nil
	}
	if err := c.codec.Unmarshal(payload, dest); err != nil {
		_ = c.kv.Delete(ctx, k) // self-heal
		c.hooks.SelfHeal(k, "value_decode")
		return false, nil
	}

	// Warm the memory tier; never beyond the entry's own expiry.
	memExp := now.Add(c.memTTLCap)
	if e := time.UnixMilli(expMilli); e.Before(memExp) {
		memExp = e
	}
	if evicted, ok := c.mem.set(k, payload, memExp); ok {
		c.hooks.MemoryEvicted(evicted)
	}
	return true, nil
}

// Has reports whether key exists and is unexpired, preferring the memory
// tier. Unlike Get it never mutates either tier.
func (c *Cache) Has(ctx context.Context, key string) bool {
	now := c.now()
	k := c.storageKey(key)

	if c.mem.peek(k, now) {
		return true
	}

	raw, ok, err := c.kv.Get(ctx, k)
	if err != nil || !ok {
		return false
	}
	expMilli, _, err := wire.DecodeEntry(raw)
	if err != nil {
		return false
	}
	return now.UnixMilli() <= expMilli
}

// Remove deletes key from both tiers unconditionally.
func (c *Cache) Remove(ctx context.Context, key string) error {
	k := c.storageKey(key)
	c.mem.delete(k)
	return c.kv.Delete(ctx, k)
}

// Clear wipes the whole memory tier and every persistent key carrying the
// cache prefix.
func (c *Cache) Clear(ctx context.Context) error {
	c.mem.clear()
	return c.deletePersistent(ctx, c.prefix)
}

// ClearByPrefix deletes, from both tiers, every entry whose key starts with
// prefix (relative to the cache namespace).
func (c *Cache) ClearByPrefix(ctx context.Context, prefix string) error {
	full := c.storageKey(prefix)
	c.mem.deletePrefix(full)
	return c.deletePersistent(ctx, full)
}

// ClearUserCache clears the per-user namespace derived from the current auth
// token. No-op when no session store is wired or no token is present.
func (c *Cache) ClearUserCache(ctx context.Context) error {
	if c.sessions == nil {
		return nil
	}
	hash := c.sessions.Hash(ctx)
	if hash == "" {
		return nil
	}
	return c.ClearByPrefix(ctx, "user_"+hash)
}

// Prefetch warms key if it is not already cached. Best-effort: failures are
// logged and reported through hooks, never returned.
func (c *Cache) Prefetch(ctx context.Context, key string, fetch func(context.Context) (any, error), ttl time.Duration) {
	if c.Has(ctx, key) {
		return
	}
	v, err := fetch(ctx)
	if err != nil {
		c.hooks.PrefetchFailed(c.storageKey(key), err)
		c.log.Warn("prefetch failed", Fields{"key": key, "err": err})
		return
	}
	if err := c.Set(ctx, key, v, ttl); err != nil {
		c.log.Warn("prefetch store failed", Fields{"key": key, "err": err})
	}
}

// Fetch returns the cached value for key, or invokes fetch, stores the result
// with ttl, and decodes it into dest. Primary entry point for services that
// cannot use the generic GetOrFetch.
func (c *Cache) Fetch(ctx context.Context, key string, dest any, fetch func(context.Context) (any, error), ttl time.Duration) error {
	if ok, err := c.Get(ctx, key, dest); err != nil {
		return err
	} else if ok {
		return nil
	}
	v, err := fetch(ctx)
	if err != nil {
		return err
	}
	if err := c.Set(ctx, key, v, ttl); err != nil {
		return err
	}
	// Round-trip through the codec so dest sees exactly what later cache
	// reads will see.
	payload, err := c.codec.Marshal(v)
	if err != nil {
		return err
	}
	return c.codec.Unmarshal(payload, dest)
}

// GetOrFetch is the typed convenience wrapper around Cache.Fetch.
func GetOrFetch[T any](ctx context.Context, c *Cache, key string, fetch func(context.Context) (T, error), ttl time.Duration) (T, error) {
	var out T
	if ok, err := c.Get(ctx, key, &out); err != nil {
		return out, err
	} else if ok {
		return out, nil
	}
	v, err := fetch(ctx)
	if err != nil {
		return out, err
	}
	if err := c.Set(ctx, key, v, ttl); err != nil {
		return out, err
	}
	return v, nil
}

func (c *Cache) storageKey(key string) string { return c.prefix + key }

func (c *Cache) deletePersistent(ctx context.Context, prefix string) error {
	keys, err := c.kv.Keys(ctx, prefix)
	if err != nil {
		return err
	}
	var firstErr error
	for _, k := range keys {
		if err := c.kv.Delete(ctx, k); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
