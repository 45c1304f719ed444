package cache

// Hooks are lightweight callbacks for high-signal cache events.
// Implementations MUST be cheap and non-blocking; the cache calls them on
// hot paths.
type Hooks interface {
	// A persistent entry was deleted by the cache on read.
	// reason ∈ {"decode", "expired", "value_decode"}
	SelfHeal(storageKey, reason string)

	// The persistent tier rejected a write (quota/disk/transport).
	// The memory write has already succeeded; the entry degrades to
	// memory-only.
	PersistWriteFailed(storageKey string, err error)

	// The memory tier hit its size cap and dropped its oldest-inserted entry.
	MemoryEvicted(storageKey string)

	// A best-effort prefetch failed.
	PrefetchFailed(storageKey string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)          {}
func (NopHooks) PersistWriteFailed(string, error) {}
func (NopHooks) MemoryEvicted(string)             {}
func (NopHooks) PrefetchFailed(string, error)     {}
