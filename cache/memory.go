package cache

import (
	"strings"
	"sync"
	"time"
)

type memEntry struct {
	payload   []byte
	expiresAt time.Time
}

// memoryTier is the bounded in-process tier. Entries keep their original
// insertion position on overwrite, and eviction always drops the
// oldest-inserted key. Reads do not reorder; this is not LRU.
type memoryTier struct {
	mu      sync.Mutex
	max     int
	entries map[string]memEntry
	order   []string
}

func newMemoryTier(max int) *memoryTier {
	return &memoryTier{
		max:     max,
		entries: make(map[string]memEntry),
	}
}

// set stores payload under key and returns the key evicted to stay within the
// size cap, if any.
func (m *memoryTier) set(key string, payload []byte, expiresAt time.Time) (evicted string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists {
		m.order = append(m.order, key)
	}
	m.entries[key] = memEntry{payload: payload, expiresAt: expiresAt}

	if len(m.entries) > m.max {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
		return oldest, true
	}
	return "", false
}

// get returns the payload for key if present and unexpired. An expired entry
// is deleted so the caller falls through to the persistent tier.
func (m *memoryTier) get(key string, now time.Time) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, exists := m.entries[key]
	if !exists {
		return nil, false
	}
	if now.After(e.expiresAt) {
		m.deleteLocked(key)
		return nil, false
	}
	return e.payload, true
}

// peek is get without the expiry-delete side effect, for Has.
func (m *memoryTier) peek(key string, now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, exists := m.entries[key]
	return exists && !now.After(e.expiresAt)
}

func (m *memoryTier) delete(key string) {
	m.mu.Lock()
	m.deleteLocked(key)
	m.mu.Unlock()
}

func (m *memoryTier) deletePrefix(prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			m.deleteLocked(key)
		}
	}
}

func (m *memoryTier) clear() {
	m.mu.Lock()
	m.entries = make(map[string]memEntry)
	m.order = m.order[:0]
	m.mu.Unlock()
}

func (m *memoryTier) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *memoryTier) deleteLocked(key string) {
	if _, exists := m.entries[key]; !exists {
		return
	}
	delete(m.entries, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}
