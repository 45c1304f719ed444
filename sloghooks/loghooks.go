// Package sloghooks adapts cache.Hooks onto a *slog.Logger with optional
// sampling, so hot-path cache events do not flood the log.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/negadras/summarizer-go/cache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery uint64
	EvictEvery    uint64
	// Optional key redactor. Defaults to SHA-256 prefix, since cache keys
	// embed the per-user token hash.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
	evictCtr    atomic.Uint64
}

var _ cache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("cache.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) PersistWriteFailed(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("cache.persist_write_failed",
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) MemoryEvicted(storageKey string) {
	if h.l == nil || !sample(h.opts.EvictEvery, &h.evictCtr) {
		return
	}
	h.l.Debug("cache.memory_evicted",
		"key", h.redact(storageKey))
}

func (h *Hooks) PrefetchFailed(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Info("cache.prefetch_failed",
		"key", h.redact(storageKey),
		"err", err)
}
