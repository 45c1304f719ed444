// Package cache implements a two-tier, TTL-based response cache: a small
// in-process memory tier for intra-session latency and a persistent tier
// (see the store package) that survives restarts.
//
// Components:
//   - store.Store: persistent byte store (file, redis, in-process memory).
//   - codec.Codec: (de)serializes values <-> []byte for the persistent tier.
//   - memory tier: bounded map with insertion-order eviction (reads do not
//     promote; this is deliberately not LRU).
//
// Keys are namespaced with a shared prefix ("cache_" by default) on both
// tiers, which is what enables prefix-scoped bulk eviction and the per-user
// namespace wipe in ClearUserCache.
//
// Entry expiry is lazy: an expired entry is deleted on the next access, never
// swept proactively. The memory tier caps every entry's TTL at MemoryTTLCap
// so stale-but-valid persistent data gets re-validated into memory instead of
// being pinned at the fast tier.
package cache
