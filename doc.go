// Package summarizer is the client SDK for the article-summarization
// backend: summary listing and detail, save/unsave, user stats, and the
// public showcase, all served through a two-tier response cache with
// retry and offline-first fallbacks.
//
// The interesting machinery lives in the subpackages (cache, retry, apperr,
// store); this package wires them to the HTTP contract and owns the cache-key
// scheme, TTL policy, and mock fallback payloads.
package summarizer
