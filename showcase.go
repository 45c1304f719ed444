package summarizer

import (
	"context"

	"github.com/negadras/summarizer-go/cache"
)

// Showcase returns the public showcase feed, cached per parameter set. It
// needs no session. Fetch failures fall back to sample data, uncached, so
// real responses take over as soon as the backend recovers.
func (s *Service) Showcase(ctx context.Context, p ShowcaseParams) (ShowcaseResponse, error) {
	v, err := cache.GetOrFetch(ctx, s.cache, showcaseKey(p),
		func(ctx context.Context) (ShowcaseResponse, error) {
			return s.backend.Showcase(ctx, p)
		}, showcaseTTL)
	if err != nil {
		s.log.Warn("showcase fetch failed, serving sample showcase", "err", err)
		return mockShowcaseResponse(), nil
	}
	return v, nil
}

// ClearShowcaseCache drops every cached showcase page.
func (s *Service) ClearShowcaseCache(ctx context.Context) error {
	return s.cache.ClearByPrefix(ctx, "showcase_")
}
