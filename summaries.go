package summarizer

import (
	"context"

	"github.com/negadras/summarizer-go/apperr"
	"github.com/negadras/summarizer-go/cache"
	"github.com/negadras/summarizer-go/retry"
	"github.com/negadras/summarizer-go/session"
)

// Summaries returns one page of the user's summaries, cached per user and
// parameter set. Without a session it serves sample data immediately; while
// offline it falls back to sample data instead of failing.
func (s *Service) Summaries(ctx context.Context, p ListParams) (UserSummariesResponse, error) {
	hash := s.sessions.Hash(ctx)
	if hash == "" {
		s.log.Debug("no session, serving sample summaries")
		return mockSummariesResponse(p.Saved), nil
	}

	return cache.GetOrFetch(ctx, s.cache, summariesKey(hash, p),
		func(ctx context.Context) (UserSummariesResponse, error) {
			return s.fetchSummaries(ctx, p)
		}, summariesTTL)
}

func (s *Service) fetchSummaries(ctx context.Context, p ListParams) (UserSummariesResponse, error) {
	return retry.OfflineFirst(ctx,
		func(ctx context.Context) (UserSummariesResponse, error) {
			return s.backend.ListSummaries(ctx, p)
		},
		func() (UserSummariesResponse, bool) {
			if !s.net.Online() {
				s.log.Info("offline, serving sample summaries")
				return mockSummariesResponse(p.Saved), true
			}
			return UserSummariesResponse{}, false
		},
		s.offlineOpts("summary list fetch"))
}

// Summary returns one summary by id, cached per user.
func (s *Service) Summary(ctx context.Context, id string) (UserSummary, error) {
	hash := s.sessions.Hash(ctx)
	if hash == "" {
		s.log.Debug("no session, serving sample summary", "summary_id", id)
		return mockUserSummary(id), nil
	}

	return cache.GetOrFetch(ctx, s.cache, summaryKey(hash, id),
		func(ctx context.Context) (UserSummary, error) {
			return retry.OfflineFirst(ctx,
				func(ctx context.Context) (UserSummary, error) {
					return s.backend.GetSummary(ctx, id)
				},
				func() (UserSummary, bool) {
					if !s.net.Online() {
						s.log.Info("offline, serving sample summary", "summary_id", id)
						return mockUserSummary(id), true
					}
					return UserSummary{}, false
				},
				s.offlineOpts("summary detail fetch"))
		}, detailTTL)
}

// ToggleSaved saves (saved=true) or unsaves a summary. The cached detail
// entry is flipped optimistically before the remote call and reverted if the
// call ultimately fails. A success invalidates every cached list view for
// the user, since their saved flags are now stale. While offline the action
// is appended to the pending queue and reported as success.
func (s *Service) ToggleSaved(ctx context.Context, summaryID string, saved bool) error {
	token := s.sessions.Token(ctx)
	if token == "" {
		return apperr.New("authentication required", apperr.Options{
			Category:    apperr.CategoryAuthentication,
			Retryable:   apperr.Retry(false),
			UserMessage: "You need to be logged in to save summaries.",
		})
	}
	hash := session.TokenHash(token)

	verb := ActionSave
	if !saved {
		verb = ActionUnsave
	}

	revert := s.applySavedFlag(ctx, hash, summaryID, saved)

	_, err := retry.OfflineFirst(ctx,
		func(ctx context.Context) (bool, error) {
			var err error
			if saved {
				err = s.backend.SaveSummary(ctx, summaryID)
			} else {
				err = s.backend.UnsaveSummary(ctx, summaryID)
			}
			if err != nil {
				return false, err
			}
			if cerr := s.cache.ClearByPrefix(ctx, "user_summaries_"+hash+"_"); cerr != nil {
				s.log.Warn("failed to invalidate summary lists", "err", cerr)
			}
			return true, nil
		},
		func() (bool, bool) {
			if !s.net.Online() {
				s.queueOffline(ctx, verb, summaryID)
				return true, true // optimistic success, replayed later
			}
			return false, false
		},
		s.offlineOpts(verb+" summary"))
	if err != nil {
		revert()
		return apperr.New("failed to "+verb+" summary", apperr.Options{
			Category:    apperr.Classifier{Net: s.net}.Categorize(err),
			Cause:       err,
			UserMessage: "Unable to " + verb + " this summary. Please try again later.",
		})
	}
	return nil
}

// applySavedFlag flips the cached detail entry's saved flag and returns a
// closure restoring the previous value. A cache miss makes both a no-op.
func (s *Service) applySavedFlag(ctx context.Context, hash, summaryID string, saved bool) (revert func()) {
	key := summaryKey(hash, summaryID)

	var cached UserSummary
	ok, err := s.cache.Get(ctx, key, &cached)
	if err != nil || !ok {
		return func() {}
	}

	prev := cached.Saved
	cached.Saved = saved
	if err := s.cache.Set(ctx, key, cached, detailTTL); err != nil {
		s.log.Warn("optimistic update write failed", "summary_id", summaryID, "err", err)
	}
	return func() {
		cached.Saved = prev
		if err := s.cache.Set(ctx, key, cached, detailTTL); err != nil {
			s.log.Warn("optimistic update revert failed", "summary_id", summaryID, "err", err)
		}
	}
}

func (s *Service) queueOffline(ctx context.Context, verb, summaryID string) {
	if s.queue == nil {
		s.log.Warn("no pending queue configured, dropping offline action",
			"action", verb, "summary_id", summaryID)
		return
	}
	act := PendingAction{Action: verb, SummaryID: summaryID}
	if err := s.queue.Append(ctx, act); err != nil {
		s.log.Warn("failed to queue offline action",
			"action", verb, "summary_id", summaryID, "err", err)
		return
	}
	s.log.Info("offline, queued action", "action", verb, "summary_id", summaryID)
}

// ReplayPending applies every queued save/unsave against the backend and
// clears the queue. Individual failures are logged and skipped so one bad
// action cannot wedge the queue. No-op while offline.
func (s *Service) ReplayPending(ctx context.Context) error {
	if s.queue == nil || !s.net.Online() {
		return nil
	}

	actions, err := s.queue.List(ctx)
	if err != nil {
		return err
	}
	if len(actions) == 0 {
		return nil
	}
	s.log.Info("replaying pending summary actions", "count", len(actions))

	for _, a := range actions {
		var err error
		switch a.Action {
		case ActionSave:
			err = s.backend.SaveSummary(ctx, a.SummaryID)
		case ActionUnsave:
			err = s.backend.UnsaveSummary(ctx, a.SummaryID)
		default:
			s.log.Warn("dropping unknown pending action", "action", a.Action)
			continue
		}
		if err != nil {
			s.log.Warn("pending action failed",
				"action", a.Action, "summary_id", a.SummaryID, "err", err)
		}
	}

	return s.queue.Clear(ctx)
}

// PrefetchCommonViews warms the dashboard's list views (recent and saved).
// Best-effort and quiet; no-op without a session.
func (s *Service) PrefetchCommonViews(ctx context.Context) {
	hash := s.sessions.Hash(ctx)
	if hash == "" {
		return
	}

	recent := ListParams{Page: Int(0), Size: Int(5), SortBy: "createdAt", SortOrder: "desc"}
	s.cache.Prefetch(ctx, summariesKey(hash, recent),
		func(ctx context.Context) (any, error) {
			return s.fetchSummaries(ctx, recent)
		}, summariesTTL)

	savedView := ListParams{Page: Int(0), Size: Int(3), Saved: Bool(true)}
	s.cache.Prefetch(ctx, summariesKey(hash, savedView),
		func(ctx context.Context) (any, error) {
			return s.fetchSummaries(ctx, savedView)
		}, summariesTTL)
}

// ClearSummaryCache drops the user's cached list and detail entries. Call
// when data may be stale, e.g. after creating a new summary.
func (s *Service) ClearSummaryCache(ctx context.Context) error {
	hash := s.sessions.Hash(ctx)
	if hash == "" {
		return nil
	}
	if err := s.cache.ClearByPrefix(ctx, "user_summary_"+hash); err != nil {
		return err
	}
	return s.cache.ClearByPrefix(ctx, "user_summaries_"+hash)
}
