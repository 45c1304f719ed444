package summarizer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/negadras/summarizer-go/apperr"
	"github.com/negadras/summarizer-go/cache"
	"github.com/negadras/summarizer-go/online"
	"github.com/negadras/summarizer-go/retry"
	"github.com/negadras/summarizer-go/session"
)

// Response TTLs. Lists churn fastest; public showcase data changes least.
const (
	summariesTTL = time.Minute
	detailTTL    = 2 * time.Minute
	statsTTL     = 2 * time.Minute
	showcaseTTL  = 5 * time.Minute
)

// Config wires a Service. Backend, Cache, and Sessions are required.
type Config struct {
	Backend  Backend
	Cache    *cache.Cache
	Sessions *session.Store

	// Net reports connectivity; nil means always online.
	Net online.Checker

	// Queue persists save/unsave actions taken while offline. Nil disables
	// queueing: offline toggles still report success but are lost.
	Queue *PendingQueue

	// Log defaults to a discard logger.
	Log *slog.Logger
}

// Service exposes the summarization domain operations: cached summary
// listing and detail, optimistic save toggling with offline queueing, user
// stats, and the public showcase feed.
type Service struct {
	backend  Backend
	cache    *cache.Cache
	sessions *session.Store
	net      online.Checker
	queue    *PendingQueue
	log      *slog.Logger
}

func NewService(cfg Config) (*Service, error) {
	if cfg.Backend == nil {
		return nil, fmt.Errorf("summarizer: backend is required")
	}
	if cfg.Cache == nil {
		return nil, fmt.Errorf("summarizer: cache is required")
	}
	if cfg.Sessions == nil {
		return nil, fmt.Errorf("summarizer: session store is required")
	}

	s := &Service{
		backend:  cfg.Backend,
		cache:    cfg.Cache,
		sessions: cfg.Sessions,
		net:      cfg.Net,
		queue:    cfg.Queue,
		log:      cfg.Log,
	}
	if s.net == nil {
		s.net = online.Always{}
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s, nil
}

// Warmup primes the caches after startup or login and drains the offline
// queue. Best-effort: it logs failures and never returns them.
func (s *Service) Warmup(ctx context.Context) {
	if !s.net.Online() {
		s.log.Info("skipping cache warmup while offline")
		return
	}

	if err := s.ReplayPending(ctx); err != nil {
		s.log.Warn("pending action replay failed", "err", err)
	}

	if s.sessions.Token(ctx) != "" {
		s.PrefetchCommonViews(ctx)
		if _, err := s.UserStats(ctx); err != nil {
			s.log.Warn("stats warmup failed", "err", err)
		}
	} else {
		if _, err := s.Showcase(ctx, ShowcaseParams{}); err != nil {
			s.log.Warn("showcase warmup failed", "err", err)
		}
	}
}

// ClearAllCaches wipes every cached response across both tiers. Call on
// logout.
func (s *Service) ClearAllCaches(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

// offlineOpts is the shared retry policy for user-facing fetches.
func (s *Service) offlineOpts(op string) retry.OfflineOptions {
	return retry.OfflineOptions{
		Net: s.net,
		Retry: retry.Options{
			MaxAttempts:   3,
			InitialDelay:  time.Second,
			MaxDelay:      5 * time.Second,
			BackoffFactor: 1.5,
			Class:         apperr.Classifier{Net: s.net},
			OnRetry: func(attempt int, delay time.Duration, err error) {
				s.log.Info("retrying "+op,
					"attempt", attempt,
					"delay", delay,
					"err", err)
			},
		},
	}
}
