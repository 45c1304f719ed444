package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/negadras/summarizer-go/apperr"
)

// fastOpts keeps test runtime negligible while exercising the real backoff path.
func fastOpts() Options {
	return Options{
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	v, err := Do(context.Background(), func(context.Context) (int, error) {
		calls++
		return 42, nil
	}, fastOpts())
	if err != nil || v != 42 || calls != 1 {
		t.Fatalf("v=%d calls=%d err=%v", v, calls, err)
	}
}

func TestDoExhaustsAttemptsOnNetworkError(t *testing.T) {
	calls := 0
	opts := fastOpts()
	opts.MaxAttempts = 2
	_, err := Do(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, errors.New("network unreachable")
	}, opts)
	if calls != 2 {
		t.Fatalf("fn called %d times, want 2", calls)
	}
	if err == nil || err.Error() != "network unreachable" {
		t.Fatalf("err = %v, want last error", err)
	}
}

func TestDoStopsImmediatelyOnNonRetryable(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, apperr.New("validation failed", apperr.Options{
			Category:  apperr.CategoryClient,
			Retryable: apperr.Retry(false),
		})
	}, fastOpts())
	if calls != 1 {
		t.Fatalf("non-retryable error retried: %d calls", calls)
	}
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("original error lost: %v", err)
	}
}

func TestDoRetryableStatusCodeOverridesCategory(t *testing.T) {
	calls := 0
	opts := fastOpts()
	opts.MaxAttempts = 2
	_, _ = Do(context.Background(), func(context.Context) (int, error) {
		calls++
		// CLIENT category would not retry, but 429 is a listed status code.
		return 0, apperr.New("rate limited", apperr.Options{
			Category:   apperr.CategoryClient,
			StatusCode: 429,
			Retryable:  apperr.Retry(false),
		})
	}, opts)
	if calls != 2 {
		t.Fatalf("listed status code should retry: %d calls", calls)
	}
}

func TestDoInvokesOnRetryOncePerRetry(t *testing.T) {
	type retryEvent struct {
		attempt int
		delay   time.Duration
	}
	var events []retryEvent

	opts := fastOpts()
	opts.MaxAttempts = 3
	opts.OnRetry = func(attempt int, delay time.Duration, err error) {
		events = append(events, retryEvent{attempt, delay})
	}

	_, _ = Do(context.Background(), func(context.Context) (int, error) {
		return 0, errors.New("server error")
	}, opts)

	if len(events) != 2 {
		t.Fatalf("OnRetry fired %d times, want 2", len(events))
	}
	for i, e := range events {
		if e.attempt != i+1 {
			t.Errorf("event %d attempt = %d", i, e.attempt)
		}
		if e.delay <= 0 || e.delay > opts.MaxDelay {
			t.Errorf("event %d delay %v outside (0, %v]", i, e.delay, opts.MaxDelay)
		}
	}
}

func TestDoBackoffGrowsAndCaps(t *testing.T) {
	var delays []time.Duration
	opts := Options{
		MaxAttempts:   5,
		InitialDelay:  time.Millisecond,
		MaxDelay:      4 * time.Millisecond,
		BackoffFactor: 2,
		OnRetry: func(_ int, d time.Duration, _ error) {
			delays = append(delays, d)
		},
	}
	_, _ = Do(context.Background(), func(context.Context) (int, error) {
		return 0, errors.New("network flake")
	}, opts)

	if len(delays) != 4 {
		t.Fatalf("got %d delays", len(delays))
	}
	for i, d := range delays {
		// jitter is in [0.8, 1.2): bound each delay by the jittered envelope.
		base := float64(time.Millisecond) * float64(int(1)<<i)
		lo := time.Duration(base * 0.8)
		if lo > opts.MaxDelay {
			lo = opts.MaxDelay
		}
		hi := time.Duration(base * 1.2)
		if hi > opts.MaxDelay {
			hi = opts.MaxDelay
		}
		if d < lo || d > hi {
			t.Errorf("delay %d = %v, want within [%v, %v]", i, d, lo, hi)
		}
	}
}

func TestDoHonorsContextCancelDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	opts := Options{
		MaxAttempts:  3,
		InitialDelay: time.Hour, // would hang without cancellation
	}
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := Do(ctx, func(context.Context) (int, error) {
		calls++
		return 0, errors.New("network flake")
	}, opts)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d", calls)
	}
}
