package retry

import (
	"context"
	"errors"
	"testing"

	"github.com/negadras/summarizer-go/online"
)

func offlineNet() online.Checker  { return online.Func(func() bool { return false }) }
func onlineNet() online.Checker   { return online.Always{} }
func noFallback() (string, bool)  { return "", false }
func someFallback() (string, bool) { return "cached", true }

func failingFetch(calls *int) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		*calls++
		return "", errors.New("network unreachable")
	}
}

func TestOfflineWithFallbackSkipsNetwork(t *testing.T) {
	calls := 0
	v, err := OfflineFirst(context.Background(), failingFetch(&calls), someFallback, OfflineOptions{
		Net:   offlineNet(),
		Retry: fastOpts(),
	})
	if err != nil || v != "cached" {
		t.Fatalf("v=%q err=%v", v, err)
	}
	if calls != 0 {
		t.Fatalf("fetch invoked %d times while offline with fallback", calls)
	}
}

func TestOfflineForceRefreshStillFetches(t *testing.T) {
	calls := 0
	fetch := func(context.Context) (string, error) {
		calls++
		return "fresh", nil
	}
	v, err := OfflineFirst(context.Background(), fetch, someFallback, OfflineOptions{
		Net:          offlineNet(),
		Retry:        fastOpts(),
		ForceRefresh: true,
	})
	if err != nil || v != "fresh" || calls != 1 {
		t.Fatalf("v=%q calls=%d err=%v", v, calls, err)
	}
}

func TestExhaustedRetriesFallBack(t *testing.T) {
	calls := 0
	opts := fastOpts()
	opts.MaxAttempts = 2
	v, err := OfflineFirst(context.Background(), failingFetch(&calls), someFallback, OfflineOptions{
		Net:   onlineNet(),
		Retry: opts,
	})
	if err != nil || v != "cached" {
		t.Fatalf("fallback should swallow the failure: v=%q err=%v", v, err)
	}
	if calls != 2 {
		t.Fatalf("fetch attempts = %d, want 2", calls)
	}
}

func TestExhaustedRetriesWithoutFallbackPropagate(t *testing.T) {
	calls := 0
	opts := fastOpts()
	opts.MaxAttempts = 2
	_, err := OfflineFirst(context.Background(), failingFetch(&calls), noFallback, OfflineOptions{
		Net:   onlineNet(),
		Retry: opts,
	})
	if err == nil || err.Error() != "network unreachable" {
		t.Fatalf("original fetch error must propagate, got %v", err)
	}
}

func TestOfflineWithoutFallbackStillTriesNetwork(t *testing.T) {
	// Offline but no fallback value: the network attempt is all we have.
	fetch := func(context.Context) (string, error) { return "lucky", nil }
	v, err := OfflineFirst(context.Background(), fetch, noFallback, OfflineOptions{
		Net:   offlineNet(),
		Retry: fastOpts(),
	})
	if err != nil || v != "lucky" {
		t.Fatalf("v=%q err=%v", v, err)
	}
}

func TestFallbackIsNeverRetried(t *testing.T) {
	fallbackCalls := 0
	fallback := func() (string, bool) {
		fallbackCalls++
		return "cached", true
	}
	opts := fastOpts()
	opts.MaxAttempts = 3
	calls := 0
	_, _ = OfflineFirst(context.Background(), failingFetch(&calls), fallback, OfflineOptions{
		Net:   onlineNet(),
		Retry: opts,
	})
	if fallbackCalls != 1 {
		t.Fatalf("fallback called %d times, want 1", fallbackCalls)
	}
}
