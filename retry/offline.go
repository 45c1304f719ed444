package retry

import (
	"context"

	"github.com/negadras/summarizer-go/online"
)

// OfflineOptions tune OfflineFirst. The zero value treats the device as
// online and uses default retry behavior.
type OfflineOptions struct {
	Net   online.Checker
	Retry Options

	// ForceRefresh skips the offline fallback short-circuit and always
	// attempts the network.
	ForceRefresh bool
}

// OfflineFirst produces a value even when the network is unavailable or
// exhausted:
//
//   - offline and not forced: the fallback is consulted first and returned
//     when it yields a value, without touching the network;
//   - otherwise fetch runs through the retry executor;
//   - when retries are exhausted the fallback may still swallow the failure;
//     only a fallback miss lets the original fetch error propagate.
//
// fallback must be synchronous and side-effect-light (typically a cached or
// mock read); it is never retried.
func OfflineFirst[T any](
	ctx context.Context,
	fetch func(context.Context) (T, error),
	fallback func() (T, bool),
	opts OfflineOptions,
) (T, error) {
	net := opts.Net
	if net == nil {
		net = online.Always{}
	}

	if !net.Online() && !opts.ForceRefresh {
		if v, ok := fallback(); ok {
			return v, nil
		}
	}

	v, err := Do(ctx, fetch, opts.Retry)
	if err == nil {
		return v, nil
	}

	if fb, ok := fallback(); ok {
		return fb, nil
	}
	return v, err
}
