// Package retry re-invokes fallible operations with exponential backoff and
// jitter, and composes retries with an offline-first fallback strategy.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/negadras/summarizer-go/apperr"
)

// Options defines retry behavior. Zero values select the defaults.
type Options struct {
	MaxAttempts   int           // default 3
	InitialDelay  time.Duration // default 1s
	MaxDelay      time.Duration // default 10s
	BackoffFactor float64       // default 2.0

	// RetryableStatusCodes defaults to {408, 429, 500, 502, 503, 504}.
	RetryableStatusCodes []int
	// RetryableCategories defaults to {NETWORK, SERVER}.
	RetryableCategories []apperr.Category

	// OnRetry is invoked once per retry, before the backoff sleep, with the
	// 1-based attempt number that just failed and the chosen delay.
	OnRetry func(attempt int, delay time.Duration, err error)

	// Class supplies connectivity-aware categorization for plain errors.
	Class apperr.Classifier
}

var defaultStatusCodes = []int{408, 429, 500, 502, 503, 504}

var defaultCategories = []apperr.Category{apperr.CategoryNetwork, apperr.CategoryServer}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.InitialDelay <= 0 {
		o.InitialDelay = time.Second
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = 10 * time.Second
	}
	if o.BackoffFactor <= 0 {
		o.BackoffFactor = 2.0
	}
	if o.RetryableStatusCodes == nil {
		o.RetryableStatusCodes = defaultStatusCodes
	}
	if o.RetryableCategories == nil {
		o.RetryableCategories = defaultCategories
	}
	return o
}

// Do executes fn up to MaxAttempts times. Attempts are strictly sequential:
// each one settles before the retry decision is made. The backoff sleep
// honors ctx cancellation; the last error is returned after exhaustion.
func Do[T any](ctx context.Context, fn func(context.Context) (T, error), opts Options) (T, error) {
	o := opts.withDefaults()

	var zero T
	var lastErr error

	for attempt := 1; attempt <= o.MaxAttempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if attempt == o.MaxAttempts || !o.shouldRetry(err) {
			return zero, lastErr
		}

		delay := o.backoff(attempt)
		if o.OnRetry != nil {
			o.OnRetry(attempt, delay, err)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	return zero, lastErr
}

// shouldRetry permits a retry when any one holds: the error carries an
// explicit retryable=true flag, its status code is listed, its own category
// is listed, or its classified category is listed.
func (o Options) shouldRetry(err error) bool {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		if appErr.Retryable {
			return true
		}
		if containsInt(o.RetryableStatusCodes, appErr.StatusCode) {
			return true
		}
		if containsCategory(o.RetryableCategories, appErr.Category) {
			return true
		}
	}
	return containsCategory(o.RetryableCategories, o.Class.Categorize(err))
}

func (o Options) backoff(attempt int) time.Duration {
	// attempt is 1-based; jitter is uniform over [0.8, 1.2).
	jitter := 0.8 + rand.Float64()*0.4
	d := float64(o.InitialDelay) * math.Pow(o.BackoffFactor, float64(attempt-1)) * jitter
	if d > float64(o.MaxDelay) {
		d = float64(o.MaxDelay)
	}
	return time.Duration(d)
}

func containsInt(xs []int, x int) bool {
	if x == 0 {
		return false
	}
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func containsCategory(xs []apperr.Category, x apperr.Category) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
