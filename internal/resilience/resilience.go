// Package resilience implements the retry-then-fallback policy applied to
// every external call the service makes. Callers always get a usable value
// back; exhausted retries substitute the typed fallback instead of an error.
package resilience

import (
	"context"
	"log"
	"time"
)

const (
	// DefaultRetries matches the frontend contract: one initial attempt
	// plus two retries.
	DefaultRetries      = 2
	DefaultInitialDelay = time.Second

	backoffMultiplier = 1.5
)

// Result carries the value of a resilient fetch. UsedFallback tells the
// presentation layer to show its degraded-data notice; Err holds the last
// failure in that case and is informational only.
type Result[T any] struct {
	Value        T
	UsedFallback bool
	Attempts     int
	Err          error
}

// Options tunes one Fetch call. The zero value of Retries means zero
// retries; pass a negative value to get DefaultRetries. A non-positive
// InitialDelay selects DefaultInitialDelay. Validate, when set, runs on
// every successful return value and a failure counts exactly like an error
// from the operation itself. Sleep exists for tests.
type Options[T any] struct {
	Name         string
	Retries      int
	InitialDelay time.Duration
	Validate     func(T) error
	Sleep        func(ctx context.Context, d time.Duration) error
}

// Fetch attempts op, retrying with exponential backoff (multiplier 1.5,
// no jitter) until retries are exhausted, then returns fallback(). It never
// returns an error to the caller: the contract is "always render something".
// Context cancellation stops the loop early, also yielding the fallback.
func Fetch[T any](
	ctx context.Context,
	op func(ctx context.Context) (T, error),
	fallback func() T,
	opts Options[T],
) Result[T] {
	retries := opts.Retries
	if retries < 0 {
		retries = DefaultRetries
	}
	delay := opts.InitialDelay
	if delay <= 0 {
		delay = DefaultInitialDelay
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}
	name := opts.Name
	if name == "" {
		name = "fetch"
	}

	var lastErr error
	attempts := 0
	for attempt := 0; attempt <= retries; attempt++ {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		attempts++
		v, err := op(ctx)
		if err == nil && opts.Validate != nil {
			err = opts.Validate(v)
		}
		if err == nil {
			return Result[T]{Value: v, Attempts: attempts}
		}
		lastErr = err

		if attempt == retries {
			break
		}
		log.Printf("%s: attempt %d/%d failed: %v (retrying in %s)", name, attempts, retries+1, err, delay)
		if err := sleep(ctx, delay); err != nil {
			lastErr = err
			break
		}
		delay = time.Duration(float64(delay) * backoffMultiplier)
	}

	log.Printf("%s: exhausted after %d attempt(s), serving fallback: %v", name, attempts, lastErr)
	return Result[T]{Value: fallback(), UsedFallback: true, Attempts: attempts, Err: lastErr}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
