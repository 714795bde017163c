// Package retry runs an operation again on failure, with a delay
// between attempts.
package retry

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultAttempts = 3
	DefaultDelay    = time.Second
)

type (
	config struct {
		attempts  int
		delay     time.Duration
		backoff   float64
		retryable func(error) bool
	}

	Option func(*config)
)

// Attempts sets the maximum number of attempts, including the first.
func Attempts(n int) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// Delay sets the pause before each re-attempt.
func Delay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// Backoff multiplies the delay by factor after every failed attempt.
func Backoff(factor float64) Option {
	return func(c *config) {
		c.backoff = factor
	}
}

// If restricts retrying to errors the predicate accepts; any other
// error is returned immediately.
func If(predicate func(error) bool) Option {
	return func(c *config) {
		c.retryable = predicate
	}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err so that Do returns it immediately without
// further attempts.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Do runs fn until it succeeds, the attempts are exhausted, fn
// returns a permanent or non-retryable error, or ctx is canceled.
// On exhaustion the last error is returned wrapped with the attempt
// count.
func Do(ctx context.Context, fn func(ctx context.Context) error, options ...Option) error {
	cfg := config{
		attempts: DefaultAttempts,
		delay:    DefaultDelay,
		backoff:  1,
	}
	for _, o := range options {
		o(&cfg)
	}
	if cfg.attempts < 1 {
		cfg.attempts = 1
	}

	var lastErr error
	delay := cfg.delay

	for attempt := 1; attempt <= cfg.attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "retry interrupted")
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		if cfg.retryable != nil && !cfg.retryable(err) {
			return err
		}

		lastErr = err
		if attempt == cfg.attempts {
			break
		}

		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return errors.Wrap(ctx.Err(), "retry interrupted")
			}
		}
		delay = time.Duration(float64(delay) * cfg.backoff)
	}

	return errors.Wrapf(lastErr, "after %d attempts", cfg.attempts)
}
