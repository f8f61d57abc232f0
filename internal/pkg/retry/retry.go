package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultBaseDelay is the first backoff, doubled on every attempt.
const DefaultBaseDelay = 200 * time.Millisecond

var ErrRetryExceeded = errors.New("retry exceeded")

type permanentError struct {
	err error
}

func (e permanentError) Error() string { return e.err.Error() }

func (e permanentError) Unwrap() error { return e.err }

// Permanent marks err so Do returns it without retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return permanentError{err: err}
}

// Policy controls how Do retries.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Name       string
}

// Do calls fn until it succeeds, returns a permanent error, or MaxRetries is spent.
// Backoff between attempts is BaseDelay * 2^attempt.
func Do(ctx context.Context, policy Policy, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		var permanent permanentError
		if errors.As(err, &permanent) {
			return permanent.err
		}

		lastErr = err
		slog.ErrorContext(ctx, "provider call failed",
			slog.String("provider", policy.Name),
			slog.Int("attempt", attempt+1),
			slog.Any("error", err))

		if attempt == policy.MaxRetries {
			break
		}

		backoff := policy.BaseDelay * time.Duration(1<<attempt)
		slog.InfoContext(ctx, "retrying with exponential backoff",
			slog.String("provider", policy.Name),
			slog.Duration("backoff", backoff),
			slog.Int("next_attempt", attempt+2))

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrRetryExceeded, policy.MaxRetries+1, lastErr)
}
