// Package retry runs an operation again when it fails with an error the caller
// considers transient. There is no delay between attempts.
package retry

import (
	"context"
	"errors"
	"fmt"
)

// ErrExhausted is wrapped into the error returned once every attempt failed
// with a retryable error.
var ErrExhausted = errors.New("retries exhausted")

// Policy describes how many times an operation is retried and which errors
// qualify. MaxRetries counts retries after the first attempt, so an operation
// runs at most MaxRetries+1 times.
type Policy struct {
	MaxRetries int

	// ShouldRetry reports whether err is transient. A nil ShouldRetry retries
	// nothing.
	ShouldRetry func(err error) bool

	// OnRetry is called before each retry with the 1-based retry number and the
	// error that triggered it.
	OnRetry func(ctx context.Context, retry int, err error)
}

// Do runs op under the policy. A non-retryable error is returned unchanged.
// Cancellation of ctx stops further attempts and returns ctx.Err().
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, ctxErr
		}
		if p.ShouldRetry == nil || !p.ShouldRetry(err) {
			return zero, err
		}
		if attempt >= p.MaxRetries {
			return zero, fmt.Errorf("%w after %d attempts: %w", ErrExhausted, attempt+1, err)
		}

		if p.OnRetry != nil {
			p.OnRetry(ctx, attempt+1, err)
		}
	}
}
