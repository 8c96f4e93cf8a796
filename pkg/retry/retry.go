package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds the exponential backoff of one operation.
type Policy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

var Default = Policy{
	MaxRetries:      4,
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     5 * time.Second,
	MaxElapsedTime:  30 * time.Second,
}

// Permanent marks an error that must not be retried, such as a 4xx reply.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(p.InitialInterval),
		backoff.WithMaxInterval(p.MaxInterval),
		backoff.WithMaxElapsedTime(p.MaxElapsedTime),
	), p.MaxRetries)
	return backoff.WithContext(b, ctx)
}

// Do runs op until it succeeds, fails permanently or the policy gives up.
func (p Policy) Do(ctx context.Context, op func(context.Context) error) error {
	var lastErr, permErr error
	err := backoff.Retry(func() error {
		lastErr = op(ctx)
		var perm *backoff.PermanentError
		if errors.As(lastErr, &perm) {
			permErr = perm.Err
		}
		return lastErr
	}, p.backOff(ctx))
	switch {
	case err == nil:
		return nil
	case permErr != nil:
		return permErr
	case lastErr != nil:
		return fmt.Errorf("retry: gave up: %w", lastErr)
	}
	return fmt.Errorf("retry: gave up: %w", err)
}

// Value is Do for operations that produce a result.
func Value[T any](ctx context.Context, p Policy, op func(context.Context) (T, error)) (T, error) {
	var result T
	err := p.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = op(ctx)
		return err
	})
	return result, err
}
