package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/arith/internal/arith/metrics"
	"github.com/aussiebroadwan/arith/internal/arith/store"
	"github.com/aussiebroadwan/arith/pkg/slogx"
	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds how store.ErrUnavailable failures are retried.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxElapsed      time.Duration
}

// DefaultRetryPolicy retries at most three times within two seconds.
var DefaultRetryPolicy = RetryPolicy{
	MaxRetries:      3,
	InitialInterval: 50 * time.Millisecond,
	MaxElapsed:      2 * time.Second,
}

func (p RetryPolicy) orDefault() RetryPolicy {
	if p == (RetryPolicy{}) {
		return DefaultRetryPolicy
	}
	return p
}

// withRetry runs fn, retrying only transient store failures. When retries
// run out the error is wrapped with ErrStorageUnavailable.
func withRetry[T any](ctx context.Context, p RetryPolicy, op string, fn func() (T, error)) (T, error) {
	p = p.orDefault()

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = p.InitialInterval
	eb.MaxElapsedTime = p.MaxElapsed
	b := backoff.WithContext(backoff.WithMaxRetries(eb, p.MaxRetries), ctx)

	v, err := backoff.RetryNotifyWithData(func() (T, error) {
		v, err := fn()
		if err != nil && !errors.Is(err, store.ErrUnavailable) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}, b, func(err error, next time.Duration) {
		metrics.RecordStoreRetry()
		slogx.FromContext(ctx).Warn("store unavailable, retrying",
			slog.String("op", op),
			slog.Duration("backoff", next),
			slog.Any("error", err),
		)
	})
	if err != nil && errors.Is(err, store.ErrUnavailable) {
		return v, fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
	}
	return v, err
}
