package backoff_adapter

import (
	"context"
	"time"

	"dispatch/pkg/retrier"
	"github.com/cenkalti/backoff/v4"
)

// Retrier экспоненциальные повторы поверх cenkalti/backoff.
type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	attempt := 0
	operation := func() error {
		attempt++
		err := fn(ctx)
		if err != nil && !r.retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	var notify backoff.Notify
	if r.config.Notify != nil {
		notify = func(err error, next time.Duration) {
			r.config.Notify(retrier.Attempt{Number: attempt, Err: err, Next: next})
		}
	}

	return backoff.RetryNotify(operation, backoff.WithContext(r.policy(), ctx), notify)
}

func (r *Retrier) retryable(err error) bool {
	return r.config.ShouldRetry == nil || r.config.ShouldRetry(err)
}

// policy новая политика на каждый вызов, ExponentialBackOff хранит состояние.
func (r *Retrier) policy() backoff.BackOff {
	exponential := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)
	if r.config.MaxRetries == 0 {
		return exponential
	}
	return backoff.WithMaxRetries(exponential, r.config.MaxRetries)
}
