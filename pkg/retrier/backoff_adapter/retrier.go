package backoff_adapter

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"fleet/pkg/retrier"
)

// Retrier адаптер cenkalti/backoff под интерфейс retrier.Retrier.
type Retrier struct {
	cfg retrier.Config
}

func New(cfg retrier.Config) *Retrier {
	return &Retrier{cfg: cfg}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	policy := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.cfg.InitialInterval),
		backoff.WithMaxInterval(r.cfg.MaxInterval),
		backoff.WithMaxElapsedTime(r.cfg.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.cfg.Randomization),
		backoff.WithMultiplier(r.cfg.Multiplier),
	)

	attempt := func() error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if r.cfg.ShouldRetry != nil && !r.cfg.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(attempt, backoff.WithContext(policy, ctx))
}
