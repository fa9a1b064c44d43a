package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// ShouldRetryFunc решает, имеет ли смысл повторять операцию после ошибки.
type ShouldRetryFunc func(error) bool

// Config параметры экспоненциального повтора.
// Нулевой ShouldRetry означает повтор любой ошибки.
type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64
	ShouldRetry     ShouldRetryFunc
}
