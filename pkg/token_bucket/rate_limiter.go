package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// TokenBucket ограничитель скорости: запрос расходует токен,
// токены восстанавливаются со скоростью refillPerSec до предела capacity.
type TokenBucket struct {
	mu           sync.Mutex
	capacity     int
	available    int
	refillPerSec float64
	refilledAt   time.Time
}

func NewTokenBucket(capacity int, refillPerSec float64) *TokenBucket {
	return &TokenBucket{
		capacity:     capacity,
		available:    capacity,
		refillPerSec: refillPerSec,
		refilledAt:   time.Now(),
	}
}

func (b *TokenBucket) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(time.Now())

	if b.available == 0 {
		return false
	}
	b.available--
	return true
}

func (b *TokenBucket) refill(now time.Time) {
	if b.refillPerSec <= 0 {
		return
	}

	elapsed := now.Sub(b.refilledAt).Seconds()
	earned := int(elapsed * b.refillPerSec)
	if earned == 0 {
		return
	}

	b.available += earned
	if b.available > b.capacity {
		b.available = b.capacity
	}

	// метка сдвигается только на учтенные токены, остаток времени не теряется
	b.refilledAt = b.refilledAt.Add(time.Duration(float64(earned) / b.refillPerSec * float64(time.Second)))
}
