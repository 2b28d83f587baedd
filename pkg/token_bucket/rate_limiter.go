package token_bucket

import (
	"math"
	"sync"
	"time"
)

// TokenBucket пропускает до capacity запросов подряд и восстанавливает refillRate токенов в секунду.
// Дробные токены накапливаются между вызовами.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
}

type Option func(*TokenBucket)

// WithClock подменяет источник времени, используется в тестах.
func WithClock(now func() time.Time) Option {
	return func(t *TokenBucket) {
		t.now = now
	}
}

func NewTokenBucket(capacity int, refillRate float64, opts ...Option) *TokenBucket {
	tb := &TokenBucket{
		capacity:   float64(max(capacity, 0)),
		refillRate: math.Max(refillRate, 0),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(tb)
	}

	tb.tokens = tb.capacity
	tb.lastRefill = tb.now()
	return tb
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// RetryAfter время до появления следующего токена, 0 если токен уже есть.
// При нулевой скорости пополнения возвращает 0: ждать бессмысленно.
func (t *TokenBucket) RetryAfter() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 || t.refillRate == 0 || t.capacity < 1 {
		return 0
	}
	missing := 1 - t.tokens
	return time.Duration(math.Ceil(missing / t.refillRate * float64(time.Second)))
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = math.Min(t.capacity, t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}
