package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenLimiter enforces a tokens-per-minute budget for LLM calls. The window
// resets a minute after the first consumption in that window.
type TokenLimiter struct {
	mu          sync.Mutex
	maxPerMin   int
	used        int
	windowStart time.Time
}

// NewTokenLimiter creates a limiter with the given tokens-per-minute budget.
func NewTokenLimiter(maxPerMinute int) *TokenLimiter {
	return &TokenLimiter{maxPerMin: maxPerMinute}
}

// GetRemaining returns the tokens still available in the current window.
func (t *TokenLimiter) GetRemaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resetIfExpired()
	return t.maxPerMin - t.used
}

// Wait blocks until n tokens can be consumed, or the context is done.
func (t *TokenLimiter) Wait(ctx context.Context, n int) error {
	for {
		t.mu.Lock()
		t.resetIfExpired()
		if t.used+n <= t.maxPerMin || n > t.maxPerMin {
			// Oversized requests are admitted alone rather than blocking forever.
			t.used += n
			t.mu.Unlock()
			return nil
		}
		wait := time.Until(t.windowStart.Add(time.Minute))
		t.mu.Unlock()

		if wait <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (t *TokenLimiter) resetIfExpired() {
	now := time.Now()
	if t.windowStart.IsZero() || now.Sub(t.windowStart) >= time.Minute {
		t.windowStart = now
		t.used = 0
	}
}
