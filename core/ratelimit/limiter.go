package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter spaces out calls to a remote service.
type Limiter interface {
	// Wait blocks until the next call may be issued or ctx is done.
	Wait(ctx context.Context) error
	// Done marks the completion of the call admitted by the last Wait.
	Done()
}

const (
	ModeFixed = "fixed"
	ModeToken = "token"
)

// New builds a limiter for the given mode.
func New(mode string, interval time.Duration) (Limiter, error) {
	if interval < 0 {
		return nil, fmt.Errorf("ratelimit: negative interval %s", interval)
	}
	switch mode {
	case ModeFixed, "":
		return NewMinInterval(interval), nil
	case ModeToken:
		return NewToken(interval, 1), nil
	default:
		return nil, fmt.Errorf("ratelimit: unknown mode %q", mode)
	}
}

// MinInterval enforces a fixed pause between the completion of one call and the
// issue of the next, regardless of how long the call took.
type MinInterval struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// NewMinInterval creates a fixed-delay limiter.
func NewMinInterval(interval time.Duration) *MinInterval {
	return &MinInterval{interval: interval}
}

func (m *MinInterval) Wait(ctx context.Context) error {
	m.mu.Lock()
	last := m.last
	m.mu.Unlock()

	if last.IsZero() {
		return ctx.Err()
	}

	remaining := m.interval - time.Since(last)
	if remaining <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (m *MinInterval) Done() {
	m.mu.Lock()
	m.last = time.Now()
	m.mu.Unlock()
}

// Token is a token-bucket limiter. Calls are spaced from start to start,
// so slow calls do not add to the delay.
type Token struct {
	lim *rate.Limiter
}

// NewToken creates a token-bucket limiter refilling one token per interval.
func NewToken(interval time.Duration, burst int) *Token {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	if burst < 1 {
		burst = 1
	}
	return &Token{lim: rate.NewLimiter(limit, burst)}
}

func (t *Token) Wait(ctx context.Context) error {
	return t.lim.Wait(ctx)
}

func (t *Token) Done() {}
