package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out successive external requests
type Pacer interface {
	// Wait blocks until the next request may be issued
	Wait(ctx context.Context) error
	// Reset restores the pacer to its initial state
	Reset()
}

// FixedInterval paces requests at one per interval with no bursting.
// This is deliberately not adaptive: a constant gap between calls is
// the only throttling the search service needs.
type FixedInterval struct {
	interval time.Duration
	limiter  *rate.Limiter
}

// NewFixedInterval creates a pacer that allows one request per interval
func NewFixedInterval(interval time.Duration) *FixedInterval {
	return &FixedInterval{
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until the interval since the previous request has elapsed,
// or the context is cancelled
func (f *FixedInterval) Wait(ctx context.Context) error {
	return f.limiter.Wait(ctx)
}

// Reset discards pacing state so the next request proceeds immediately
func (f *FixedInterval) Reset() {
	f.limiter = rate.NewLimiter(rate.Every(f.interval), 1)
}

// Interval returns the configured gap between requests
func (f *FixedInterval) Interval() time.Duration {
	return f.interval
}
