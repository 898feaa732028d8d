package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttle paces evaluations during large range scans so a multi-year search
// does not monopolize the host. A nil Throttle or a zero rate means no pacing.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a throttle allowing evalsPerSecond evaluations with the
// given burst. A non-positive rate disables pacing.
func NewThrottle(evalsPerSecond float64, burst int) *Throttle {
	if evalsPerSecond <= 0 {
		return &Throttle{}
	}
	if burst <= 0 {
		burst = 1
	}
	return &Throttle{limiter: rate.NewLimiter(rate.Limit(evalsPerSecond), burst)}
}

// Wait blocks until the next evaluation is allowed or the context is done.
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil || t.limiter == nil {
		return ctx.Err()
	}
	return t.limiter.Wait(ctx)
}

// Allow reports whether an evaluation may proceed without waiting.
func (t *Throttle) Allow() bool {
	if t == nil || t.limiter == nil {
		return true
	}
	return t.limiter.Allow()
}
