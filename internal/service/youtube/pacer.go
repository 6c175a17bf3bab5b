package youtube

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer serializes outbound API calls so that successive permits are at
// least 1s / maxPerSecond apart.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer permitting at most maxPerSecond calls per
// second. Non-positive values fall back to 1.
func NewPacer(maxPerSecond int) *Pacer {
	if maxPerSecond <= 0 {
		maxPerSecond = 1
	}
	interval := time.Second / time.Duration(maxPerSecond)
	return &Pacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Acquire blocks the caller until a permit is available or the context is
// cancelled.
func (p *Pacer) Acquire(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
