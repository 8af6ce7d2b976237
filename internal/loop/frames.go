// internal/loop/frames.go
package loop

import (
	"context"
	"time"
)

// FrameSource paces the driver. Next blocks until the next frame is due and
// returns the time that passed since the previous one.
type FrameSource interface {
	Next(ctx context.Context) (time.Duration, error)
}

// Ticker delivers frames in real time.
type Ticker struct {
	ticker *time.Ticker
	last   time.Time
}

func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{
		ticker: time.NewTicker(interval),
		last:   time.Now(),
	}
}

func (t *Ticker) Next(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case now := <-t.ticker.C:
		dt := now.Sub(t.last)
		t.last = now
		return dt, nil
	}
}

// Stop releases the underlying ticker.
func (t *Ticker) Stop() {
	t.ticker.Stop()
}

// Fixed hands out the same step without waiting, so a whole match can be
// simulated as fast as the CPU allows.
type Fixed struct {
	Step time.Duration
}

func (f Fixed) Next(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return f.Step, nil
}
