// Package retry provides bounded exponential backoff for sink writes.
// Retrying is opt-in hardening: with zero attempts configured the first
// write error fails the run, which is the generator's default contract.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Config defines retry behavior with exponential backoff.
type Config struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	JitterFactor float64 // 0.0-1.0, +/- fraction of the delay
}

// ForWrites returns a retry config suited to transient filesystem errors
// (busy volumes, network mounts). attempts is the number of retries after
// the initial try.
func ForWrites(attempts int) *Config {
	return &Config{
		MaxRetries:   attempts,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
		JitterFactor: 0.1,
	}
}

// applyJitter spreads a delay by +/- jitterFactor of its value.
func applyJitter(delay time.Duration, jitterFactor float64) time.Duration {
	if jitterFactor <= 0 {
		return delay
	}
	jitter := float64(delay) * jitterFactor * (rand.Float64()*2 - 1)
	return time.Duration(float64(delay) + jitter)
}

// Do executes fn, retrying on error up to cfg.MaxRetries times with
// exponential backoff. It returns nil on the first success, the last
// error once retries are exhausted, and respects context cancellation
// during wait periods. A nil cfg means no retries at all.
func Do(ctx context.Context, cfg *Config, fn func() error) error {
	if cfg == nil {
		return fn()
	}

	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt < cfg.MaxRetries {
			select {
			case <-time.After(applyJitter(delay, cfg.JitterFactor)):
				delay = time.Duration(float64(delay) * cfg.Multiplier)
				if delay > cfg.MaxDelay {
					delay = cfg.MaxDelay
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return lastErr
}
