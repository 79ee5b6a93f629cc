package services

import (
	"math"
	"time"
)

// RetryPolicy defines exponential backoff for notification delivery.
type RetryPolicy struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// Delay returns the backoff before the next attempt (1-based) with clamping.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = time.Second
	}
	if p.BackoffFactor <= 0 {
		p.BackoffFactor = 2
	}

	d := time.Duration(float64(p.InitialDelay) * math.Pow(p.BackoffFactor, float64(attempt-1)))
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	if d <= 0 {
		d = time.Second
	}
	return d
}
