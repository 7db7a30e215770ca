package ratelimit

import (
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

const (
	// ShortWindowDuration and ShortWindowMax bound contact message submissions.
	ShortWindowDuration = 15 * time.Minute
	ShortWindowMax      = 3

	// DailyWindowDuration bounds testimonial submissions. DefaultMaxPerDay is
	// used when a caller passes a non-positive maxPerDay.
	DailyWindowDuration = 24 * time.Hour
	DefaultMaxPerDay    = 150
)

// Limiter owns the short-window and daily stores. The two never share
// state, even for identical identifiers.
type Limiter struct {
	short  *Window
	daily  *Window
	clock  clock.Clock
	logger lager.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewLimiter creates both stores. Create one per process and pass it to the
// handlers that need it.
func NewLimiter(clk clock.Clock, logger lager.Logger) *Limiter {
	logger = logger.Session("ratelimit")
	return &Limiter{
		short:  NewWindow("short-window", ShortWindowDuration, clk, logger),
		daily:  NewWindow("daily", DailyWindowDuration, clk, logger),
		clock:  clk,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// CheckRateLimit allows at most ShortWindowMax requests per identifier in any
// ShortWindowDuration.
func (l *Limiter) CheckRateLimit(identifier string) Result {
	return l.short.Check(identifier, ShortWindowMax)
}

// CheckDailyRateLimit allows at most maxPerDay requests per identifier in any
// DailyWindowDuration.
func (l *Limiter) CheckDailyRateLimit(identifier string, maxPerDay int) Result {
	if maxPerDay <= 0 {
		maxPerDay = DefaultMaxPerDay
	}
	return l.daily.Check(identifier, maxPerDay)
}

// Short exposes the short-window store, e.g. for metrics.
func (l *Limiter) Short() *Window { return l.short }

// Daily exposes the daily store.
func (l *Limiter) Daily() *Window { return l.daily }

// StartSweeper periodically drops stale keys from both stores until Stop is
// called. A non-positive interval leaves pruning purely access driven.
func (l *Limiter) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := l.clock.NewTicker(interval)
	l.logger.Info("sweeper-started", lager.Data{"interval": interval.String()})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C():
				l.short.Sweep()
				l.daily.Sweep()
			case <-l.stopCh:
				return
			}
		}
	}()
}

// Stop ends the sweeper goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}
