// Package ratelimit provides per-identifier sliding-window request limits
// for the public submission endpoints.
package ratelimit

import (
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// Result is the outcome of a single check. RetryAfterSeconds is only set
// when the request was rejected.
type Result struct {
	Allowed           bool `json:"allowed"`
	RetryAfterSeconds int  `json:"retryAfterSeconds,omitempty"`
}

// Window keeps, per key, the timestamps (unix millis, oldest first) of the
// accepted requests that still fall inside a trailing window. Stale
// timestamps are pruned when the key is accessed and a key is dropped as
// soon as its log becomes empty.
type Window struct {
	mu       sync.Mutex
	name     string
	windowMs int64
	clock    clock.Clock
	logger   lager.Logger
	hits     map[string][]int64
}

// NewWindow returns an empty window store of the given length.
func NewWindow(name string, window time.Duration, clk clock.Clock, logger lager.Logger) *Window {
	return &Window{
		name:     name,
		windowMs: window.Milliseconds(),
		clock:    clk,
		logger:   logger.Session(name),
		hits:     make(map[string][]int64),
	}
}

// Name returns the label the window was created with.
func (w *Window) Name() string { return w.name }

// Check records a request for key if fewer than limit requests were accepted
// inside the window. Otherwise it reports how many seconds remain until the
// oldest accepted request leaves the window.
func (w *Window) Check(key string, limit int) Result {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now().UnixMilli()
	hits := w.prune(key, now)

	if len(hits) >= limit {
		oldest := now
		if len(hits) > 0 {
			oldest = hits[0]
		}
		return Result{Allowed: false, RetryAfterSeconds: retryAfter(oldest, w.windowMs, now)}
	}

	w.hits[key] = append(hits, now)
	return Result{Allowed: true}
}

// Sweep prunes every key and drops the ones left empty. It returns the
// number of keys removed.
func (w *Window) Sweep() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now().UnixMilli()
	removed := 0
	for key := range w.hits {
		if w.prune(key, now) == nil {
			removed++
		}
	}
	if removed > 0 {
		w.logger.Debug("swept-keys", lager.Data{"removed": removed, "remaining": len(w.hits)})
	}
	return removed
}

// Len returns the number of keys currently tracked.
func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.hits)
}

// prune drops timestamps at least one window old. Must be called with w.mu
// held. A nil return means the key is no longer tracked.
func (w *Window) prune(key string, now int64) []int64 {
	hits, ok := w.hits[key]
	if !ok {
		return nil
	}

	i := 0
	for i < len(hits) && now-hits[i] >= w.windowMs {
		i++
	}
	if i == len(hits) {
		delete(w.hits, key)
		return nil
	}
	if i > 0 {
		hits = append(hits[:0], hits[i:]...)
		w.hits[key] = hits
	}
	return hits
}

// retryAfter is ceil((oldest+window-now)/1000) seconds, never below 1.
func retryAfter(oldest, windowMs, now int64) int {
	remaining := oldest + windowMs - now
	secs := remaining / 1000
	if remaining%1000 > 0 {
		secs++
	}
	if secs < 1 {
		return 1
	}
	return int(secs)
}
