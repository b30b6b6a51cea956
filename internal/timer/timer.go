// Package timer provides the one-shot countdown behind the quiz reminder.
package timer

import (
	"sync"
	"time"
)

// Countdown is a single restartable one-shot timer. Start arms it, Stop
// disarms it, and the expiry callback of a superseded or stopped countdown
// is never invoked. The callback runs on the timer goroutine; callers that
// need the UI thread marshal themselves.
type Countdown struct {
	mu         sync.Mutex
	generation uint64
	pending    *time.Timer
}

func NewCountdown() *Countdown {
	return &Countdown{}
}

// Start begins a countdown of d, invoking onExpire exactly once on expiry.
// Starting while a countdown is already running supersedes it: the earlier
// callback is discarded and timing restarts from this call.
func (c *Countdown) Start(d time.Duration, onExpire func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		c.pending.Stop()
	}

	c.generation++
	gen := c.generation

	c.pending = time.AfterFunc(d, func() {
		if !c.claim(gen) {
			return
		}
		onExpire()
	})
}

// claim marks the countdown expired if gen is still current. A stale timer
// callback racing Stop or a restart loses here and does nothing.
func (c *Countdown) claim(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || c.pending == nil {
		return false
	}
	c.pending = nil
	return true
}

// Stop cancels a pending countdown. It reports whether a countdown was
// actually running; after Stop returns the callback will not fire.
func (c *Countdown) Stop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return false
	}
	c.pending.Stop()
	c.pending = nil
	c.generation++
	return true
}

// Running reports whether an expiry is still pending.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}
