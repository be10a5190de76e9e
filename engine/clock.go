package engine

import (
	"time"

	"github.com/lixenwraith/starfall/parameter"
)

// Clock measures real frame deltas, clamped so stalls never fast-forward the game
// Paused time is never reported as a delta
type Clock struct {
	provider TimeProvider
	last     time.Time
	paused   bool
}

// NewClock creates a clock reading from provider
func NewClock(provider TimeProvider) *Clock {
	return &Clock{provider: provider, last: provider.Now()}
}

// Delta returns time since the previous call, clamped to MaxFrameDelta
func (c *Clock) Delta() time.Duration {
	now := c.provider.Now()
	if c.paused {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > parameter.MaxFrameDelta {
		return parameter.MaxFrameDelta
	}
	return dt
}

// Pause stops delta accumulation
func (c *Clock) Pause() {
	c.paused = true
}

// Resume restarts measuring from now
func (c *Clock) Resume() {
	c.paused = false
	c.last = c.provider.Now()
}

// Paused reports the pause state
func (c *Clock) Paused() bool {
	return c.paused
}
