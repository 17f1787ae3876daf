package engine

import (
	"time"

	"github.com/lixenwraith/abyss/parameter"
)

// FrameClock measures wall time between frames and converts it to a bounded simulation step
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	maxDelta float64

	// Wall time spent in steps that were clamped away
	dropped time.Duration
}

// NewFrameClock starts a clock at the provider's current time
func NewFrameClock(provider TimeProvider) *FrameClock {
	if provider == nil {
		provider = MonotonicTimeProvider{}
	}
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: parameter.MaxFrameDelta,
	}
}

// Tick returns seconds since the previous tick, clamped to [0, MaxFrameDelta]
// A suspended process resumes with one capped step instead of a burst
func (c *FrameClock) Tick() float64 {
	now := c.provider.Now()
	elapsed := now.Sub(c.last)
	c.last = now

	dt := elapsed.Seconds()
	if dt <= 0 {
		return 0
	}
	if dt > c.maxDelta {
		c.dropped += elapsed - time.Duration(c.maxDelta*float64(time.Second))
		return c.maxDelta
	}
	return dt
}

// Dropped returns the cumulative wall time discarded by clamping
func (c *FrameClock) Dropped() time.Duration {
	return c.dropped
}
