package status

import (
	"sync/atomic"
	"time"
)

// FrameMeter counts presented frames and publishes the rate once per window
type FrameMeter struct {
	window time.Duration
	start  time.Time
	count  int

	fps   *AtomicFloat
	frame *atomic.Int64
}

// NewFrameMeter binds a meter to the registry's frame and fps metrics
func NewFrameMeter(reg *Registry, window time.Duration, now time.Time) *FrameMeter {
	return &FrameMeter{
		window: window,
		start:  now,
		fps:    reg.Floats.Get(KeyFPS),
		frame:  reg.Ints.Get(KeyFrame),
	}
}

// Tick records one frame presented at now
func (m *FrameMeter) Tick(now time.Time) {
	m.frame.Add(1)
	m.count++
	if elapsed := now.Sub(m.start); elapsed >= m.window {
		m.fps.Set(float64(m.count) / elapsed.Seconds())
		m.count = 0
		m.start = now
	}
}
