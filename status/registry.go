package status

import "sync/atomic"

// Metric keys published by the frame loop and read by the HUD
const (
	KeyFrame      = "engine.frame"
	KeyFPS        = "engine.fps"
	KeyPaused     = "engine.paused"
	KeyChains     = "world.chains"
	KeyParticles  = "bridge.particles"
	KeyCooldown   = "bridge.cooldown"
	KeyStatusLine = "hud.status"
	KeyMuted      = "audio.muted"
)

// Registry is the central metrics facade
// Publishers cache pointers during init; the frame loop writes directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
