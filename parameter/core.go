package parameter

// Central Body
const (
	// CoreRadius is the orb radius in world units, also the chain attach radius
	CoreRadius = 60.0

	// CoreStiffness is the per-frame fraction of pointer displacement added to core velocity while dragging
	CoreStiffness = 0.02

	// CoreDrag is the per-frame velocity retention of the core
	CoreDrag = 0.85

	// ChainCount is the number of appendages anchored around the core
	ChainCount = 30
)
