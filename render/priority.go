package render

// RenderPriority determines render order. Lower values render first
// Chain edges behind the core, the core, and edges in front must stay in this relative order
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityRipple
	PriorityChainBack
	PriorityCore
	PriorityChainFront
	PriorityBridge
	PriorityUI
)
