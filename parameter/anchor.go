package parameter

// Rotating Anchor
const (
	// AnchorFriction is the per-frame angular velocity retention
	AnchorFriction = 0.9

	// AnchorCoreInfluence scales core tangential speed into anchor drive
	AnchorCoreInfluence = 0.6

	// AnchorTensionInfluence scales first-segment tangential pull into anchor drive
	AnchorTensionInfluence = 0.15

	// AnchorMaxAngularVelocity clamps anchor spin in rad/s
	AnchorMaxAngularVelocity = 6.0

	// AnchorTargetGain pulls angular velocity toward baseAngle+ring offset per frame
	AnchorTargetGain = 0.1

	// AnchorRepulsionStrength pushes angular velocity away from encroaching neighbors
	AnchorRepulsionStrength = 0.5

	// AnchorMinSeparationFactor is the minimum separation as a fraction of even spacing 2π/N
	AnchorMinSeparationFactor = 0.8
)

// Anchor Ring
const (
	RingFriction           = 0.9
	RingMaxAngularVelocity = 6.0
)
