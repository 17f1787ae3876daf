package parameter

// Chain Geometry
const (
	// ChainSegmentCount is the number of points per chain including the pinned root
	ChainSegmentCount = 30

	// ChainSegmentLength is the rest length between adjacent points
	ChainSegmentLength = 10.0
)

// Chain Solver
const (
	// ChainIterations is the relaxation passes per frame, fewer is looser
	ChainIterations = 4

	// ChainAirDamping is the per-frame Verlet velocity retention, higher trails longer
	ChainAirDamping = 0.995

	// ChainBendStiffness is the blend factor toward the bend target per pass
	ChainBendStiffness = 0.08

	// ChainCollisionPad keeps free points this far outside the attach radius
	ChainCollisionPad = 2.5

	// ChainRootCompliance is the share of correction applied to the first free point against the pinned root
	ChainRootCompliance = 0.6

	// ChainCollisionTrailingPush is the share of an edge intrusion applied to the root-side point
	ChainCollisionTrailingPush = 0.2
)

// Lag Injection
// Fraction of anchor displacement since last frame added to the first two free points
const (
	ChainLagPrimary   = 0.35
	ChainLagSecondary = 0.22
)

// Traveling Wave
const (
	ChainWaveAmpIdle     = 0.18
	ChainWaveAmpActive   = 0.33
	ChainWaveSpeedIdle   = 2.0
	ChainWaveSpeedActive = 4.8
	ChainWavePhaseOffset = 0.45

	// ChainEnvelopeRoot/Tip scale the wave from root to tip
	ChainEnvelopeRoot = 0.6
	ChainEnvelopeTip  = 1.25

	// ChainMotionGain* map anchor tangential speed to a wave gain in [Base, Max]
	ChainMotionGainBase  = 0.8
	ChainMotionGainSlope = 0.6
	ChainMotionGainMax   = 1.6

	// ChainSeedMax bounds the per-chain random phase seed
	ChainSeedMax = 100.0
)

// Out-of-plane Bias
// Per-chain bias is drawn once in [Base, Base+Jitter)
const (
	ChainZBiasBase   = 0.35
	ChainZBiasJitter = 0.15
)
