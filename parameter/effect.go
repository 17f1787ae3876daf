package parameter

import (
	"time"
)

// Energy Bridge
const (
	// BridgeDuration is how long the bridge stays active
	BridgeDuration = 3 * time.Second

	// BridgeCooldown is measured from activation, not from the end of the effect
	BridgeCooldown = 3500 * time.Millisecond

	// BridgeParticleCap bounds live particles regardless of tip count
	BridgeParticleCap = 120

	// BridgeParticlesPerTip sets the target population as tips*N before the cap
	BridgeParticlesPerTip = 4

	// BridgeSpawnRatePerTip is particles per second per tip
	BridgeSpawnRatePerTip = 1.2

	// BridgeParticleStartMax bounds the initial parametric position
	BridgeParticleStartMax = 0.4

	// BridgeParticleSpeedMin/Max bound parametric speed per second
	BridgeParticleSpeedMin = 0.35
	BridgeParticleSpeedMax = 1.0

	// BridgeParticleCullT removes particles past the tip
	BridgeParticleCullT = 1.1

	// BridgeStatusEpsilon hides countdowns shorter than this
	BridgeStatusEpsilon = 50 * time.Millisecond
)

// Bridge Visuals
const (
	// BridgeCurveLift raises the quadratic control point by lift*ease world units
	BridgeCurveLift = 80.0

	// BridgeCurveSamples is the tip subset divisor: stride = max(1, tips/N)
	BridgeCurveSamples = 8

	// BridgeCurveSteps is the polyline resolution of one curve
	BridgeCurveSteps = 48
)
