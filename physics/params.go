package physics

import (
	"github.com/lixenwraith/abyss/parameter"
)

// AnchorParams tunes the rotating anchor of a single chain
type AnchorParams struct {
	Friction            float64 // Per-frame angular velocity retention
	CoreInfluence       float64
	TensionInfluence    float64
	MaxAngularVelocity  float64 // rad/s
	TargetGain          float64 // Pull toward baseAngle + ring offset
	RepulsionStrength   float64
	MinSeparationFactor float64 // Fraction of even spacing 2π/N
}

// ChainParams is the construction-time tuning shared by every chain
type ChainParams struct {
	Segments      int
	Iterations    int
	SegmentLength float64
	AttachRadius  float64

	AirDamping     float64
	BendStiffness  float64
	CollisionPad   float64
	RootCompliance float64
	TrailingPush   float64

	LagPrimary   float64
	LagSecondary float64

	WaveAmpIdle     float64
	WaveAmpActive   float64
	WaveSpeedIdle   float64
	WaveSpeedActive float64
	WavePhaseOffset float64

	EnvelopeRoot    float64
	EnvelopeTip     float64
	MotionGainBase  float64
	MotionGainSlope float64
	MotionGainMax   float64

	SeedMax     float64
	ZBiasBase   float64
	ZBiasJitter float64

	Anchor AnchorParams
}

// RingParams tunes the shared anchor ring
type RingParams struct {
	Friction           float64
	MaxAngularVelocity float64
}

// DefaultChainParams returns the tuned defaults
func DefaultChainParams() ChainParams {
	return ChainParams{
		Segments:      parameter.ChainSegmentCount,
		Iterations:    parameter.ChainIterations,
		SegmentLength: parameter.ChainSegmentLength,
		AttachRadius:  parameter.CoreRadius,

		AirDamping:     parameter.ChainAirDamping,
		BendStiffness:  parameter.ChainBendStiffness,
		CollisionPad:   parameter.ChainCollisionPad,
		RootCompliance: parameter.ChainRootCompliance,
		TrailingPush:   parameter.ChainCollisionTrailingPush,

		LagPrimary:   parameter.ChainLagPrimary,
		LagSecondary: parameter.ChainLagSecondary,

		WaveAmpIdle:     parameter.ChainWaveAmpIdle,
		WaveAmpActive:   parameter.ChainWaveAmpActive,
		WaveSpeedIdle:   parameter.ChainWaveSpeedIdle,
		WaveSpeedActive: parameter.ChainWaveSpeedActive,
		WavePhaseOffset: parameter.ChainWavePhaseOffset,

		EnvelopeRoot:    parameter.ChainEnvelopeRoot,
		EnvelopeTip:     parameter.ChainEnvelopeTip,
		MotionGainBase:  parameter.ChainMotionGainBase,
		MotionGainSlope: parameter.ChainMotionGainSlope,
		MotionGainMax:   parameter.ChainMotionGainMax,

		SeedMax:     parameter.ChainSeedMax,
		ZBiasBase:   parameter.ChainZBiasBase,
		ZBiasJitter: parameter.ChainZBiasJitter,

		Anchor: AnchorParams{
			Friction:            parameter.AnchorFriction,
			CoreInfluence:       parameter.AnchorCoreInfluence,
			TensionInfluence:    parameter.AnchorTensionInfluence,
			MaxAngularVelocity:  parameter.AnchorMaxAngularVelocity,
			TargetGain:          parameter.AnchorTargetGain,
			RepulsionStrength:   parameter.AnchorRepulsionStrength,
			MinSeparationFactor: parameter.AnchorMinSeparationFactor,
		},
	}
}

// DefaultRingParams returns the tuned ring defaults
func DefaultRingParams() RingParams {
	return RingParams{
		Friction:           parameter.RingFriction,
		MaxAngularVelocity: parameter.RingMaxAngularVelocity,
	}
}
