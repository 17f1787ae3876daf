// Package config holds the construction-time parameters of a simulation
// Values start from the tuned defaults in parameter and may be overridden by a TOML file read once at startup
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/abyss/effect"
	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/physics"
)

// Config is the full parameter record
type Config struct {
	Core    CoreConfig    `toml:"core"`
	Chain   ChainConfig   `toml:"chain"`
	Anchor  AnchorConfig  `toml:"anchor"`
	Camera  CameraConfig  `toml:"camera"`
	Effect  EffectConfig  `toml:"effect"`
	Ambient AmbientConfig `toml:"ambient"`
	Engine  EngineConfig  `toml:"engine"`
}

// CoreConfig tunes the central body
type CoreConfig struct {
	Radius    float64 `toml:"radius"` // Also the chain attach radius
	Stiffness float64 `toml:"stiffness"`
	Drag      float64 `toml:"drag"`
	Chains    int     `toml:"chains"`
}

// ChainConfig tunes every chain
type ChainConfig struct {
	Segments        int     `toml:"segments"`
	Iterations      int     `toml:"iterations"`
	SegmentLength   float64 `toml:"segment_length"`
	AirDamping      float64 `toml:"air_damping"`
	BendStiffness   float64 `toml:"bend_stiffness"`
	CollisionPad    float64 `toml:"collision_pad"`
	WaveAmpIdle     float64 `toml:"wave_amp_idle"`
	WaveAmpActive   float64 `toml:"wave_amp_active"`
	WaveSpeedIdle   float64 `toml:"wave_speed_idle"`
	WaveSpeedActive float64 `toml:"wave_speed_active"`
}

// AnchorConfig tunes anchor rotation and spacing
type AnchorConfig struct {
	Friction            float64 `toml:"friction"`
	CoreInfluence       float64 `toml:"core_influence"`
	TensionInfluence    float64 `toml:"tension_influence"`
	MaxAngularVelocity  float64 `toml:"max_angular_velocity"`
	TargetGain          float64 `toml:"target_gain"`
	RepulsionStrength   float64 `toml:"repulsion_strength"`
	MinSeparationFactor float64 `toml:"min_separation_factor"`
	RingFriction        float64 `toml:"ring_friction"`
}

// CameraConfig tunes the perspective projector
type CameraConfig struct {
	Focal    float64 `toml:"focal"`
	Distance float64 `toml:"distance"`
}

// EffectConfig tunes the energy bridge; times are seconds
type EffectConfig struct {
	Duration        float64 `toml:"duration"`
	Cooldown        float64 `toml:"cooldown"`
	ParticleCap     int     `toml:"particle_cap"`
	SpawnRatePerTip float64 `toml:"spawn_rate_per_tip"`
}

// AmbientConfig toggles background layers
type AmbientConfig struct {
	Stars          bool    `toml:"stars"`
	Ripples        bool    `toml:"ripples"`
	RippleLifespan float64 `toml:"ripple_lifespan"`
}

// EngineConfig tunes the frame loop
type EngineConfig struct {
	FPS     int  `toml:"fps"`
	Palette int  `toml:"palette"`
	HUD     bool `toml:"hud"`
}

// Default returns the tuned parameters
func Default() *Config {
	return &Config{
		Core: CoreConfig{
			Radius:    parameter.CoreRadius,
			Stiffness: parameter.CoreStiffness,
			Drag:      parameter.CoreDrag,
			Chains:    parameter.ChainCount,
		},
		Chain: ChainConfig{
			Segments:        parameter.ChainSegmentCount,
			Iterations:      parameter.ChainIterations,
			SegmentLength:   parameter.ChainSegmentLength,
			AirDamping:      parameter.ChainAirDamping,
			BendStiffness:   parameter.ChainBendStiffness,
			CollisionPad:    parameter.ChainCollisionPad,
			WaveAmpIdle:     parameter.ChainWaveAmpIdle,
			WaveAmpActive:   parameter.ChainWaveAmpActive,
			WaveSpeedIdle:   parameter.ChainWaveSpeedIdle,
			WaveSpeedActive: parameter.ChainWaveSpeedActive,
		},
		Anchor: AnchorConfig{
			Friction:            parameter.AnchorFriction,
			CoreInfluence:       parameter.AnchorCoreInfluence,
			TensionInfluence:    parameter.AnchorTensionInfluence,
			MaxAngularVelocity:  parameter.AnchorMaxAngularVelocity,
			TargetGain:          parameter.AnchorTargetGain,
			RepulsionStrength:   parameter.AnchorRepulsionStrength,
			MinSeparationFactor: parameter.AnchorMinSeparationFactor,
			RingFriction:        parameter.RingFriction,
		},
		Camera: CameraConfig{
			Focal:    parameter.CameraFocal,
			Distance: parameter.CameraDistance,
		},
		Effect: EffectConfig{
			Duration:        parameter.BridgeDuration.Seconds(),
			Cooldown:        parameter.BridgeCooldown.Seconds(),
			ParticleCap:     parameter.BridgeParticleCap,
			SpawnRatePerTip: parameter.BridgeSpawnRatePerTip,
		},
		Ambient: AmbientConfig{
			Stars:          true,
			Ripples:        true,
			RippleLifespan: parameter.RippleLifespan.Seconds(),
		},
		Engine: EngineConfig{
			FPS: parameter.FrameRate,
			HUD: true,
		},
	}
}

// Load overlays the TOML file at path onto the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("decode %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every out-of-range parameter
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Core.Radius > 0, "core.radius must be positive, got %g", c.Core.Radius)
	check(c.Core.Chains >= 1, "core.chains must be at least 1, got %d", c.Core.Chains)
	check(c.Core.Drag > 0 && c.Core.Drag <= 1, "core.drag must be in (0,1], got %g", c.Core.Drag)
	check(c.Core.Stiffness >= 0, "core.stiffness must not be negative, got %g", c.Core.Stiffness)

	check(c.Chain.Segments >= 2, "chain.segments must be at least 2, got %d", c.Chain.Segments)
	check(c.Chain.Iterations >= 1, "chain.iterations must be at least 1, got %d", c.Chain.Iterations)
	check(c.Chain.SegmentLength > 0, "chain.segment_length must be positive, got %g", c.Chain.SegmentLength)
	check(c.Chain.AirDamping > 0 && c.Chain.AirDamping <= 1, "chain.air_damping must be in (0,1], got %g", c.Chain.AirDamping)
	check(c.Chain.BendStiffness >= 0 && c.Chain.BendStiffness <= 1, "chain.bend_stiffness must be in [0,1], got %g", c.Chain.BendStiffness)
	check(c.Chain.CollisionPad >= 0, "chain.collision_pad must not be negative, got %g", c.Chain.CollisionPad)

	check(c.Anchor.Friction > 0 && c.Anchor.Friction <= 1, "anchor.friction must be in (0,1], got %g", c.Anchor.Friction)
	check(c.Anchor.RingFriction > 0 && c.Anchor.RingFriction <= 1, "anchor.ring_friction must be in (0,1], got %g", c.Anchor.RingFriction)
	check(c.Anchor.MaxAngularVelocity > 0, "anchor.max_angular_velocity must be positive, got %g", c.Anchor.MaxAngularVelocity)
	check(c.Anchor.MinSeparationFactor >= 0 && c.Anchor.MinSeparationFactor <= 1, "anchor.min_separation_factor must be in [0,1], got %g", c.Anchor.MinSeparationFactor)

	check(c.Camera.Distance > 0, "camera.distance must be positive, got %g", c.Camera.Distance)
	check(c.Camera.Focal > 0, "camera.focal must be positive, got %g", c.Camera.Focal)

	check(c.Effect.Duration > 0, "effect.duration must be positive, got %g", c.Effect.Duration)
	check(c.Effect.Cooldown >= 0, "effect.cooldown must not be negative, got %g", c.Effect.Cooldown)
	check(c.Effect.ParticleCap >= 1, "effect.particle_cap must be at least 1, got %d", c.Effect.ParticleCap)
	check(c.Effect.SpawnRatePerTip >= 0, "effect.spawn_rate_per_tip must not be negative, got %g", c.Effect.SpawnRatePerTip)

	check(c.Ambient.RippleLifespan > 0, "ambient.ripple_lifespan must be positive, got %g", c.Ambient.RippleLifespan)
	check(c.Engine.FPS >= 1 && c.Engine.FPS <= 240, "engine.fps must be in [1,240], got %d", c.Engine.FPS)

	return errors.Join(errs...)
}

// ChainParams returns the physics tuning with configured overrides applied
func (c *Config) ChainParams() physics.ChainParams {
	p := physics.DefaultChainParams()
	p.Segments = c.Chain.Segments
	p.Iterations = c.Chain.Iterations
	p.SegmentLength = c.Chain.SegmentLength
	p.AttachRadius = c.Core.Radius
	p.AirDamping = c.Chain.AirDamping
	p.BendStiffness = c.Chain.BendStiffness
	p.CollisionPad = c.Chain.CollisionPad
	p.WaveAmpIdle = c.Chain.WaveAmpIdle
	p.WaveAmpActive = c.Chain.WaveAmpActive
	p.WaveSpeedIdle = c.Chain.WaveSpeedIdle
	p.WaveSpeedActive = c.Chain.WaveSpeedActive

	p.Anchor.Friction = c.Anchor.Friction
	p.Anchor.CoreInfluence = c.Anchor.CoreInfluence
	p.Anchor.TensionInfluence = c.Anchor.TensionInfluence
	p.Anchor.MaxAngularVelocity = c.Anchor.MaxAngularVelocity
	p.Anchor.TargetGain = c.Anchor.TargetGain
	p.Anchor.RepulsionStrength = c.Anchor.RepulsionStrength
	p.Anchor.MinSeparationFactor = c.Anchor.MinSeparationFactor
	return p
}

// RingParams returns the anchor ring tuning
func (c *Config) RingParams() physics.RingParams {
	p := physics.DefaultRingParams()
	p.Friction = c.Anchor.RingFriction
	return p
}

// BridgeParams returns the energy bridge tuning
func (c *Config) BridgeParams() effect.Params {
	p := effect.DefaultParams()
	p.Duration = c.Effect.Duration
	p.Cooldown = c.Effect.Cooldown
	p.ParticleCap = c.Effect.ParticleCap
	p.SpawnRatePerTip = c.Effect.SpawnRatePerTip
	return p
}

// FrameInterval returns the render tick period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(c.Engine.FPS, 1))
}
