package audio

import (
	"github.com/lixenwraith/abyss/parameter"
)

// SoundType represents one-shot sound effects
type SoundType int

const (
	SoundChime SoundType = iota // Bridge activation
	SoundTick                   // Palette change
	soundTypeCount
)

// String returns the effect name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundChime:
		return "chime"
	case SoundTick:
		return "tick"
	}
	return "unknown"
}

// AudioConfig holds mix settings fixed at startup
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
	HumVolume     float64
}

// DefaultAudioConfig returns the tuned mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundChime: parameter.ChimeVolume,
			SoundTick:  parameter.TickVolume,
		},
		HumVolume: parameter.HumVolume,
	}
}
