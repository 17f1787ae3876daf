package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/abyss/parameter"
)

// SoundManager owns the mix: one-shot effects and the bridge hum feed a mixer behind a master volume
type SoundManager struct {
	mu     sync.Mutex
	cfg    *AudioConfig
	mixer  *beep.Mixer
	master *effects.Volume
	hum    *beep.Ctrl

	muted       bool
	initialized bool
	speakerOpen bool

	// Guards streamer mutation against the playback goroutine; no-ops until a speaker is attached
	lock   func()
	unlock func()
}

// NewSoundManager creates a sound manager; nothing plays until Initialize
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		mixer:  mixer,
		master: newVolume(mixer, cfg.MasterVolume),
		lock:   func() {},
		unlock: func() {},
	}
}

// Initialize opens the speaker and starts streaming the mix
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.lock, sm.unlock = speaker.Lock, speaker.Unlock
	sm.speakerOpen = true
	sm.initialized = true
	return nil
}

// attach marks the manager live without a speaker; the caller pulls samples from Output
func (sm *SoundManager) attach() {
	sm.mu.Lock()
	sm.initialized = true
	sm.mu.Unlock()
}

// Output returns the master streamer
func (sm *SoundManager) Output() beep.Streamer {
	return sm.master
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	if sm.hum != nil {
		sm.hum.Streamer = nil
		sm.hum = nil
	}
	sm.mixer.Clear()
	sm.unlock()

	if sm.speakerOpen {
		speaker.Clear()
	}
	sm.initialized = false
}

// Play queues a one-shot effect
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}

	sm.lock()
	sm.mixer.Add(s)
	sm.unlock()
}

// PlayBridgeChime plays the bridge activation chime
func (sm *SoundManager) PlayBridgeChime() {
	sm.Play(SoundChime)
}

// PlayTick plays the palette change tick
func (sm *SoundManager) PlayTick() {
	sm.Play(SoundTick)
}

// StartHum begins the bridge drone, no-op if already running
func (sm *SoundManager) StartHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || sm.hum != nil {
		return
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	ctrl := &beep.Ctrl{Streamer: newVolume(NewHumGenerator(rate), sm.cfg.HumVolume)}

	sm.lock()
	sm.mixer.Add(ctrl)
	sm.unlock()
	sm.hum = ctrl
}

// StopHum ends the bridge drone; the mixer drops it on the next pull
func (sm *SoundManager) StopHum() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.stopHumLocked()
}

func (sm *SoundManager) stopHumLocked() {
	if sm.hum == nil {
		return
	}
	sm.lock()
	sm.hum.Streamer = nil
	sm.unlock()
	sm.hum = nil
}

// IsHumming reports whether the drone is running
func (sm *SoundManager) IsHumming() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.hum != nil
}

// SetMuted silences the master output; muting also ends the hum
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	sm.lock()
	sm.master.Silent = muted || sm.cfg.MasterVolume <= 0
	if !sm.master.Silent {
		sm.master.Volume = math.Log2(sm.cfg.MasterVolume)
	}
	sm.unlock()

	if muted {
		sm.stopHumLocked()
	}
}

// ToggleMute flips the mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.IsMuted()
	sm.SetMuted(muted)
	return muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}
