package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/abyss/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream of known length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack from silence and release to silence at the end of duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer:       s,
		attackSamples:  min(rate.N(attack), total),
		releaseSamples: min(rate.N(release), total),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if left := e.totalSamples - e.position; e.releaseSamples > 0 && left <= e.releaseSamples {
			vol = min(vol, float64(left)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// humGenerator is an endless low drone with a slow amplitude wobble and a fade-in
type humGenerator struct {
	rate   beep.SampleRate
	pos    int
	fadeIn int
}

// NewHumGenerator creates the bridge drone; it never ends on its own
func NewHumGenerator(rate beep.SampleRate) beep.Streamer {
	return &humGenerator{
		rate:   rate,
		fadeIn: rate.N(parameter.HumFadeIn),
	}
}

func (g *humGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.rate)

		wobble := 1 - parameter.HumWobbleDepth*(0.5+0.5*math.Sin(2*math.Pi*parameter.HumWobbleRate*t))
		tone := math.Sin(2*math.Pi*parameter.HumBaseFreq*t) + 0.5*math.Sin(2*math.Pi*parameter.HumBaseFreq*2*t)
		sample := parameter.HumAmplitude * wobble * tone
		if g.fadeIn > 0 && g.pos < g.fadeIn {
			sample *= float64(g.pos) / float64(g.fadeIn)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *humGenerator) Err() error { return nil }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero gain is expressed as silence
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// partial is one enveloped sine tone of a chime
func partial(rate beep.SampleRate, freq float64, decay time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	tone := beep.Take(rate.N(parameter.ChimeDuration), sine)
	return NewEnvelope(tone, parameter.ChimeDuration, parameter.ChimeAttack, decay, rate), nil
}

// CreateChimeSound generates the two-partial bridge activation chime
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund, err := partial(rate, parameter.ChimeFundamentalFreq, parameter.ChimeFundamentalDecay)
	if err != nil {
		return nil
	}
	fifth, err := partial(rate, parameter.ChimeFifthFreq, parameter.ChimeFifthDecay)
	if err != nil {
		return nil
	}

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(fifth, 0.3),
	)
	return newVolume(mixed, cfg.EffectVolumes[SoundChime])
}

// CreateTickSound generates a short square blip for palette changes
func CreateTickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.TickFreq, parameter.TickDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.TickDuration, parameter.TickAttack, parameter.TickRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundTick])
}

// GetSoundEffect returns the streamer for a one-shot effect, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundChime:
		return CreateChimeSound(cfg)
	case SoundTick:
		return CreateTickSound(cfg)
	default:
		return nil
	}
}
