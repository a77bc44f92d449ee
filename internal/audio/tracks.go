package audio

import (
	"math/rand"
	"time"
)

// Ambient track IDs.
const (
	TrackWaves    = "waves"
	TrackRain     = "rain"
	TrackWind     = "wind"
	TrackMountain = "mountain"
)

// TrackIDs lists the available ambient beds in display order.
var TrackIDs = []string{TrackWaves, TrackRain, TrackWind, TrackMountain}

// bedFadeIn and bedFadeOut are the ambient envelope times.
const (
	bedFadeIn  = 1.0 // seconds
	bedFadeOut = 0.5
)

// ambientLevel is the bed's share of the master volume.
const ambientLevel = 0.6

// bedVoice is a looping ambient bed: one or two sources through a
// filter into a fading gain. Swelling beds re-trigger a frequency ramp
// every half period.
type bedVoice struct {
	track string

	osc    *Oscillator
	noise  *Noise
	second *Oscillator // optional unfiltered layer
	secondLevel float64

	filter *Biquad
	gain   *Gain

	// swell state
	swellLow, swellHigh float64
	swellHalf           int // samples per half period, 0 = no swell
	swellPos            int
	swellRising         bool

	sampleRate int
	stopping   bool
}

// newBed builds the voice for a track. Unknown tracks get a plain
// 200 Hz sine so a bad config stays audible rather than silent.
func newBed(track string, volume float64, sampleRate int) *bedVoice {
	b := &bedVoice{track: track, sampleRate: sampleRate}
	b.gain = NewGain(0, sampleRate)
	b.gain.Ramp(volume*ambientLevel, bedFadeIn)

	switch track {
	case TrackWaves:
		b.osc = NewOscillator(ShapeSine, 80, sampleRate)
		b.filter = NewBiquad(FilterLowpass, 800, 1, sampleRate)
		b.setSwell(80, 180, 6)
	case TrackRain:
		b.noise = NewNoise(rand.NewSource(time.Now().UnixNano()), 0.1)
		b.filter = NewBiquad(FilterBandpass, 2000, 1, sampleRate)
	case TrackWind:
		b.osc = NewOscillator(ShapeSawtooth, 60, sampleRate)
		b.filter = NewBiquad(FilterLowpass, 400, 1, sampleRate)
		b.setSwell(60, 120, 8)
	case TrackMountain:
		b.osc = NewOscillator(ShapeTriangle, 40, sampleRate)
		b.second = NewOscillator(ShapeSine, 80, sampleRate)
		b.secondLevel = 0.3
		b.filter = NewBiquad(FilterLowpass, 300, 1, sampleRate)
	default:
		b.osc = NewOscillator(ShapeSine, 200, sampleRate)
	}
	return b
}

// setSwell configures a periodic rise and fall between low and high Hz
// over periodSeconds.
func (b *bedVoice) setSwell(low, high, periodSeconds float64) {
	b.swellLow = low
	b.swellHigh = high
	b.swellHalf = int(periodSeconds / 2 * float64(b.sampleRate))
	b.swellRising = true
	b.osc.RampFrequency(high, periodSeconds/2)
}

// fadeOut begins the release ramp; the voice reports done once silent.
func (b *bedVoice) fadeOut() {
	b.stopping = true
	b.gain.Ramp(0, bedFadeOut)
}

// setVolume retargets the bed level, used for live volume changes.
func (b *bedVoice) setVolume(volume float64) {
	if b.stopping {
		return
	}
	b.gain.Ramp(volume*ambientLevel, 0.1)
}

func (b *bedVoice) done() bool {
	return b.stopping && b.gain.Idle() && b.gain.Level() == 0
}

// render mixes the bed additively into out.
func (b *bedVoice) render(out []float64) {
	for i := range out {
		if b.swellHalf > 0 {
			b.swellPos++
			if b.swellPos >= b.swellHalf {
				b.swellPos = 0
				b.swellRising = !b.swellRising
				target := b.swellHigh
				if !b.swellRising {
					target = b.swellLow
				}
				half := float64(b.swellHalf) / float64(b.sampleRate)
				b.osc.RampFrequency(target, half)
			}
		}

		var s float64
		if b.noise != nil {
			s = b.noise.Next()
		} else {
			s = b.osc.Next()
		}
		if b.filter != nil {
			s = b.filter.Process(s)
		}
		if b.second != nil {
			s += b.second.Next() * b.secondLevel
		}
		out[i] += b.gain.Process(s)
	}
}
