// Package audio renders the procedural soundscape for guided sessions:
// looping ambient beds plus short per-phase cues, all synthesized from
// oscillators, biquad filters and gain envelopes. Rendering is pull
// based; the engine mixes voices into float64 blocks and hands them to
// an output device. A nil device turns the whole engine into a no-op
// that still tracks state, so sessions run identically without audio
// hardware.
package audio

import (
	"math"
	"math/rand"
)

// Shape selects an oscillator waveform.
type Shape string

const (
	ShapeSine     Shape = "sine"
	ShapeTriangle Shape = "triangle"
	ShapeSawtooth Shape = "sawtooth"
)

// Oscillator is a band-unlimited waveform generator. Frequency can ramp
// linearly between values to produce swells and sweeps.
type Oscillator struct {
	shape      Shape
	sampleRate float64
	phase      float64

	freq       float64
	rampFrom   float64
	rampTo     float64
	rampPos    int
	rampLen    int
	ramping    bool
}

// NewOscillator creates an oscillator at the given frequency.
func NewOscillator(shape Shape, freq float64, sampleRate int) *Oscillator {
	return &Oscillator{shape: shape, freq: freq, sampleRate: float64(sampleRate)}
}

// SetFrequency jumps to a frequency immediately, cancelling any ramp.
func (o *Oscillator) SetFrequency(freq float64) {
	o.freq = freq
	o.ramping = false
}

// RampFrequency sweeps linearly from the current frequency to target
// over the given number of seconds.
func (o *Oscillator) RampFrequency(target, seconds float64) {
	o.rampFrom = o.freq
	o.rampTo = target
	o.rampPos = 0
	o.rampLen = int(seconds * o.sampleRate)
	o.ramping = o.rampLen > 0
	if !o.ramping {
		o.freq = target
	}
}

// Frequency returns the instantaneous frequency.
func (o *Oscillator) Frequency() float64 {
	return o.freq
}

// Next produces one sample in [-1, 1].
func (o *Oscillator) Next() float64 {
	if o.ramping {
		t := float64(o.rampPos) / float64(o.rampLen)
		o.freq = o.rampFrom + (o.rampTo-o.rampFrom)*t
		o.rampPos++
		if o.rampPos >= o.rampLen {
			o.freq = o.rampTo
			o.ramping = false
		}
	}

	var sample float64
	switch o.shape {
	case ShapeTriangle:
		sample = 2/math.Pi*math.Asin(math.Sin(2*math.Pi*o.phase))
	case ShapeSawtooth:
		sample = 2*(o.phase-math.Floor(o.phase+0.5))
	default:
		sample = math.Sin(2 * math.Pi * o.phase)
	}

	o.phase += o.freq / o.sampleRate
	if o.phase >= 1 {
		o.phase -= math.Floor(o.phase)
	}
	return sample
}

// Noise is a white noise source.
type Noise struct {
	rng   *rand.Rand
	level float64
}

// NewNoise creates a noise source scaled to level.
func NewNoise(src rand.Source, level float64) *Noise {
	return &Noise{rng: rand.New(src), level: level}
}

// Next produces one sample in [-level, level].
func (n *Noise) Next() float64 {
	return (n.rng.Float64()*2 - 1) * n.level
}

// FilterKind selects a biquad response.
type FilterKind string

const (
	FilterLowpass  FilterKind = "lowpass"
	FilterBandpass FilterKind = "bandpass"
	FilterHighpass FilterKind = "highpass"
)

// Biquad is a second-order IIR filter using the RBJ audio EQ cookbook
// coefficients.
type Biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

// NewBiquad creates a filter with cutoff/center freq and quality q.
func NewBiquad(kind FilterKind, freq, q float64, sampleRate int) *Biquad {
	w0 := 2 * math.Pi * freq / float64(sampleRate)
	cosW := math.Cos(w0)
	sinW := math.Sin(w0)
	alpha := sinW / (2 * q)

	var b0, b1, b2, a0, a1, a2 float64
	switch kind {
	case FilterHighpass:
		b0 = (1 + cosW) / 2
		b1 = -(1 + cosW)
		b2 = (1 + cosW) / 2
	case FilterBandpass:
		b0 = alpha
		b1 = 0
		b2 = -alpha
	default: // lowpass
		b0 = (1 - cosW) / 2
		b1 = 1 - cosW
		b2 = (1 - cosW) / 2
	}
	a0 = 1 + alpha
	a1 = -2 * cosW
	a2 = 1 - alpha

	return &Biquad{
		b0: b0 / a0, b1: b1 / a0, b2: b2 / a0,
		a1: a1 / a0, a2: a2 / a0,
	}
}

// Process filters one sample.
func (f *Biquad) Process(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}

// Gain applies a level with optional linear ramp, the shape of an
// attack/release envelope.
type Gain struct {
	sampleRate float64
	level      float64

	rampFrom float64
	rampTo   float64
	rampPos  int
	rampLen  int
	ramping  bool
}

// NewGain creates a gain stage at the given level.
func NewGain(level float64, sampleRate int) *Gain {
	return &Gain{level: level, sampleRate: float64(sampleRate)}
}

// Set jumps to a level immediately, cancelling any ramp.
func (g *Gain) Set(level float64) {
	g.level = level
	g.ramping = false
}

// Ramp sweeps linearly from the current level to target over seconds.
func (g *Gain) Ramp(target, seconds float64) {
	g.rampFrom = g.level
	g.rampTo = target
	g.rampPos = 0
	g.rampLen = int(seconds * g.sampleRate)
	g.ramping = g.rampLen > 0
	if !g.ramping {
		g.level = target
	}
}

// Level returns the instantaneous level.
func (g *Gain) Level() float64 {
	return g.level
}

// Idle reports whether no ramp is in progress.
func (g *Gain) Idle() bool {
	return !g.ramping
}

// Process scales one sample, advancing any ramp.
func (g *Gain) Process(x float64) float64 {
	if g.ramping {
		t := float64(g.rampPos) / float64(g.rampLen)
		g.level = g.rampFrom + (g.rampTo-g.rampFrom)*t
		g.rampPos++
		if g.rampPos >= g.rampLen {
			g.level = g.rampTo
			g.ramping = false
		}
	}
	return x * g.level
}
