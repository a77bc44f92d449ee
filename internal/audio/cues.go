package audio

// Phase cues: short one-shot tones marking each session phase change.
// Breathing cues last one second; muscle and mindfulness cues a half
// second longer, matching their slower pacing.

const (
	breathCueSeconds     = 1.0
	meditationCueSeconds = 1.5
)

// cueSpec fully describes one cue's synthesis chain.
type cueSpec struct {
	shape      Shape
	freq       float64
	freqTarget float64 // 0 = no sweep
	sweepTime  float64
	gain       float64
	gainTarget float64 // 0 = flat
	gainTime   float64
	filterKind FilterKind // "" = unfiltered
	filterFreq float64
	seconds    float64
}

// cueSpecs maps a phase name to its cue. Phase names are unique across
// the exercise catalog, so a flat table suffices.
var cueSpecs = map[string]cueSpec{
	"inhale": {
		shape: ShapeSine, freq: 220, freqTarget: 440, sweepTime: 0.5,
		gain: 0.1, gainTarget: 0.3, gainTime: 0.5,
		seconds: breathCueSeconds,
	},
	"exhale": {
		shape: ShapeSine, freq: 440, freqTarget: 220, sweepTime: 0.5,
		gain: 0.3, gainTarget: 0.1, gainTime: 0.5,
		seconds: breathCueSeconds,
	},
	"hold": {
		shape: ShapeTriangle, freq: 330,
		gain:    0.15,
		seconds: breathCueSeconds,
	},
	"holdEmpty": {
		shape: ShapeTriangle, freq: 330,
		gain:    0.15,
		seconds: breathCueSeconds,
	},
	"tense": {
		shape: ShapeSawtooth, freq: 150, freqTarget: 200, sweepTime: 0.5,
		gain:       0.15,
		filterKind: FilterHighpass, filterFreq: 300,
		seconds: meditationCueSeconds,
	},
	"relax": {
		shape: ShapeSine, freq: 200, freqTarget: 100, sweepTime: 2,
		gain: 0.2, gainTarget: 0.05, gainTime: 2,
		filterKind: FilterLowpass, filterFreq: 800,
		seconds: meditationCueSeconds,
	},
	"focus": {
		shape: ShapeSine, freq: 256,
		gain:       0.1,
		filterKind: FilterLowpass, filterFreq: 1000,
		seconds: meditationCueSeconds,
	},
	"observe": {
		shape: ShapeTriangle, freq: 341.3,
		gain:       0.08,
		filterKind: FilterBandpass, filterFreq: 800,
		seconds: meditationCueSeconds,
	},
	"accept": {
		shape: ShapeSine, freq: 384,
		gain:       0.12,
		filterKind: FilterLowpass, filterFreq: 600,
		seconds: meditationCueSeconds,
	},
	"return": {
		shape: ShapeTriangle, freq: 256,
		gain:       0.1,
		filterKind: FilterLowpass, filterFreq: 1200,
		seconds: meditationCueSeconds,
	},
}

// fallbackCue is used for phases without a dedicated cue.
var fallbackCue = cueSpec{
	shape: ShapeSine, freq: 330,
	gain:    0.2,
	seconds: breathCueSeconds,
}

// cueVoice is a one-shot synthesis chain that silences itself after its
// duration.
type cueVoice struct {
	osc       *Oscillator
	filter    *Biquad
	gain      *Gain
	remaining int
}

// newCue builds the voice for a phase name.
func newCue(phase string, sampleRate int) *cueVoice {
	spec, ok := cueSpecs[phase]
	if !ok {
		spec = fallbackCue
	}

	osc := NewOscillator(spec.shape, spec.freq, sampleRate)
	if spec.freqTarget > 0 {
		osc.RampFrequency(spec.freqTarget, spec.sweepTime)
	}

	gain := NewGain(spec.gain, sampleRate)
	if spec.gainTarget > 0 {
		gain.Ramp(spec.gainTarget, spec.gainTime)
	}

	var filter *Biquad
	if spec.filterKind != "" {
		filter = NewBiquad(spec.filterKind, spec.filterFreq, 1, sampleRate)
	}

	return &cueVoice{
		osc:       osc,
		filter:    filter,
		gain:      gain,
		remaining: int(spec.seconds * float64(sampleRate)),
	}
}

func (c *cueVoice) done() bool {
	return c.remaining <= 0
}

// render mixes the cue additively into out until its duration elapses.
func (c *cueVoice) render(out []float64) {
	for i := range out {
		if c.remaining <= 0 {
			return
		}
		s := c.osc.Next()
		if c.filter != nil {
			s = c.filter.Process(s)
		}
		out[i] += c.gain.Process(s)
		c.remaining--
	}
}
