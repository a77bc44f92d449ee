package audio

import (
	"sync"

	"mindease/internal/logging"
)

// Device consumes rendered sample blocks. Implementations own the
// actual output; the engine only renders.
type Device interface {
	Start(sampleRate int) error
	Write(block []float64) error
	Close() error
}

// blockSize is the render quantum in samples.
const blockSize = 1024

// Engine owns the soundscape: at most one ambient bed plus any live
// phase cues. A nil device disables output entirely; every method stays
// callable and state is still tracked, so the session flow never
// branches on audio availability.
type Engine struct {
	mu         sync.Mutex
	device     Device
	sampleRate int
	volume     float64
	muted      bool

	bed      *bedVoice
	retiring []*bedVoice
	cues     []*cueVoice

	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewEngine creates an engine. device may be nil.
func NewEngine(device Device, sampleRate int, volume float64) *Engine {
	return &Engine{
		device:     device,
		sampleRate: sampleRate,
		volume:     volume,
	}
}

// Start begins streaming to the device. No device, no goroutine.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.device == nil || e.running {
		return nil
	}
	if err := e.device.Start(e.sampleRate); err != nil {
		return err
	}
	e.running = true
	e.stopCh = make(chan struct{})
	e.doneCh = make(chan struct{})
	go e.run(e.stopCh, e.doneCh)
	logging.Audio("engine started: rate=%d", e.sampleRate)
	return nil
}

// Close stops streaming and closes the device.
func (e *Engine) Close() error {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		if e.device != nil {
			return e.device.Close()
		}
		return nil
	}
	e.running = false
	close(e.stopCh)
	done := e.doneCh
	e.mu.Unlock()

	<-done
	return e.device.Close()
}

// run is the streaming loop.
func (e *Engine) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	block := make([]float64, blockSize)
	for {
		select {
		case <-stop:
			return
		default:
		}
		e.Render(block)
		if err := e.device.Write(block); err != nil {
			logging.Audio("device write failed, stopping: %v", err)
			return
		}
	}
}

// StartAmbient switches the ambient bed to the given track. A switch
// hard-stops the previous bed's oscillators at once; there is never
// more than one live bed. The half-second fade belongs to StopAmbient.
func (e *Engine) StartAmbient(track string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.bed != nil && e.bed.track == track && !e.bed.stopping {
		return
	}
	e.bed = newBed(track, e.volume, e.sampleRate)
	logging.Audio("ambient start: track=%s", track)
}

// StopAmbient fades the current bed out.
func (e *Engine) StopAmbient() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.bed == nil {
		return
	}
	e.bed.fadeOut()
	e.retiring = append(e.retiring, e.bed)
	e.bed = nil
	logging.Audio("ambient stop")
}

// AmbientTrack returns the active track ID, or "" when silent.
func (e *Engine) AmbientTrack() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.bed == nil {
		return ""
	}
	return e.bed.track
}

// PlayPhaseCue triggers the one-shot cue for a phase name. Muted
// engines drop cues but keep the ambient bed.
func (e *Engine) PlayPhaseCue(phase string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.muted {
		return
	}
	e.cues = append(e.cues, newCue(phase, e.sampleRate))
	logging.AudioDebug("cue: phase=%s", phase)
}

// SetVolume changes the master volume, retargeting the live bed.
func (e *Engine) SetVolume(volume float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = volume
	if e.bed != nil {
		e.bed.setVolume(volume)
	}
}

// SetMuted toggles cue playback.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
}

// Render mixes all live voices into block, dropping finished ones.
func (e *Engine) Render(block []float64) {
	for i := range block {
		block[i] = 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.bed != nil {
		e.bed.render(block)
	}

	keepBeds := e.retiring[:0]
	for _, b := range e.retiring {
		b.render(block)
		if !b.done() {
			keepBeds = append(keepBeds, b)
		}
	}
	e.retiring = keepBeds

	keepCues := e.cues[:0]
	for _, c := range e.cues {
		c.render(block)
		if !c.done() {
			keepCues = append(keepCues, c)
		}
	}
	e.cues = keepCues
}
