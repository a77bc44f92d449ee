package relaxation

import (
	"sync"
	"time"

	"mindease/internal/logging"
)

// Snapshot is the observable session state at one instant.
type Snapshot struct {
	Exercise    Exercise
	Playing     bool
	Elapsed     int // seconds into the session
	Phase       Phase
	Instruction string
	Cycle       int
	MuscleGroup int
}

// Callbacks observe session progress. All run on scheduler goroutines
// and must not call back into the controller.
type Callbacks struct {
	OnTick     func(elapsed int)
	OnPhase    func(PhaseEvent)
	OnComplete func()
}

// SessionController runs one guided session: a one-second countdown
// beside the phase timer. Pausing freezes both; resuming restarts the
// phase cycle from its first phase while the countdown continues where
// it left off. Reaching the full duration completes the session and
// resets it to a clean slate.
type SessionController struct {
	mu    sync.Mutex
	sched Scheduler

	exercise Exercise
	phases   *PhaseTimer
	cb       Callbacks

	playing bool
	elapsed int
	epoch   uint64
	tick    Timer
}

// NewSessionController creates a controller for the exercise.
func NewSessionController(sched Scheduler, exercise Exercise, cb Callbacks) *SessionController {
	c := &SessionController{
		sched:    sched,
		exercise: exercise,
		cb:       cb,
	}
	c.phases = NewPhaseTimer(sched, exercise, cb.OnPhase)
	return c
}

// Play starts or resumes the session. Already playing is a no-op.
func (c *SessionController) Play() {
	c.mu.Lock()
	if c.playing {
		c.mu.Unlock()
		return
	}
	c.playing = true
	c.epoch++
	epoch := c.epoch
	c.scheduleTick(epoch)
	c.mu.Unlock()

	logging.Session("play: exercise=%s elapsed=%d", c.exercise.ID, c.elapsed)
	c.phases.Start()
}

// Pause freezes the countdown and phase cycle, keeping elapsed time.
func (c *SessionController) Pause() {
	c.mu.Lock()
	if !c.playing {
		c.mu.Unlock()
		return
	}
	c.playing = false
	c.epoch++
	if c.tick != nil {
		c.tick.Stop()
		c.tick = nil
	}
	c.mu.Unlock()

	logging.Session("pause: exercise=%s elapsed=%d", c.exercise.ID, c.elapsed)
	c.phases.Stop()
}

// Toggle plays when paused and pauses when playing.
func (c *SessionController) Toggle() {
	c.mu.Lock()
	playing := c.playing
	c.mu.Unlock()
	if playing {
		c.Pause()
	} else {
		c.Play()
	}
}

// Reset stops the session and returns every counter to its initial
// state: elapsed zero, first phase, first muscle group.
func (c *SessionController) Reset() {
	c.mu.Lock()
	c.playing = false
	c.epoch++
	c.elapsed = 0
	if c.tick != nil {
		c.tick.Stop()
		c.tick = nil
	}
	c.mu.Unlock()

	logging.Session("reset: exercise=%s", c.exercise.ID)
	c.phases.Reset()
}

// SelectExercise switches to a different exercise, resetting the session.
func (c *SessionController) SelectExercise(exercise Exercise) {
	c.Reset()

	c.mu.Lock()
	c.exercise = exercise
	c.phases = NewPhaseTimer(c.sched, exercise, c.cb.OnPhase)
	c.mu.Unlock()

	logging.Session("select: exercise=%s", exercise.ID)
}

// Snapshot returns the current session state.
func (c *SessionController) Snapshot() Snapshot {
	c.mu.Lock()
	playing := c.playing
	elapsed := c.elapsed
	exercise := c.exercise
	phases := c.phases
	c.mu.Unlock()

	phase, cycle, muscleGroup := phases.Snapshot()
	return Snapshot{
		Exercise:    exercise,
		Playing:     playing,
		Elapsed:     elapsed,
		Phase:       phase,
		Instruction: Instruction(exercise, phase, muscleGroup),
		Cycle:       cycle,
		MuscleGroup: muscleGroup,
	}
}

// scheduleTick arms the next one-second countdown step. Caller holds c.mu.
func (c *SessionController) scheduleTick(epoch uint64) {
	c.tick = c.sched.AfterFunc(time.Second, func() {
		c.onTick(epoch)
	})
}

// onTick advances the countdown by one second under the epoch guard.
func (c *SessionController) onTick(epoch uint64) {
	c.mu.Lock()
	if epoch != c.epoch || !c.playing {
		c.mu.Unlock()
		return
	}
	c.elapsed++
	elapsed := c.elapsed

	if elapsed >= c.exercise.Seconds {
		// Natural completion resets the whole session.
		c.playing = false
		c.epoch++
		c.elapsed = 0
		c.tick = nil
		c.mu.Unlock()

		logging.Session("complete: exercise=%s", c.exercise.ID)
		c.phases.Reset()
		if c.cb.OnComplete != nil {
			c.cb.OnComplete()
		}
		return
	}

	c.scheduleTick(epoch)
	c.mu.Unlock()

	if c.cb.OnTick != nil {
		c.cb.OnTick(elapsed)
	}
}
