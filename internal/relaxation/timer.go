package relaxation

import (
	"sync"
	"time"

	"mindease/internal/logging"
)

// PhaseEvent describes one phase becoming active.
type PhaseEvent struct {
	Phase       Phase
	Seconds     int // length of this phase
	Cycle       int // completed full cycles before this phase
	MuscleGroup int // active muscle group index, 0 when not applicable
	Instruction string
}

// PhaseTimer cycles through an exercise's phases, rescheduling itself
// after each phase. Every callback carries the epoch it was scheduled
// under; a Stop or restart bumps the epoch so stale callbacks that
// already left the scheduler queue become no-ops instead of advancing a
// session that was cancelled.
type PhaseTimer struct {
	mu    sync.Mutex
	sched Scheduler

	exercise    Exercise
	epoch       uint64
	timer       Timer
	running     bool
	phaseIdx    int
	cycle       int
	muscleGroup int

	onPhase func(PhaseEvent)
}

// NewPhaseTimer creates a timer for the exercise. onPhase fires once per
// phase entry, including the first phase on Start. Callbacks run on the
// scheduler's goroutine and must not call back into the timer.
func NewPhaseTimer(sched Scheduler, exercise Exercise, onPhase func(PhaseEvent)) *PhaseTimer {
	return &PhaseTimer{
		sched:    sched,
		exercise: exercise,
		onPhase:  onPhase,
	}
}

// Start begins cycling from the first phase. A restart after Stop
// rewinds the phase and muscle group to the top of the cycle but keeps
// the completed-cycle count; only Reset zeroes it.
func (t *PhaseTimer) Start() {
	t.mu.Lock()
	t.epoch++
	epoch := t.epoch
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.running = true
	t.phaseIdx = 0
	t.muscleGroup = 0
	t.mu.Unlock()

	logging.RelaxDebug("phase timer start: exercise=%s epoch=%d", t.exercise.ID, epoch)
	t.enterPhase(epoch)
}

// Stop cancels the pending phase transition. Counters keep their values
// so a paused session can report where it stopped.
func (t *PhaseTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.epoch++
	t.running = false
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	logging.RelaxDebug("phase timer stop: exercise=%s", t.exercise.ID)
}

// Reset stops the timer and zeroes its counters back to the first phase.
func (t *PhaseTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.epoch++
	t.running = false
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.phaseIdx = 0
	t.cycle = 0
	t.muscleGroup = 0
}

// Snapshot returns the current phase, completed cycles and muscle group.
func (t *PhaseTimer) Snapshot() (Phase, int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.exercise.Phases[t.phaseIdx].Phase, t.cycle, t.muscleGroup
}

// enterPhase emits the current phase and schedules the advance to the
// next one under the given epoch.
func (t *PhaseTimer) enterPhase(epoch uint64) {
	t.mu.Lock()
	if epoch != t.epoch || !t.running {
		t.mu.Unlock()
		return
	}
	spec := t.exercise.Phases[t.phaseIdx]
	event := PhaseEvent{
		Phase:       spec.Phase,
		Seconds:     spec.Seconds,
		Cycle:       t.cycle,
		MuscleGroup: t.muscleGroup,
		Instruction: Instruction(t.exercise, spec.Phase, t.muscleGroup),
	}
	t.timer = t.sched.AfterFunc(time.Duration(spec.Seconds)*time.Second, func() {
		t.advance(epoch)
	})
	onPhase := t.onPhase
	t.mu.Unlock()

	if onPhase != nil {
		onPhase(event)
	}
}

// advance moves to the next phase. Wrapping to the start of the cycle
// counts a completed cycle and steps the muscle group.
func (t *PhaseTimer) advance(epoch uint64) {
	t.mu.Lock()
	if epoch != t.epoch || !t.running {
		t.mu.Unlock()
		return
	}
	t.phaseIdx = (t.phaseIdx + 1) % len(t.exercise.Phases)
	if t.phaseIdx == 0 {
		t.cycle++
		if len(t.exercise.MuscleGroups) > 0 {
			t.muscleGroup = (t.muscleGroup + 1) % len(t.exercise.MuscleGroups)
		}
	}
	t.mu.Unlock()

	t.enterPhase(epoch)
}
