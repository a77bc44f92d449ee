package relaxation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func collectPhases(t *testing.T, exerciseID string) (*PhaseTimer, *fakeScheduler, *[]PhaseEvent) {
	t.Helper()
	exercise, ok := ExerciseByID(exerciseID)
	require.True(t, ok)

	sched := newFakeScheduler()
	var events []PhaseEvent
	timer := NewPhaseTimer(sched, exercise, func(e PhaseEvent) {
		events = append(events, e)
	})
	return timer, sched, &events
}

func TestPhaseTimer(t *testing.T) {
	t.Run("start emits first phase immediately", func(t *testing.T) {
		timer, _, events := collectPhases(t, "breathing-478")
		timer.Start()
		defer timer.Stop()

		require.Len(t, *events, 1)
		assert.Equal(t, PhaseInhale, (*events)[0].Phase)
		assert.Equal(t, 4, (*events)[0].Seconds)
		assert.Equal(t, "Breathe In", (*events)[0].Instruction)
	})

	t.Run("phases advance in order with exact timing", func(t *testing.T) {
		timer, sched, events := collectPhases(t, "breathing-478")
		timer.Start()
		defer timer.Stop()

		sched.Advance(3 * time.Second)
		require.Len(t, *events, 1, "inhale still active at 3s")

		sched.Advance(1 * time.Second)
		require.Len(t, *events, 2, "hold begins at 4s")
		assert.Equal(t, PhaseHold, (*events)[1].Phase)

		sched.Advance(7 * time.Second)
		require.Len(t, *events, 3, "exhale begins at 11s")
		assert.Equal(t, PhaseExhale, (*events)[2].Phase)
	})

	t.Run("cycle wrap increments cycle count", func(t *testing.T) {
		timer, sched, events := collectPhases(t, "breathing-478")
		timer.Start()
		defer timer.Stop()

		// One full cycle is 19s; entering the second inhale is event 4
		sched.Advance(19 * time.Second)
		require.Len(t, *events, 4)
		assert.Equal(t, PhaseInhale, (*events)[3].Phase)
		assert.Equal(t, 1, (*events)[3].Cycle)
	})

	t.Run("box breathing includes hold empty", func(t *testing.T) {
		timer, sched, events := collectPhases(t, "box-breathing")
		timer.Start()
		defer timer.Stop()

		sched.Advance(12 * time.Second)
		require.Len(t, *events, 4)
		assert.Equal(t, PhaseHoldEmpty, (*events)[3].Phase)
	})

	t.Run("muscle group advances once per completed cycle", func(t *testing.T) {
		timer, sched, events := collectPhases(t, "progressive-relaxation")
		timer.Start()
		defer timer.Stop()

		// Cycle is tense 5 + relax 10 = 15s
		sched.Advance(15 * time.Second)
		last := (*events)[len(*events)-1]
		assert.Equal(t, PhaseTense, last.Phase)
		assert.Equal(t, 1, last.MuscleGroup)
		assert.Equal(t, "Tense: Neck & Shoulders", last.Instruction)

		// After 8 cycles the group wraps to the first
		sched.Advance(7 * 15 * time.Second)
		last = (*events)[len(*events)-1]
		assert.Equal(t, 0, last.MuscleGroup)
	})

	t.Run("stop halts phase advancement", func(t *testing.T) {
		timer, sched, events := collectPhases(t, "breathing-478")
		timer.Start()
		timer.Stop()

		sched.Advance(time.Minute)
		assert.Len(t, *events, 1, "only the initial phase fired")
	})

	t.Run("stale callback after restart is ignored", func(t *testing.T) {
		timer, sched, events := collectPhases(t, "breathing-478")
		timer.Start()

		// Restart mid-phase; the old pending advance must not double-fire
		sched.Advance(2 * time.Second)
		timer.Start()
		defer timer.Stop()

		sched.Advance(4 * time.Second)
		// Events: initial inhale, restarted inhale, hold after 4s
		require.Len(t, *events, 3)
		assert.Equal(t, PhaseInhale, (*events)[1].Phase)
		assert.Equal(t, PhaseHold, (*events)[2].Phase)
	})

	t.Run("cycle count survives stop and restart", func(t *testing.T) {
		timer, sched, _ := collectPhases(t, "breathing-478")
		timer.Start()
		sched.Advance(19 * time.Second) // one full 4-7-8 cycle
		timer.Stop()

		timer.Start()
		defer timer.Stop()
		phase, cycle, group := timer.Snapshot()
		assert.Equal(t, PhaseInhale, phase, "restart rewinds to the first phase")
		assert.Equal(t, 1, cycle, "completed cycles carry across a restart")
		assert.Zero(t, group)
	})

	t.Run("reset returns counters to first phase", func(t *testing.T) {
		timer, sched, _ := collectPhases(t, "breathing-478")
		timer.Start()
		sched.Advance(25 * time.Second)
		timer.Reset()

		phase, cycle, group := timer.Snapshot()
		assert.Equal(t, PhaseInhale, phase)
		assert.Zero(t, cycle)
		assert.Zero(t, group)
	})

	t.Run("mindfulness steps in order", func(t *testing.T) {
		timer, sched, events := collectPhases(t, "mindfulness")
		timer.Start()
		defer timer.Stop()

		sched.Advance(90 * time.Second)
		require.Len(t, *events, 4)
		assert.Equal(t, "Focus on your breath", (*events)[0].Instruction)
		assert.Equal(t, "Observe your thoughts", (*events)[1].Instruction)
		assert.Equal(t, "Accept without judgment", (*events)[2].Instruction)
		assert.Equal(t, "Return to the present", (*events)[3].Instruction)
	})
}
