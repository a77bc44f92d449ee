package relaxation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Run("four exercises in display order", func(t *testing.T) {
		require.Len(t, Exercises, 4)
		assert.Equal(t, "breathing-478", Exercises[0].ID)
		assert.Equal(t, "box-breathing", Exercises[1].ID)
		assert.Equal(t, "progressive-relaxation", Exercises[2].ID)
		assert.Equal(t, "mindfulness", Exercises[3].ID)
	})

	t.Run("durations", func(t *testing.T) {
		assert.Equal(t, 300, Exercises[0].Seconds)
		assert.Equal(t, 480, Exercises[1].Seconds)
		assert.Equal(t, 600, Exercises[2].Seconds)
		assert.Equal(t, 420, Exercises[3].Seconds)
	})

	t.Run("cycle lengths", func(t *testing.T) {
		assert.Equal(t, 19, Exercises[0].CycleSeconds(), "4+7+8")
		assert.Equal(t, 16, Exercises[1].CycleSeconds(), "4x4")
		assert.Equal(t, 15, Exercises[2].CycleSeconds(), "5 tense + 10 relax")
		assert.Equal(t, 120, Exercises[3].CycleSeconds(), "4x30")
	})

	t.Run("progressive relaxation has eight muscle groups", func(t *testing.T) {
		pr, ok := ExerciseByID("progressive-relaxation")
		require.True(t, ok)
		require.Len(t, pr.MuscleGroups, 8)
		assert.Equal(t, "Face & Forehead", pr.MuscleGroups[0])
		assert.Equal(t, "Calves & Feet", pr.MuscleGroups[7])
	})

	t.Run("lookup by unknown id fails", func(t *testing.T) {
		_, ok := ExerciseByID("power-nap")
		assert.False(t, ok)
	})
}

func TestInstruction(t *testing.T) {
	breathing, _ := ExerciseByID("breathing-478")
	box, _ := ExerciseByID("box-breathing")
	pr, _ := ExerciseByID("progressive-relaxation")
	mindfulness, _ := ExerciseByID("mindfulness")

	tests := []struct {
		name        string
		exercise    Exercise
		phase       Phase
		muscleGroup int
		want        string
	}{
		{"inhale", breathing, PhaseInhale, 0, "Breathe In"},
		{"hold", breathing, PhaseHold, 0, "Hold"},
		{"exhale", breathing, PhaseExhale, 0, "Breathe Out"},
		{"hold empty", box, PhaseHoldEmpty, 0, "Hold Empty"},
		{"tense names the group", pr, PhaseTense, 0, "Tense: Face & Forehead"},
		{"relax names the group", pr, PhaseRelax, 2, "Relax: Arms & Hands"},
		{"focus", mindfulness, PhaseFocus, 0, "Focus on your breath"},
		{"observe", mindfulness, PhaseObserve, 0, "Observe your thoughts"},
		{"accept", mindfulness, PhaseAccept, 0, "Accept without judgment"},
		{"return", mindfulness, PhaseReturn, 0, "Return to the present"},
		{"unknown phase falls back", breathing, Phase("float"), 0, "Breathe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Instruction(tt.exercise, tt.phase, tt.muscleGroup))
		})
	}
}
