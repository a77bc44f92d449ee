// Package relaxation implements the guided session engine: the exercise
// catalog, the self-rescheduling phase timer and the session controller
// that drives the one-second countdown.
package relaxation

import "time"

// Phase names one stage of an exercise cycle.
type Phase string

const (
	PhaseInhale    Phase = "inhale"
	PhaseHold      Phase = "hold"
	PhaseExhale    Phase = "exhale"
	PhaseHoldEmpty Phase = "holdEmpty"

	PhaseTense Phase = "tense"
	PhaseRelax Phase = "relax"

	PhaseFocus   Phase = "focus"
	PhaseObserve Phase = "observe"
	PhaseAccept  Phase = "accept"
	PhaseReturn  Phase = "return"
)

// PhaseSpec pairs a phase with its length in seconds.
type PhaseSpec struct {
	Phase   Phase
	Seconds int
}

// Duration returns the phase length as a time.Duration.
func (p PhaseSpec) Duration() time.Duration {
	return time.Duration(p.Seconds) * time.Second
}

// Exercise is one guided session from the catalog. Phases cycle in
// order for the whole session; MuscleGroups, when present, advance one
// group per completed cycle.
type Exercise struct {
	ID           string
	Name         string
	Description  string
	Icon         string
	Seconds      int // total session length
	Phases       []PhaseSpec
	MuscleGroups []string
}

// Duration returns the total session length.
func (e Exercise) Duration() time.Duration {
	return time.Duration(e.Seconds) * time.Second
}

// CycleSeconds returns the length of one full phase cycle.
func (e Exercise) CycleSeconds() int {
	total := 0
	for _, p := range e.Phases {
		total += p.Seconds
	}
	return total
}

// Exercises is the fixed catalog, in display order.
var Exercises = []Exercise{
	{
		ID:          "breathing-478",
		Name:        "4-7-8 Breathing",
		Description: "Inhale for 4, hold for 7, exhale for 8",
		Icon:        "🫁",
		Seconds:     300,
		Phases: []PhaseSpec{
			{PhaseInhale, 4},
			{PhaseHold, 7},
			{PhaseExhale, 8},
		},
	},
	{
		ID:          "box-breathing",
		Name:        "Box Breathing",
		Description: "Equal 4-count breathing pattern",
		Icon:        "⬜",
		Seconds:     480,
		Phases: []PhaseSpec{
			{PhaseInhale, 4},
			{PhaseHold, 4},
			{PhaseExhale, 4},
			{PhaseHoldEmpty, 4},
		},
	},
	{
		ID:          "progressive-relaxation",
		Name:        "Progressive Muscle Relaxation",
		Description: "Systematic muscle tension and release",
		Icon:        "💆‍♀️",
		Seconds:     600,
		Phases: []PhaseSpec{
			{PhaseTense, 5},
			{PhaseRelax, 10},
		},
		MuscleGroups: []string{
			"Face & Forehead", "Neck & Shoulders", "Arms & Hands",
			"Chest & Upper Back", "Abdomen", "Hips & Glutes",
			"Thighs", "Calves & Feet",
		},
	},
	{
		ID:          "mindfulness",
		Name:        "Mindfulness Meditation",
		Description: "Present moment awareness practice",
		Icon:        "🧘‍♀️",
		Seconds:     420,
		Phases: []PhaseSpec{
			{PhaseFocus, 30},
			{PhaseObserve, 30},
			{PhaseAccept, 30},
			{PhaseReturn, 30},
		},
	},
}

// ExerciseByID looks an exercise up in the catalog.
func ExerciseByID(id string) (Exercise, bool) {
	for _, e := range Exercises {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}

var breathingInstructions = map[Phase]string{
	PhaseInhale:    "Breathe In",
	PhaseHold:      "Hold",
	PhaseExhale:    "Breathe Out",
	PhaseHoldEmpty: "Hold Empty",
}

var mindfulnessInstructions = map[Phase]string{
	PhaseFocus:   "Focus on your breath",
	PhaseObserve: "Observe your thoughts",
	PhaseAccept:  "Accept without judgment",
	PhaseReturn:  "Return to the present",
}

// Instruction returns the on-screen cue for a phase. muscleGroup indexes
// the exercise's groups and is ignored for exercises without them.
func Instruction(e Exercise, phase Phase, muscleGroup int) string {
	switch phase {
	case PhaseTense, PhaseRelax:
		group := ""
		if len(e.MuscleGroups) > 0 {
			group = e.MuscleGroups[muscleGroup%len(e.MuscleGroups)]
		}
		if phase == PhaseTense {
			return "Tense: " + group
		}
		return "Relax: " + group
	case PhaseFocus, PhaseObserve, PhaseAccept, PhaseReturn:
		return mindfulnessInstructions[phase]
	default:
		if instr, ok := breathingInstructions[phase]; ok {
			return instr
		}
		return "Breathe"
	}
}
