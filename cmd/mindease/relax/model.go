// Package relax provides the guided relaxation TUI for MindEase.
// It drives a relaxation.SessionController and mirrors its callbacks
// into bubbletea messages, wiring phase transitions to the audio
// engine's cue layer along the way.
package relax

import (
	"mindease/cmd/mindease/ui"
	"mindease/internal/audio"
	"mindease/internal/config"
	"mindease/internal/logging"
	"mindease/internal/relaxation"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages for tea updates
type (
	tickMsg     int // seconds elapsed
	phaseMsg    relaxation.PhaseEvent
	completeMsg struct{}
)

// Model is the main model for the guided relaxation interface
type Model struct {
	styles   ui.Styles
	progress progress.Model

	cfg        *config.Config
	controller *relaxation.SessionController
	engine     *audio.Engine

	// events carries controller callbacks onto the tea loop. Callbacks
	// run on scheduler goroutines and must not touch the model.
	events chan tea.Msg

	exercises []relaxation.Exercise
	selected  int
	snap      relaxation.Snapshot

	width  int
	height int
	ready  bool

	muted    bool
	trackIdx int
}

// New creates the relaxation model positioned on the given exercise.
func New(cfg *config.Config, engine *audio.Engine, exerciseID string, muted bool) Model {
	selected := 0
	for i, e := range relaxation.Exercises {
		if e.ID == exerciseID {
			selected = i
			break
		}
	}

	trackIdx := 0
	for i, id := range audio.TrackIDs {
		if id == cfg.Audio.DefaultTrack {
			trackIdx = i
			break
		}
	}

	m := Model{
		styles:    ui.NewStyles(ui.DetectTheme()),
		progress:  progress.New(progress.WithDefaultGradient()),
		cfg:       cfg,
		engine:    engine,
		events:    make(chan tea.Msg, 16),
		exercises: relaxation.Exercises,
		selected:  selected,
		muted:     muted,
		trackIdx:  trackIdx,
	}

	events := m.events
	eng := engine
	cb := relaxation.Callbacks{
		OnTick: func(elapsed int) {
			push(events, tickMsg(elapsed))
		},
		OnPhase: func(ev relaxation.PhaseEvent) {
			eng.PlayPhaseCue(string(ev.Phase))
			push(events, phaseMsg(ev))
		},
		OnComplete: func() {
			push(events, completeMsg{})
		},
	}
	m.controller = relaxation.NewSessionController(relaxation.NewScheduler(), m.exercises[selected], cb)
	m.snap = m.controller.Snapshot()

	engine.SetMuted(muted)
	if err := engine.Start(); err != nil {
		logging.Audio("engine start failed, continuing silent: %v", err)
	}

	return m
}

// push delivers a callback event without blocking the scheduler
// goroutine. A full queue drops the event; the next snapshot refresh
// catches the UI up.
func push(events chan tea.Msg, msg tea.Msg) {
	select {
	case events <- msg:
	default:
	}
}

// Shutdown stops timers and the audio engine. Safe to call before
// tea.Quit.
func (m Model) Shutdown() {
	m.controller.Reset()
	if err := m.engine.Close(); err != nil {
		logging.Audio("engine close: %v", err)
	}
	logging.Relax("relaxation session ended")
}

// waitForEvent listens for the next controller callback
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

// Init initializes the relaxation model
func (m Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = m.width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		m.ready = true

	case tickMsg, phaseMsg:
		m.snap = m.controller.Snapshot()
		return m, m.waitForEvent()

	case completeMsg:
		m.snap = m.controller.Snapshot()
		logging.Relax("session complete: %s", m.snap.Exercise.ID)
		return m, m.waitForEvent()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.Shutdown()
		return m, tea.Quit

	case " ", "p":
		// The ambient bed outlives a pause: background sound keeps
		// playing until toggled off or the interface exits.
		if m.snap.Playing {
			m.controller.Pause()
		} else {
			m.controller.Play()
			if m.engine.AmbientTrack() == "" {
				m.engine.StartAmbient(audio.TrackIDs[m.trackIdx])
			}
		}
		m.snap = m.controller.Snapshot()

	case "r":
		m.controller.Reset()
		m.snap = m.controller.Snapshot()

	case "a":
		if m.engine.AmbientTrack() == "" {
			m.engine.StartAmbient(audio.TrackIDs[m.trackIdx])
		} else {
			m.engine.StopAmbient()
		}

	case "left", "h":
		m.selectExercise(m.selected - 1)

	case "right", "l", "tab":
		m.selectExercise(m.selected + 1)

	case "t":
		m.trackIdx = (m.trackIdx + 1) % len(audio.TrackIDs)
		if m.engine.AmbientTrack() != "" {
			m.engine.StartAmbient(audio.TrackIDs[m.trackIdx])
		}

	case "m":
		m.muted = !m.muted
		m.engine.SetMuted(m.muted)

	case "+", "=":
		m.adjustVolume(0.1)

	case "-":
		m.adjustVolume(-0.1)
	}

	return m, nil
}

func (m *Model) selectExercise(idx int) {
	if idx < 0 {
		idx = len(m.exercises) - 1
	}
	if idx >= len(m.exercises) {
		idx = 0
	}
	m.selected = idx
	m.controller.SelectExercise(m.exercises[idx])
	m.snap = m.controller.Snapshot()
}

func (m *Model) adjustVolume(delta float64) {
	v := m.cfg.Audio.AmbientVolume + delta
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	m.cfg.Audio.AmbientVolume = v
	m.engine.SetVolume(v)
}
