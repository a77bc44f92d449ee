// Package chat provides the interactive TUI chat interface for MindEase.
// The chat functionality is split across multiple files:
//   - model.go: Types, Init, Update loop (this file)
//   - process.go: Input processing through the response pipeline
//   - view.go: Rendering functions
package chat

import (
	"time"

	"mindease/cmd/mindease/ui"
	"mindease/internal/config"
	"mindease/internal/history"
	"mindease/internal/logging"
	"mindease/internal/pipeline"
	"mindease/internal/store"
	"mindease/internal/types"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// Message represents a single message in the chat transcript
type Message struct {
	Role         types.Role
	Content      string
	Time         time.Time
	FromFallback bool
}

// Model is the main model for the interactive chat interface
type Model struct {
	// UI Components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   ui.Styles
	renderer *glamour.TermRenderer

	// State
	history   []Message
	isLoading bool
	stage     pipeline.State
	err       error
	width     int
	height    int
	ready     bool

	// stages bridges pipeline state transitions into the tea loop.
	stages chan pipeline.State

	// Backend
	cfg          *config.Config
	responder    *pipeline.Responder
	conversation *history.Conversation
	store        *store.Store
	watcher      *config.Watcher

	sessionStart time.Time
}

// Messages for tea updates
type (
	// replyMsg carries one completed pipeline round trip.
	replyMsg struct {
		input string
		reply pipeline.Reply
	}
	// stageMsg reports a pipeline state transition while a reply is
	// in flight, so the loading indicator can name the current stage.
	stageMsg pipeline.State
	errorMsg error
)

// New creates the chat model. watcher may be nil when config watching
// is unavailable; the model stops it on quit when present.
func New(cfg *config.Config, responder *pipeline.Responder, st *store.Store, watcher *config.Watcher) Model {
	ta := textarea.New()
	ta.Placeholder = "Share what's on your mind..."
	ta.Focus()
	ta.Prompt = "┃ "
	ta.CharLimit = 2000
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := ui.NewStyles(ui.DetectTheme())
	sp.Style = styles.Spinner

	// Pipeline transitions arrive on the requesting goroutine; drop
	// rather than block when the tea loop lags behind.
	stages := make(chan pipeline.State, 16)
	responder.OnStateChange(func(s pipeline.State) {
		select {
		case stages <- s:
		default:
		}
	})

	return Model{
		textarea:     ta,
		spinner:      sp,
		styles:       styles,
		cfg:          cfg,
		responder:    responder,
		conversation: history.NewConversation(),
		store:        st,
		watcher:      watcher,
		stages:       stages,
		sessionStart: time.Now(),
	}
}

// Shutdown releases backend resources. Safe to call before tea.Quit.
func (m Model) Shutdown() {
	if m.watcher != nil {
		m.watcher.Stop()
	}
	if m.store != nil {
		_ = m.store.Close()
	}
	logging.Session("chat session ended after %d turns", len(m.history))
}

// Init initializes the interactive chat model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.waitForStage(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
		stCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Shutdown()
			return m, tea.Quit
		case tea.KeyEnter:
			if msg.Alt {
				// Alt+Enter inserts a newline
				break
			}
			input := m.textarea.Value()
			if input == "" || m.isLoading {
				return m, nil
			}
			m.textarea.Reset()
			m.isLoading = true
			m.err = nil
			m.history = append(m.history, Message{Role: types.RoleUser, Content: input, Time: time.Now()})
			m.refreshViewport()
			return m, tea.Batch(m.spinner.Tick, m.processInput(input))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refreshViewport()

	case replyMsg:
		m.isLoading = false
		m.conversation.Add(types.RoleUser, msg.input)
		m.conversation.Add(types.RoleAssistant, msg.reply.Text)
		m.history = append(m.history, Message{
			Role:         types.RoleAssistant,
			Content:      msg.reply.Text,
			Time:         time.Now(),
			FromFallback: msg.reply.FromFallback,
		})
		m.refreshViewport()
		m.viewport.GotoBottom()

	case stageMsg:
		m.stage = pipeline.State(msg)
		stCmd = m.waitForStage()

	case errorMsg:
		m.isLoading = false
		m.err = msg

	case spinner.TickMsg:
		if m.isLoading {
			m.spinner, spCmd = m.spinner.Update(msg)
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, spCmd, stCmd)
}

// layout sizes the viewport and textarea for the current window and
// rebuilds the markdown renderer at the new wrap width.
func (m *Model) layout() {
	headerHeight := 1
	footerHeight := 1
	inputHeight := m.textarea.Height() + 1

	vpHeight := m.height - headerHeight - footerHeight - inputHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, vpHeight)
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = vpHeight
	}
	m.textarea.SetWidth(m.width - 2)

	wrap := m.width - 4
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		m.renderer = renderer
	}
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}
