// Package chat provides the interactive TUI chat interface for MindEase.
// This file contains view rendering functions for the TUI.
package chat

import (
	"fmt"
	"strings"

	"mindease/internal/pipeline"

	"github.com/charmbracelet/lipgloss"
)

const welcomeText = `Welcome to MindEase. 💙

I'm here to listen, whatever kind of day you're having. Type a message
below to start, or press Esc to leave at any time.

Your conversations stay on this machine.`

func (m Model) renderHistory() string {
	var sb strings.Builder

	if len(m.history) == 0 {
		sb.WriteString(m.styles.Muted.Render(welcomeText))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, msg := range m.history {
		switch msg.Role {
		case "user":
			userStyle := m.styles.Bold.
				Foreground(m.styles.Theme.Primary).
				MarginTop(1)
			sb.WriteString(userStyle.Render("You") + "\n")
			sb.WriteString(m.styles.UserInput.Render(msg.Content))
			sb.WriteString("\n\n")

		default: // assistant
			assistantStyle := m.styles.Bold.
				Foreground(m.styles.Theme.Accent).
				MarginTop(1)
			name := "MindEase"
			if msg.FromFallback {
				name += m.styles.Muted.Render("  (offline)")
			}
			sb.WriteString(assistantStyle.Render(name) + "\n")

			rendered := m.safeRenderMarkdown(msg.Content)
			sb.WriteString(rendered)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// safeRenderMarkdown renders markdown with panic recovery
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			// If glamour panics, return plain text
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}

// stageLabel translates a pipeline state into the loading indicator's
// wording. A zero stage means no transition has arrived yet.
func stageLabel(s pipeline.State) string {
	switch s {
	case pipeline.StateComposing:
		return "gathering context..."
	case pipeline.StateAwaitingCompletion:
		return "thinking..."
	case pipeline.StateFallingBack:
		return "finding words offline..."
	default:
		return "thinking..."
	}
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.styles.Header.Width(m.width).Render("🧘 MindEase")

	status := ""
	if m.isLoading {
		status = m.spinner.View() + " " + stageLabel(m.stage)
	} else if m.err != nil {
		status = m.styles.Error.Render(fmt.Sprintf("error: %v", m.err))
	}

	footer := m.styles.Footer.Render(
		fmt.Sprintf("%d turns · Enter to send · Esc to quit  %s", len(m.history)/2, status))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.textarea.View(),
		footer,
	)
}
