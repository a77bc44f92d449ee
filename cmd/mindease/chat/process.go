// Package chat provides the interactive TUI chat interface for MindEase.
// This file runs user input through the response pipeline.
package chat

import (
	"context"
	"strings"

	"mindease/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) processInput(input string) tea.Cmd {
	return func() tea.Msg {
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			return nil
		}

		logging.SessionDebug("chat input, %d chars", len(trimmed))

		// The pipeline handles its own fallback; a Reply always comes
		// back. The conversation snapshot excludes the current turn so
		// the prompt's context window holds only prior exchanges.
		reply := m.responder.Chat(context.Background(), trimmed, m.conversation.All())

		return replyMsg{input: trimmed, reply: reply}
	}
}

// waitForStage blocks on the next pipeline transition. The command
// re-arms itself from Update each time a stageMsg is delivered.
func (m Model) waitForStage() tea.Cmd {
	return func() tea.Msg {
		return stageMsg(<-m.stages)
	}
}
