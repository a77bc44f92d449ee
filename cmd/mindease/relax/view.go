// Package relax provides the guided relaxation TUI for MindEase.
// This file contains view rendering functions.
package relax

import (
	"fmt"
	"strings"

	"mindease/internal/relaxation"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.styles.Header.Width(m.width).Render("🧘 MindEase · Relaxation")

	picker := m.renderPicker()
	session := m.renderSession()
	footer := m.styles.Footer.Render(
		"space play/pause · r reset · ←/→ exercise · a ambient · t sound · m mute · +/- volume · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		picker,
		"",
		session,
		"",
		footer,
	)
}

func (m Model) renderPicker() string {
	var parts []string
	for i, e := range m.exercises {
		label := fmt.Sprintf("%s %s", e.Icon, e.Name)
		if i == m.selected {
			parts = append(parts, m.styles.Badge.
				Background(m.styles.Theme.Primary).
				Foreground(lipgloss.Color("#ffffff")).
				Render(label))
		} else {
			parts = append(parts, m.styles.Badge.Render(label))
		}
	}
	return "  " + strings.Join(parts, " ")
}

func (m Model) renderSession() string {
	e := m.snap.Exercise
	var sb strings.Builder

	sb.WriteString("  " + m.styles.Title.Render(e.Name) + "\n")
	sb.WriteString("  " + m.styles.Subtitle.Render(e.Description) + "\n\n")

	// Big phase instruction
	instruction := m.snap.Instruction
	if instruction == "" {
		instruction = "Press space to begin"
	}
	instrStyle := m.styles.Bold.
		Foreground(m.styles.Theme.Accent).
		Padding(1, 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Theme.Border)
	sb.WriteString("  " + instrStyle.Render(instruction) + "\n\n")

	// Cycle and muscle group detail
	if m.snap.Playing || m.snap.Elapsed > 0 {
		detail := fmt.Sprintf("cycle %d", m.snap.Cycle+1)
		if len(e.MuscleGroups) > 0 && m.snap.MuscleGroup < len(e.MuscleGroups) {
			detail = e.MuscleGroups[m.snap.MuscleGroup]
		}
		sb.WriteString("  " + m.styles.Muted.Render(detail) + "\n\n")
	}

	// Progress
	percent := float64(m.snap.Elapsed) / float64(e.Seconds)
	sb.WriteString("  " + m.progress.ViewAs(percent) + "\n")
	sb.WriteString("  " + m.styles.Muted.Render(
		fmt.Sprintf("%s / %s", formatClock(m.snap.Elapsed), formatClock(e.Seconds))) + "\n\n")

	// Audio status
	sb.WriteString("  " + m.renderAudioStatus())

	return sb.String()
}

func (m Model) renderAudioStatus() string {
	track := trackName(m.trackIdx)
	if m.muted {
		return m.styles.Muted.Render("🔇 muted · " + track)
	}
	playing := m.engine.AmbientTrack()
	if playing == "" {
		return m.styles.Muted.Render("🔈 " + track + " (starts with session)")
	}
	return m.styles.Info.Render("🔊 " + track)
}

var trackNames = []string{"Ocean Waves", "Gentle Rain", "Soft Wind", "Mountain Air"}

func trackName(idx int) string {
	if idx < 0 || idx >= len(trackNames) {
		return "Ocean Waves"
	}
	return trackNames[idx]
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Summary is a one-line catalog entry used by the list subcommand.
func Summary(e relaxation.Exercise) string {
	return fmt.Sprintf("%s %-24s %s  (%s)", e.Icon, e.ID, e.Description, formatClock(e.Seconds))
}
