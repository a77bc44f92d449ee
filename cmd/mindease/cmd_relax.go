// Package main provides the MindEase CLI entry point.
// This file launches the guided relaxation interface.
package main

import (
	"fmt"

	"mindease/cmd/mindease/relax"
	"mindease/internal/audio"
	"mindease/internal/relaxation"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var relaxList bool

var relaxCmd = &cobra.Command{
	Use:   "relax [exercise]",
	Short: "Start a guided relaxation exercise",
	Long: `Opens the guided relaxation interface with phase-by-phase
breathing guidance and a procedural ambient soundscape.

  mindease relax
  mindease relax box-breathing
  mindease relax --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRelax,
}

func init() {
	relaxCmd.Flags().BoolVar(&relaxList, "list", false, "List available exercises")
}

func runRelax(cmd *cobra.Command, args []string) error {
	if relaxList {
		for _, e := range relaxation.Exercises {
			fmt.Println(relax.Summary(e))
		}
		return nil
	}

	exerciseID := relaxation.Exercises[0].ID
	if len(args) > 0 {
		e, ok := relaxation.ExerciseByID(args[0])
		if !ok {
			ids := make([]string, 0, len(relaxation.Exercises))
			for _, ex := range relaxation.Exercises {
				ids = append(ids, ex.ID)
			}
			return fmt.Errorf("unknown exercise %q, expected one of: %v", args[0], ids)
		}
		exerciseID = e.ID
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	// No audio output backend is wired yet; the engine still tracks
	// soundscape state so the UI reflects track and mute changes, and
	// a Device implementation can be dropped in without touching this.
	engine := audio.NewEngine(nil, a.cfg.Audio.SampleRate, a.cfg.Audio.AmbientVolume)

	muted := noAudio || !a.cfg.Audio.Enabled
	model := relax.New(a.cfg, engine, exerciseID, muted)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("relaxation interface failed: %w", err)
	}
	return nil
}
