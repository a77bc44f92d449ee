// Package main provides the MindEase CLI entry point.
// This file launches the interactive chat interface.
package main

import (
	"fmt"

	"mindease/cmd/mindease/chat"
	"mindease/internal/config"
	"mindease/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// runInteractiveChat boots the backend and hands the terminal to the
// chat TUI. The config watcher keeps logging settings live while the
// session runs: editing config.yaml takes effect without a restart.
func runInteractiveChat() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	// The model owns store shutdown; only the watcher needs tearing
	// down here on early error paths.

	watcher, err := config.NewWatcher(a.home, func() {
		if err := logging.ReloadConfig(); err != nil {
			logging.BootError("config reload: %v", err)
		}
	})
	if err != nil {
		logging.BootError("config watcher unavailable: %v", err)
		watcher = nil
	} else if err := watcher.Start(); err != nil {
		logging.BootError("config watcher start: %v", err)
		watcher = nil
	}

	model := chat.New(a.cfg, a.responder, a.store, watcher)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		a.Close()
		if watcher != nil {
			watcher.Stop()
		}
		return fmt.Errorf("chat interface failed: %w", err)
	}
	return nil
}
