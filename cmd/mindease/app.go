// Package main provides the MindEase CLI entry point.
// This file wires the shared backend used by every subcommand: config,
// logging, persistence, and the response pipeline.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"mindease/internal/config"
	"mindease/internal/fallback"
	"mindease/internal/history"
	"mindease/internal/logging"
	"mindease/internal/perception"
	"mindease/internal/pipeline"
	"mindease/internal/store"
	"mindease/internal/types"
)

// app holds the initialized backend services shared by subcommands.
type app struct {
	home      string
	cfg       *config.Config
	store     *store.Store
	responder *pipeline.Responder
	moods     *history.MoodLog
	journal   *history.JournalLog
}

// newApp resolves the home directory, loads config, opens the store,
// and restores histories from disk.
func newApp() (*app, error) {
	home := homeDir
	if home == "" {
		var err error
		home, err = config.AppHome()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(home)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if apiKey != "" {
		cfg.API.APIKey = apiKey
	}

	if err := logging.Initialize(home); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Boot("mindease starting, home=%s", home)

	st, err := store.New(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	var client types.CompletionClient
	if cfg.HasAPIKey() {
		client = perception.NewGeminiClient(cfg.API.APIKey, cfg.API.BaseURL, cfg.API.Model)
	} else {
		logging.Boot("no API key configured, all responses come from the fallback library")
	}

	selector := fallback.New(rand.NewSource(time.Now().UnixNano()))
	responder := pipeline.New(client, selector, cfg)

	moods := history.NewMoodLog(cfg.History.MoodEntryCap, cfg.History.StreakWindowD)
	moods.Restore(st.LoadMoodEntries())

	journal := history.NewJournalLog(cfg.History.JournalCap)
	journal.Restore(st.LoadJournalEntries())

	return &app{
		home:      home,
		cfg:       cfg,
		store:     st,
		responder: responder,
		moods:     moods,
		journal:   journal,
	}, nil
}

// Close releases backend resources.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logging.StoreError("close: %v", err)
		}
	}
}

// saveMoods persists the mood log, logging rather than failing the
// command: a check-in that got a response should not error out because
// the disk write failed.
func (a *app) saveMoods() {
	if err := a.store.SaveMoodEntries(a.moods.Entries()); err != nil {
		logging.StoreError("save mood entries: %v", err)
	}
}

func (a *app) saveJournal() {
	if err := a.store.SaveJournalEntries(a.journal.Entries()); err != nil {
		logging.StoreError("save journal entries: %v", err)
	}
}

// moodConversation rebuilds a conversation window from recent mood
// check-ins so one-shot commands still carry context into the prompt.
func (a *app) moodConversation() []types.ConversationMessage {
	entries := a.moods.Entries()
	msgs := make([]types.ConversationMessage, 0, len(entries)*2)
	// Entries are newest-first; the prompt wants oldest-first.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.Input != "" {
			msgs = append(msgs, types.ConversationMessage{Role: types.RoleUser, Text: e.Input, Timestamp: e.Timestamp})
		}
		if e.Response != "" {
			msgs = append(msgs, types.ConversationMessage{Role: types.RoleAssistant, Text: e.Response, Timestamp: e.Timestamp})
		}
	}
	return msgs
}
