package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mindease/internal/history"
	"mindease/internal/types"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestWriteExport(t *testing.T) {
	t.Run("mood export round trips", func(t *testing.T) {
		moods := history.NewMoodLog(20, 7)
		happy, ok := types.MoodOptionByLabel("Happy")
		require.True(t, ok)
		anxious, ok := types.MoodOptionByLabel("Anxious")
		require.True(t, ok)
		moods.Add(happy, "good walk this morning", "That sounds restorative.")
		moods.Add(anxious, "", "Deep breaths. You've got this.")

		want := moods.Export(time.Now())
		path := filepath.Join(t.TempDir(), "mood.json")
		require.NoError(t, writeExport(path, want))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var got history.MoodExport
		require.NoError(t, json.Unmarshal(data, &got))

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("export mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("journal export round trips", func(t *testing.T) {
		journal := history.NewJournalLog(10)
		journal.Add("Slept badly but the lunch walk helped.", "Rest matters. What helped most?", "tired")

		want := journal.Export(time.Now())
		path := filepath.Join(t.TempDir(), "journal.json")
		require.NoError(t, writeExport(path, want))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var got history.JournalExport
		require.NoError(t, json.Unmarshal(data, &got))

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("export mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("creates nested output directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "backups", "deep", "mood.json")
		require.NoError(t, writeExport(path, history.MoodExport{ExportDate: time.Now()}))
		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("leaves no temp file behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "mood.json")
		require.NoError(t, writeExport(path, history.MoodExport{ExportDate: time.Now()}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, "mood.json", entries[0].Name())
	})
}

func TestCommandRegistry(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"chat", "mood", "journal", "relax", "affirm", "cope", "export", "version"} {
		require.True(t, names[want], "missing subcommand %s", want)
	}
}
