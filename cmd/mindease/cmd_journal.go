// Package main provides the MindEase CLI entry point.
// This file implements the reflective journal commands.
package main

import (
	"fmt"
	"strings"
	"time"

	"mindease/cmd/mindease/ui"
	"mindease/internal/logging"

	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal [entry...]",
	Short: "Write a reflective journal entry",
	Long: `Saves a journal entry and responds with a reflection, an
affirmation, and a gentle question. The entry's emotional tone is
detected and stored alongside it.

  mindease journal "Slept badly but the walk at lunch helped."
  mindease journal list
  mindease journal stats`,
	RunE: runJournal,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent journal entries",
	RunE:  runJournalList,
}

var journalStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journal statistics and writing streak",
	RunE:  runJournalStats,
}

func init() {
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalStatsCmd)
}

func runJournal(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("journal entry text required, e.g. mindease journal \"today I...\"")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	logging.Session("journal entry, %d chars", len(text))

	emotion := a.responder.Sentiment(ctx, text)
	reply := a.responder.Journal(ctx, text, a.journal.Context(a.cfg.History.JournalWindow))

	entry := a.journal.Add(text, reply.Text, emotion)
	a.saveJournal()

	styles := ui.NewStyles(ui.DetectTheme())
	fmt.Printf("\n%s %s\n\n", styles.Title.Render("Entry saved"),
		styles.Muted.Render(fmt.Sprintf("(%d words, feeling %s)", entry.WordCount, emotion)))
	fmt.Println(styles.AgentResponse.Render(reply.Text))
	if reply.FromFallback {
		fmt.Println(styles.Muted.Render("\n(offline response)"))
	}
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	styles := ui.NewStyles(ui.DetectTheme())
	entries := a.journal.Entries()
	if len(entries) == 0 {
		fmt.Println(styles.Muted.Render("No journal entries yet. Try: mindease journal \"today I...\""))
		return nil
	}

	fmt.Println(styles.Title.Render("Journal"))
	for _, e := range entries {
		when := e.Timestamp.Format("Jan 2 15:04")
		fmt.Printf("  %s  %s\n", styles.Bold.Render(when),
			styles.Muted.Render(fmt.Sprintf("%d words, %s", e.WordCount, e.Emotion)))
		fmt.Printf("    %s\n", e.Text)
	}
	return nil
}

func runJournalStats(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	styles := ui.NewStyles(ui.DetectTheme())
	if a.journal.Len() == 0 {
		fmt.Println(styles.Muted.Render("No journal entries yet. Try: mindease journal \"today I...\""))
		return nil
	}

	fmt.Println(styles.Title.Render("Journal stats"))
	fmt.Printf("  Entries:        %d\n", a.journal.Len())
	fmt.Printf("  Total words:    %d\n", a.journal.TotalWords())
	fmt.Printf("  Writing streak: %d of the last 7 days\n", a.journal.WritingStreak(time.Now()))
	return nil
}
