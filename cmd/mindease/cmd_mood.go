// Package main provides the MindEase CLI entry point.
// This file implements the mood check-in commands.
package main

import (
	"fmt"
	"strings"
	"time"

	"mindease/cmd/mindease/ui"
	"mindease/internal/logging"
	"mindease/internal/types"

	"github.com/spf13/cobra"
)

var moodCmd = &cobra.Command{
	Use:   "mood [feeling] [message...]",
	Short: "Check in with how you're feeling",
	Long: `Records a mood check-in and responds with empathy and one
practical suggestion.

Run without arguments to list the available moods:

  mindease mood
  mindease mood anxious "big presentation tomorrow"
  mindease mood history
  mindease mood stats`,
	RunE: runMood,
}

var moodHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent mood check-ins",
	RunE:  runMoodHistory,
}

var moodStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mood statistics, streak, and trend",
	RunE:  runMoodStats,
}

func init() {
	moodCmd.AddCommand(moodHistoryCmd)
	moodCmd.AddCommand(moodStatsCmd)
}

func runMood(cmd *cobra.Command, args []string) error {
	styles := ui.NewStyles(ui.DetectTheme())

	if len(args) == 0 {
		fmt.Println(styles.Title.Render("How are you feeling?"))
		for _, opt := range types.MoodOptions {
			fmt.Printf("  %s %-12s %s\n", opt.Emoji, strings.ToLower(opt.Label), styles.Muted.Render(opt.Description))
		}
		fmt.Println()
		fmt.Println(styles.Muted.Render("  mindease mood <feeling> [message]"))
		return nil
	}

	opt, ok := types.MoodOptionByLabel(args[0])
	if !ok {
		labels := make([]string, 0, len(types.MoodOptions))
		for _, o := range types.MoodOptions {
			labels = append(labels, strings.ToLower(o.Label))
		}
		return fmt.Errorf("unknown mood %q, expected one of: %s", args[0], strings.Join(labels, ", "))
	}
	message := strings.Join(args[1:], " ")

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	logging.Session("mood check-in: %s", opt.Label)
	reply := a.responder.Mood(cmd.Context(), message, &opt, a.moodConversation())

	a.moods.Add(opt, message, reply.Text)
	a.saveMoods()

	fmt.Printf("\n%s %s\n\n", opt.Emoji, styles.Bold.Render(opt.Label))
	fmt.Println(styles.AgentResponse.Render(reply.Text))
	if reply.FromFallback {
		fmt.Println(styles.Muted.Render("\n(offline response)"))
	}

	if streak := a.moods.Streak(time.Now()); streak > 1 {
		fmt.Println(styles.Success.Render(fmt.Sprintf("\n🔥 %d positive check-ins this week", streak)))
	}
	return nil
}

func runMoodHistory(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	styles := ui.NewStyles(ui.DetectTheme())
	entries := a.moods.Entries()
	if len(entries) == 0 {
		fmt.Println(styles.Muted.Render("No mood check-ins yet. Try: mindease mood"))
		return nil
	}

	fmt.Println(styles.Title.Render("Mood history"))
	for _, e := range entries {
		when := e.Timestamp.Format("Jan 2 15:04")
		fmt.Printf("  %s %s  %s\n", e.Emoji, styles.Bold.Render(e.MoodLabel), styles.Muted.Render(when))
		if e.Input != "" {
			fmt.Printf("    %s\n", styles.UserInput.Render(e.Input))
		}
	}
	return nil
}

func runMoodStats(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	styles := ui.NewStyles(ui.DetectTheme())
	stats := a.moods.Stats()
	if stats.Total == 0 {
		fmt.Println(styles.Muted.Render("No mood check-ins yet. Try: mindease mood"))
		return nil
	}

	fmt.Println(styles.Title.Render("Mood stats"))
	fmt.Printf("  Check-ins: %d\n", stats.Total)
	fmt.Printf("  Positive:  %d   Neutral: %d   Negative: %d\n", stats.Positive, stats.Neutral, stats.Negative)
	fmt.Printf("  Streak:    %d positive in the last week\n", a.moods.Streak(time.Now()))

	switch a.moods.Trend() {
	case "up":
		fmt.Println(styles.Success.Render("  Trend:     improving"))
	case "down":
		fmt.Println(styles.Warning.Render("  Trend:     dipping, be gentle with yourself"))
	default:
		fmt.Println("  Trend:     steady")
	}
	return nil
}
