// Package main provides the MindEase CLI entry point.
// This file implements the affirmation and coping strategy commands.
package main

import (
	"fmt"
	"strings"

	"mindease/cmd/mindease/ui"

	"github.com/spf13/cobra"
)

var affirmCmd = &cobra.Command{
	Use:   "affirm [mood]",
	Short: "Get a personalized daily affirmation",
	Long: `Prints a short first-person affirmation, personalized to a mood
when one is given.

  mindease affirm
  mindease affirm anxious`,
	RunE: runAffirm,
}

var copeCmd = &cobra.Command{
	Use:   "cope [emotion] [situation...]",
	Short: "Get a coping strategy for a difficult moment",
	Long: `Suggests one concrete, immediately actionable coping technique
for the named emotion, optionally tailored to a situation.

  mindease cope anxious
  mindease cope overwhelmed "deadline moved up to tomorrow"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCope,
}

func runAffirm(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	mood := ""
	if len(args) > 0 {
		mood = args[0]
	}

	reply := a.responder.Affirmation(cmd.Context(), mood)

	styles := ui.NewStyles(ui.DetectTheme())
	fmt.Println()
	fmt.Println(styles.AgentResponse.Render(reply.Text))
	if reply.FromFallback {
		fmt.Println(styles.Muted.Render("\n(offline response)"))
	}
	return nil
}

func runCope(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	emotion := args[0]
	situation := strings.Join(args[1:], " ")

	reply := a.responder.Coping(cmd.Context(), emotion, situation)

	styles := ui.NewStyles(ui.DetectTheme())
	fmt.Println()
	fmt.Println(styles.Title.Render("One thing to try right now"))
	fmt.Println(styles.AgentResponse.Render(reply.Text))
	if reply.FromFallback {
		fmt.Println(styles.Muted.Render("\n(offline response)"))
	}
	return nil
}
