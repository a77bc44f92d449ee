// Package main provides the MindEase CLI entry point.
package main

import (
	"fmt"
	"os"

	"mindease/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	apiKey  string
	homeDir string
	noAudio bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mindease",
	Short: "MindEase - AI-powered mental wellness companion",
	Long: `MindEase is a terminal companion for everyday mental wellness.

It offers an AI chat companion, mood check-ins, a reflective journal,
guided relaxation exercises with procedural soundscapes, daily
affirmations, and coping strategies. Responses come from the Gemini
API when a key is configured, with a curated supportive library
standing in whenever the API is unreachable.

Run without arguments to start the interactive chat interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive modes (they own the terminal)
		switch cmd.Name() {
		case "mindease", "chat", "relax":
			return nil
		}

		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch interactive chat
		return runInteractiveChat()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (or set MINDEASE_API_KEY env)")
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "MindEase home directory (default: ~/.mindease)")
	rootCmd.PersistentFlags().BoolVar(&noAudio, "no-audio", false, "Disable the relaxation soundscape")

	rootCmd.AddCommand(moodCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(relaxCmd)
	rootCmd.AddCommand(affirmCmd)
	rootCmd.AddCommand(copeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
