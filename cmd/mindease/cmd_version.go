// Package main provides the MindEase CLI entry point.
package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is stamped by the release build; "dev" otherwise.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mindease %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive chat companion",
	Long: `Opens the interactive chat interface. Running mindease with no
arguments does the same thing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveChat()
	},
}
