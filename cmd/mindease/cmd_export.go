// Package main provides the MindEase CLI entry point.
// This file implements JSON export of mood and journal data.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mindease/cmd/mindease/ui"
	"mindease/internal/logging"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export [mood|journal|all]",
	Short: "Export mood and journal data as JSON",
	Long: `Writes mood history and journal entries to JSON files in the
output directory. Defaults to exporting both.

  mindease export
  mindease export journal --out ~/backups`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "out", ".", "Output directory for export files")
}

func runExport(cmd *cobra.Command, args []string) error {
	what := "all"
	if len(args) > 0 {
		what = args[0]
	}
	switch what {
	case "mood", "journal", "all":
	default:
		return fmt.Errorf("unknown export target %q, expected mood, journal, or all", what)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	now := time.Now()
	var moodPath, journalPath string

	// The two exports are independent snapshots; write them in parallel.
	var g errgroup.Group
	if what == "mood" || what == "all" {
		moodPath = filepath.Join(exportDir, fmt.Sprintf("mindease-mood-history-%s.json", now.Format("2006-01-02")))
		export := a.moods.Export(now)
		g.Go(func() error {
			return writeExport(moodPath, export)
		})
	}
	if what == "journal" || what == "all" {
		journalPath = filepath.Join(exportDir, fmt.Sprintf("mindease-journal-entries-%s.json", now.Format("2006-01-02")))
		export := a.journal.Export(now)
		g.Go(func() error {
			return writeExport(journalPath, export)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	styles := ui.NewStyles(ui.DetectTheme())
	if moodPath != "" {
		fmt.Println(styles.Success.Render("✓ ") + moodPath)
	}
	if journalPath != "" {
		fmt.Println(styles.Success.Render("✓ ") + journalPath)
	}
	return nil
}

// writeExport marshals v as indented JSON and writes it atomically
// enough for a local export: temp file then rename.
func writeExport(path string, v interface{}) error {
	timer := logging.StartTimer(logging.CategoryExport, filepath.Base(path))
	defer timer.Stop()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to finalize export: %w", err)
	}

	logging.Export("wrote %s (%d bytes)", path, len(data))
	return nil
}
