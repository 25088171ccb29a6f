package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/lstephensFederation/lolTasks/internal/config"
	"github.com/lstephensFederation/lolTasks/internal/storage"
	"github.com/lstephensFederation/lolTasks/internal/term"
	"github.com/lstephensFederation/lolTasks/internal/ui"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "loltasks:", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	var configPath string
	var dbPath string

	rootCmd := &cobra.Command{
		Use:   "loltasks",
		Short: "A keyboard-driven weekly task board for the terminal",
		Long: `loltasks shows three weeks at once — previous, current, next — and
keeps every mutation on disk the moment it happens.

Keys (defaults, remappable in the config file):
  ↑/↓ or k/j     move selection (wraps through the week title)
  ←/→ or h/l     previous / next week
  r              toggle reorder mode (↑/↓ then move the task)
  Tab / Shift-Tab  cycle task state forward / backward
  Enter          edit selected task or title, cursor at end
  I              edit with cursor at start
  a              add a task after the selection and edit it
  d              delete the selected task
  n / p          shift the task to the next / previous week
  Ctrl+U / Ctrl+R  undo / redo board mutations
  q              save and quit

Inside an edit: arrows, Home/End or Ctrl+A/Ctrl+E, Alt+←/→ or Alt+B/F
for word motion, Alt+U/Alt+R for undo/redo, Esc cancels, Enter commits.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBoard(configPath, dbPath)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"loltasks %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the config file (default ~/.lolTasks/config.toml)")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "Path to the task database (overrides the config file)")

	return rootCmd
}

func runBoard(configPath, dbPath string) error {
	if configPath == "" {
		configPath = config.ResolvePath()
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening task database: %w", err)
	}
	defer store.Close()

	app, err := ui.New(store, cfg)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	surface, err := term.Open()
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer surface.Close()

	return app.Run(surface, surface)
}
