package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-goldmine/internal/platform/tui"
	"github.com/vovakirdan/tui-goldmine/internal/storage"
)

var flagNoSave bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a mining session",
	Long: `Start a new mining session. Every session starts fresh; the summary
is recorded when you quit.

Controls:
  Space      - Mine gold by hand
  Up/Down    - Select an upgrade
  Enter      - Buy the selected upgrade
  1/2/3      - Switch view (passive, click, achievements)
  H          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  goldmine play
  goldmine play --tick 50
  goldmine play --config ./my-goldmine.yaml
  goldmine play --no-save`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record a run summary on quit")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagNoSave {
		cfg.Session.Autosave = false
	}

	// Get terminal size early for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(store, cfg, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
