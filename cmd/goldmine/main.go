// goldmine is a terminal idle mining game: earn gold passively, mine it
// by hand, and spend it on upgrades.
//
// Usage:
//
//	goldmine play            - Start a mining session
//	goldmine runs            - Show recorded run summaries
//	goldmine catalog         - List upgrades and achievements
//	goldmine serve           - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>       - Set database path (default: ~/.goldmine/runs.db)
//	--config <path>   - Path to custom config YAML
//	--tick <ms>       - Override the simulation tick period
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-goldmine/internal/config"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
	flagTickMS int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goldmine",
	Short: "Gold Mine - An idle mining game for your terminal",
	Long: `Gold Mine is a terminal-based idle game. Buy generators that mine
gold for you, click to mine by hand, and chase achievements.

Available commands:
  play      - Start a mining session
  runs      - View recorded run summaries
  catalog   - List upgrades and achievements
  serve     - Start SSH server for remote play

Examples:
  goldmine play
  goldmine runs --limit 5
  goldmine catalog
  goldmine serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.goldmine/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick", 0, "Simulation tick period in milliseconds (0 = config value)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadRuntimeConfig loads the game config and applies flag overrides.
func loadRuntimeConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagTickMS > 0 {
		cfg.Timing.TickMillis = flagTickMS
	}

	return cfg, nil
}
