package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-goldmine/internal/platform/tui"
	"github.com/vovakirdan/tui-goldmine/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsBrowse bool
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded run summaries",
	Long: `Display the best recorded runs, ordered by gold earned.

Examples:
  goldmine runs
  goldmine runs --limit 25
  goldmine runs --browse
  goldmine runs --clear`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsBrowse, "browse", false, "Open the interactive run browser")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All recorded runs deleted.")
		return
	}

	if flagRunsBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'goldmine play' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-10s  %-8s  %-8s  %-5s  %s\n",
		"Rank", "Gold", "Duration", "Clicks", "Upgrades", "Achv", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %-8s  %-8s  %-5s  %s\n",
		"----", "----", "--------", "------", "--------", "----", "----")

	// Print runs
	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12.2f  %-10s  %-8d  %-8d  %-5d  %s\n",
			i+1, r.GoldEarned, fmt.Sprintf("%ds", r.DurationSecs),
			r.TotalClicks, r.UpgradesPurchased, r.AchievementsEarned, dateStr)
	}

	// Lifetime totals
	stats, err := store.Stats()
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Lifetime: %d runs, %.2f gold, %d clicks, best %.2f\n",
			stats.Runs, stats.TotalGold, stats.TotalClicks, stats.BestGold)
	}
}
