package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-goldmine/internal/game"
	"github.com/vovakirdan/tui-goldmine/internal/storage"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List upgrades and achievements",
	Long:  `Shows every purchasable upgrade and every achievement in the game.`,
	Run:   runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) {
	upgrades := game.DefaultUpgrades()

	printUpgradeGroup("Passive upgrades (gold per second):", upgrades, game.KindPassive, "/s")
	fmt.Println()
	printUpgradeGroup("Click upgrades (gold per click):", upgrades, game.KindClick, "/click")
	fmt.Println()

	fmt.Println("Achievements:")
	fmt.Println()

	// Unlock counts are best-effort; the catalog works without a database.
	var unlocks map[string]int
	if store, err := storage.Open(flagDBPath); err == nil {
		unlocks, _ = store.UnlockCounts()
		store.Close()
	}

	for _, a := range game.DefaultAchievements() {
		line := fmt.Sprintf("  %-20s %s", a.Name, a.Description)
		if n, ok := unlocks[a.Name]; ok && n > 0 {
			line += fmt.Sprintf("  (earned in %d runs)", n)
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println("Run 'goldmine play' to start mining.")
}

// printUpgradeGroup prints the upgrades of one kind as an aligned table.
func printUpgradeGroup(title string, upgrades []game.Upgrade, kind game.Kind, unit string) {
	fmt.Println(title)
	fmt.Println()

	fmt.Printf("  %-18s  %-10s  %-12s  %s\n", "Name", "Cost", "Production", "Description")
	fmt.Printf("  %-18s  %-10s  %-12s  %s\n", "----", "----", "----------", "-----------")

	for _, u := range upgrades {
		if u.Kind != kind {
			continue
		}
		fmt.Printf("  %-18s  %-10.0f  %-12s  %s\n",
			u.Name, u.BaseCost, fmt.Sprintf("+%g%s", u.BaseProduction, unit), u.Description)
	}
}
