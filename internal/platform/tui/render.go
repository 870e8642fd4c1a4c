package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-goldmine/internal/game"
)

// Layout constants
const (
	cooldownGaugeWidth = 20 // Width of the click cooldown gauge in cells
	minFrameWidth      = 40 // Below this the frame degrades to a plain list
)

// Frame styles. 256-color codes so the UI degrades gracefully on basic
// terminals.
var (
	goldStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	rateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	clickStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	totalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("238"))
	affordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	lockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))

	readyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	coolingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// renderFrame assembles the full screen for one snapshot.
func renderFrame(snap game.Snapshot, keys KeyMap, h help.Model, width, height int) string {
	if width < minFrameWidth {
		width = minFrameWidth
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("GOLD MINE", width)))
	b.WriteString("\n")
	b.WriteString(renderHeader(snap, width))
	b.WriteString("\n")
	b.WriteString(renderMiningPane(snap, width))
	b.WriteString("\n")
	b.WriteString(renderTabs(snap.View, width))
	b.WriteString("\n")

	if snap.View == game.ViewAchievements {
		b.WriteString(renderAchievementList(snap, width))
	} else {
		b.WriteString(renderUpgradeList(snap, width))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(h.View(keys)))

	return b.String()
}

// renderHeader renders the stats bar: balance, rates and lifetime totals.
func renderHeader(snap game.Snapshot, width int) string {
	stats := strings.Join([]string{
		goldStyle.Render(fmt.Sprintf("Gold: %s", formatNumber(snap.Gold))),
		rateStyle.Render(fmt.Sprintf("%s/s", formatNumber(snap.GoldPerSecond))),
		clickStyle.Render(fmt.Sprintf("%s/click", formatNumber(snap.ClickPower))),
		totalStyle.Render(fmt.Sprintf("total %s", formatNumber(snap.TotalGoldEarned))),
	}, dimStyle.Render("  |  "))

	return paneStyle.Width(width - 2).Render(stats)
}

// renderMiningPane renders the click prompt and cooldown gauge.
func renderMiningPane(snap game.Snapshot, width int) string {
	var line string
	if snap.ClickReady {
		line = readyStyle.Render("[ SPACE ] Mine gold!") + "  " + cooldownGauge(snap)
	} else {
		remaining := float64(snap.CooldownRemaining.Milliseconds()) / 1000
		line = coolingStyle.Render(fmt.Sprintf("Recovering... %.1fs", remaining)) + "  " + cooldownGauge(snap)
	}

	counts := dimStyle.Render(fmt.Sprintf(
		"clicks: %d   upgrades: %d   achievements: %d/%d",
		snap.TotalClicks, snap.TotalUpgradesPurchased,
		snap.AchievementsCompleted, len(snap.Achievements),
	))

	return paneStyle.Width(width - 2).Render(line + "\n" + counts)
}

// cooldownGauge renders the click readiness bar. Full means a click will
// land right now.
func cooldownGauge(snap game.Snapshot) string {
	filled := cooldownGaugeWidth
	if snap.ClickCooldown > 0 && snap.CooldownRemaining > 0 {
		elapsed := snap.ClickCooldown - snap.CooldownRemaining
		filled = int(float64(cooldownGaugeWidth) * float64(elapsed) / float64(snap.ClickCooldown))
		if filled > cooldownGaugeWidth {
			filled = cooldownGaugeWidth
		}
		if filled < 0 {
			filled = 0
		}
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", cooldownGaugeWidth-filled)
	if snap.ClickReady {
		return readyStyle.Render(bar)
	}
	return coolingStyle.Render(bar)
}

// renderTabs renders the view selector line.
func renderTabs(active game.View, width int) string {
	labels := []struct {
		view  game.View
		title string
	}{
		{game.ViewPassive, "[1] Passive"},
		{game.ViewClick, "[2] Click"},
		{game.ViewAchievements, "[3] Achievements"},
	}

	tabs := make([]string, len(labels))
	for i, l := range labels {
		if l.view == active {
			tabs[i] = activeTabStyle.Render(l.title)
		} else {
			tabs[i] = tabStyle.Render(l.title)
		}
	}

	return centerText(strings.Join(tabs, " "), width)
}

// renderUpgradeList renders the active view's upgrade rows.
func renderUpgradeList(snap game.Snapshot, width int) string {
	if len(snap.Upgrades) == 0 {
		return paneStyle.Width(width - 2).Render(dimStyle.Render("Nothing for sale here."))
	}

	unit := "/s"
	if snap.View == game.ViewClick {
		unit = "/click"
	}

	var b strings.Builder
	for i, u := range snap.Upgrades {
		if i > 0 {
			b.WriteString("\n")
		}

		cursor := "  "
		if u.Selected {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%-18s x%-4d %10s  +%s%s",
			cursor, u.Name, u.Owned, formatNumber(u.Cost), formatNumber(u.Production), unit)

		switch {
		case u.Selected:
			b.WriteString(selectedRowStyle.Render(row))
		case u.Affordable:
			b.WriteString(affordStyle.Render(row))
		default:
			b.WriteString(lockedStyle.Render(row))
		}

		if u.Selected {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render("    " + u.Description))
		}
	}

	return paneStyle.Width(width - 2).Render(b.String())
}

// renderAchievementList renders the achievement rows with progress.
func renderAchievementList(snap game.Snapshot, width int) string {
	var b strings.Builder
	for i, a := range snap.Achievements {
		if i > 0 {
			b.WriteString("\n")
		}

		cursor := "  "
		if a.Selected {
			cursor = "> "
		}

		mark := "[ ]"
		if a.Completed {
			mark = "[x]"
		}

		progress := a.Progress
		if progress > a.Target {
			progress = a.Target
		}
		row := fmt.Sprintf("%s%s %-18s %s / %s",
			cursor, mark, a.Name, formatNumber(progress), formatNumber(a.Target))

		switch {
		case a.Selected:
			b.WriteString(selectedRowStyle.Render(row))
		case a.Completed:
			b.WriteString(doneStyle.Render(row))
		default:
			b.WriteString(lockedStyle.Render(row))
		}

		if a.Selected {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render("    " + a.Description))
		}
	}

	return paneStyle.Width(width - 2).Render(b.String())
}

// centerText centers a single line within width, accounting for ANSI codes.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
