package tui

import "fmt"

// formatNumber renders a gold amount compactly: 12.34, 1.23K, 4.56M.
func formatNumber(n float64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.2fM", n/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.2fK", n/1_000)
	default:
		return fmt.Sprintf("%.2f", n)
	}
}

// formatDuration renders a run duration as 12s, 3m05s or 2h14m.
func formatDuration(secs int) string {
	switch {
	case secs >= 3600:
		return fmt.Sprintf("%dh%02dm", secs/3600, (secs%3600)/60)
	case secs >= 60:
		return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}
