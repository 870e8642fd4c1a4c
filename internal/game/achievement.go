package game

// Metric selects which live aggregate an achievement is measured against.
type Metric int

const (
	MetricTotalGold         Metric = iota // total gold earned over the session
	MetricGoldPerSecond                   // current passive rate
	MetricTotalClicks                     // manual clicks performed
	MetricClickPower                      // current per-click reward
	MetricUpgradesPurchased               // upgrades bought, all kinds
)

// String returns a human-readable name for the metric.
func (m Metric) String() string {
	switch m {
	case MetricTotalGold:
		return "total gold"
	case MetricGoldPerSecond:
		return "gold/sec"
	case MetricTotalClicks:
		return "clicks"
	case MetricClickPower:
		return "gold/click"
	case MetricUpgradesPurchased:
		return "upgrades"
	default:
		return "unknown"
	}
}

// Stats is the set of live aggregates captured once per tick for
// achievement evaluation.
type Stats struct {
	TotalGoldEarned   float64
	GoldPerSecond     float64
	ClickPower        float64
	TotalClicks       uint64
	UpgradesPurchased uint64
}

// Value returns the aggregate matching the given metric.
func (s Stats) Value(m Metric) float64 {
	switch m {
	case MetricTotalGold:
		return s.TotalGoldEarned
	case MetricGoldPerSecond:
		return s.GoldPerSecond
	case MetricTotalClicks:
		return float64(s.TotalClicks)
	case MetricClickPower:
		return s.ClickPower
	case MetricUpgradesPurchased:
		return float64(s.UpgradesPurchased)
	default:
		return 0
	}
}

// Achievement is a long-run milestone. Completed is a latch: once true it
// never reverts, even if the underlying metric later drops below target.
type Achievement struct {
	Name        string
	Description string
	Metric      Metric
	Target      float64
	Completed   bool
}

// EvaluateAchievements latches every not-yet-completed achievement whose
// metric has reached its target. Completed entries are left untouched, so
// evaluation is idempotent and order-independent. Returns the number of
// achievements newly completed by this call.
func EvaluateAchievements(achievements []Achievement, s Stats) int {
	newly := 0
	for i := range achievements {
		a := &achievements[i]
		if a.Completed {
			continue
		}
		if s.Value(a.Metric) >= a.Target {
			a.Completed = true
			newly++
		}
	}
	return newly
}
