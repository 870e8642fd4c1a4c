package game

import "time"

// UpgradeItem is one row of the active upgrade list, precomputed for display.
type UpgradeItem struct {
	Name        string
	Description string
	Owned       uint64
	Cost        float64 // price of the next unit
	Production  float64 // per-unit contribution (gold/sec or gold/click)
	Kind        Kind
	Affordable  bool
	Selected    bool
}

// AchievementItem is one row of the achievement list with live progress.
type AchievementItem struct {
	Name        string
	Description string
	Completed   bool
	Progress    float64
	Target      float64
	Selected    bool
}

// Snapshot is the read-only view of a session handed to the render layer
// after every event. It carries everything a frame needs so the renderer
// never touches live state.
type Snapshot struct {
	Gold            float64
	GoldPerSecond   float64
	ClickPower      float64
	TotalGoldEarned float64

	TotalClicks            uint64
	TotalUpgradesPurchased uint64

	View          View
	SelectedIndex int
	HelpVisible   bool

	ClickReady        bool
	CooldownRemaining time.Duration
	ClickCooldown     time.Duration

	Upgrades              []UpgradeItem // the active view's list; empty on the achievements view
	Achievements          []AchievementItem
	AchievementsCompleted int
}

// Snapshot captures the current session state for rendering, with the click
// cooldown evaluated against now.
func (s *State) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		Gold:                   s.Gold,
		GoldPerSecond:          s.GoldPerSecond,
		ClickPower:             s.ClickPower,
		TotalGoldEarned:        s.TotalGoldEarned,
		TotalClicks:            s.TotalClicks,
		TotalUpgradesPurchased: s.TotalUpgradesPurchased,
		View:                   s.view,
		SelectedIndex:          s.selected,
		HelpVisible:            s.showHelp,
		ClickCooldown:          s.clickCooldown,
	}

	remaining := s.clickCooldown - now.Sub(s.lastClick)
	if remaining < 0 {
		remaining = 0
	}
	snap.CooldownRemaining = remaining
	snap.ClickReady = remaining == 0

	visible := s.visibleUpgrades()
	snap.Upgrades = make([]UpgradeItem, 0, len(visible))
	for pos, i := range visible {
		u := &s.Upgrades[i]
		snap.Upgrades = append(snap.Upgrades, UpgradeItem{
			Name:        u.Name,
			Description: u.Description,
			Owned:       u.Owned,
			Cost:        u.CurrentCost(),
			Production:  u.BaseProduction,
			Kind:        u.Kind,
			Affordable:  u.CanAfford(s.Gold),
			Selected:    pos == s.selected,
		})
	}

	stats := s.stats()
	snap.Achievements = make([]AchievementItem, 0, len(s.Achievements))
	for i := range s.Achievements {
		a := &s.Achievements[i]
		snap.Achievements = append(snap.Achievements, AchievementItem{
			Name:        a.Name,
			Description: a.Description,
			Completed:   a.Completed,
			Progress:    stats.Value(a.Metric),
			Target:      a.Target,
			Selected:    s.view == ViewAchievements && i == s.selected,
		})
		if a.Completed {
			snap.AchievementsCompleted++
		}
	}

	return snap
}
