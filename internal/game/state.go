package game

import "time"

// View identifies which list the player is looking at.
type View int

const (
	ViewPassive View = iota
	ViewClick
	ViewAchievements
)

// String returns a human-readable name for the view.
func (v View) String() string {
	switch v {
	case ViewPassive:
		return "passive"
	case ViewClick:
		return "click"
	case ViewAchievements:
		return "achievements"
	default:
		return "unknown"
	}
}

// DefaultClickCooldown is the minimum gap between two effective clicks.
const DefaultClickCooldown = 500 * time.Millisecond

// Options tunes the session parameters the runtime config controls.
// The catalog itself is not configurable.
type Options struct {
	ClickCooldown time.Duration // 0 means DefaultClickCooldown
	StartingGold  float64
}

// State is the aggregate root for one game session. It is owned by a single
// driver loop; none of its methods are safe for concurrent use. Every
// operation is total: invalid preconditions (can't afford, cooldown active,
// empty list) degrade to no-ops rather than errors.
type State struct {
	Gold            float64
	GoldPerSecond   float64 // derived, rewritten only by Tick
	ClickPower      float64 // derived, rewritten only by Tick
	TotalGoldEarned float64 // never debited

	TotalClicks            uint64
	TotalUpgradesPurchased uint64

	Upgrades     []Upgrade
	Achievements []Achievement

	selected int
	view     View
	showHelp bool

	lastUpdate    time.Time
	lastClick     time.Time
	clickCooldown time.Duration
	startedAt     time.Time
}

// New creates a session starting at now with the default catalog and
// default options.
func New(now time.Time) *State {
	return NewWithOptions(now, Options{})
}

// NewWithOptions creates a session starting at now.
func NewWithOptions(now time.Time, opts Options) *State {
	cooldown := opts.ClickCooldown
	if cooldown <= 0 {
		cooldown = DefaultClickCooldown
	}
	return &State{
		Gold:            opts.StartingGold,
		ClickPower:      1,
		TotalGoldEarned: opts.StartingGold,
		Upgrades:        DefaultUpgrades(),
		Achievements:    DefaultAchievements(),
		lastUpdate:      now,
		lastClick:       now.Add(-cooldown), // the first click is never gated
		clickCooldown:   cooldown,
		startedAt:       now,
	}
}

// Tick advances the simulation to now: recomputes the derived rates from
// the upgrade ledger, accrues elapsed-time gold, and evaluates achievements
// against the fresh aggregates. This is the only writer of GoldPerSecond
// and ClickPower.
func (s *State) Tick(now time.Time) {
	delta := now.Sub(s.lastUpdate).Seconds()
	if delta < 0 {
		delta = 0
	}
	s.lastUpdate = now

	var passive, click float64
	for i := range s.Upgrades {
		u := &s.Upgrades[i]
		switch u.Kind {
		case KindPassive:
			passive += u.CurrentProduction()
		case KindClick:
			click += u.CurrentProduction()
		}
	}
	s.GoldPerSecond = passive
	s.ClickPower = 1 + click // bare hands are always worth one gold

	earned := s.GoldPerSecond * delta
	s.Gold += earned
	s.TotalGoldEarned += earned

	EvaluateAchievements(s.Achievements, s.stats())
}

// Click performs the manual mining action. Inside the cooldown window it is
// a silent no-op, not an error, and the attempt is not buffered.
func (s *State) Click(now time.Time) {
	if now.Sub(s.lastClick) < s.clickCooldown {
		return
	}
	s.Gold += s.ClickPower
	s.TotalGoldEarned += s.ClickPower
	s.TotalClicks++
	s.lastClick = now
}

// PurchaseSelected buys the highlighted upgrade if the balance covers it.
// On the achievements view, or when the selection is unaffordable or out of
// range, nothing happens.
func (s *State) PurchaseSelected() {
	if s.view == ViewAchievements {
		return
	}
	visible := s.visibleUpgrades()
	if s.selected < 0 || s.selected >= len(visible) {
		return
	}
	u := &s.Upgrades[visible[s.selected]]
	if !u.CanAfford(s.Gold) {
		return
	}
	s.Gold -= u.Purchase()
	s.TotalUpgradesPurchased++
}

// SelectNext moves the selection down, clamped to the active list.
func (s *State) SelectNext() {
	if n := s.listLen(); s.selected < n-1 {
		s.selected++
	}
}

// SelectPrevious moves the selection up, clamped to zero.
func (s *State) SelectPrevious() {
	if s.selected > 0 {
		s.selected--
	}
}

// SwitchView changes the active list. Switching to a different view resets
// the selection; re-selecting the current view keeps it.
func (s *State) SwitchView(v View) {
	if s.view == v {
		return
	}
	s.view = v
	s.selected = 0
}

// ToggleHelp flips the help footer.
func (s *State) ToggleHelp() {
	s.showHelp = !s.showHelp
}

// CurrentView returns the active view.
func (s *State) CurrentView() View {
	return s.view
}

// SelectedIndex returns the position within the active view's list.
func (s *State) SelectedIndex() int {
	return s.selected
}

// HelpVisible reports whether the expanded help footer is shown.
func (s *State) HelpVisible() bool {
	return s.showHelp
}

// Elapsed returns how long the session has been running, as of the last tick.
func (s *State) Elapsed() time.Duration {
	return s.lastUpdate.Sub(s.startedAt)
}

// CompletedAchievements returns the names of latched achievements in
// catalog order.
func (s *State) CompletedAchievements() []string {
	var names []string
	for i := range s.Achievements {
		if s.Achievements[i].Completed {
			names = append(names, s.Achievements[i].Name)
		}
	}
	return names
}

// visibleUpgrades returns indices into Upgrades for the active view, in
// catalog order. Selection by filtered position therefore resolves to the
// master entry by construction; the achievements view has no upgrade list.
func (s *State) visibleUpgrades() []int {
	var kind Kind
	switch s.view {
	case ViewPassive:
		kind = KindPassive
	case ViewClick:
		kind = KindClick
	default:
		return nil
	}
	idx := make([]int, 0, len(s.Upgrades))
	for i := range s.Upgrades {
		if s.Upgrades[i].Kind == kind {
			idx = append(idx, i)
		}
	}
	return idx
}

// listLen returns the size of the active view's list.
func (s *State) listLen() int {
	if s.view == ViewAchievements {
		return len(s.Achievements)
	}
	return len(s.visibleUpgrades())
}

func (s *State) stats() Stats {
	return Stats{
		TotalGoldEarned:   s.TotalGoldEarned,
		GoldPerSecond:     s.GoldPerSecond,
		ClickPower:        s.ClickPower,
		TotalClicks:       s.TotalClicks,
		UpgradesPurchased: s.TotalUpgradesPurchased,
	}
}
