package game

import (
	"math"
	"testing"
	"time"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func upgradeByName(t *testing.T, s *State, name string) *Upgrade {
	t.Helper()
	for i := range s.Upgrades {
		if s.Upgrades[i].Name == name {
			return &s.Upgrades[i]
		}
	}
	t.Fatalf("upgrade %q not in catalog", name)
	return nil
}

func TestTickWithNoUpgrades(t *testing.T) {
	s := New(t0)

	// 10 seconds at zero rate earns nothing.
	s.Tick(t0.Add(10 * time.Second))

	if s.Gold != 0 {
		t.Errorf("Gold = %v, want 0", s.Gold)
	}
	if s.GoldPerSecond != 0 {
		t.Errorf("GoldPerSecond = %v, want 0", s.GoldPerSecond)
	}
	if s.ClickPower != 1 {
		t.Errorf("ClickPower = %v, want base 1", s.ClickPower)
	}
}

func TestTickAccrual(t *testing.T) {
	s := New(t0)
	upgradeByName(t, s, "Pickaxe").Owned = 5

	// One tick recomputes the rate (0.1 * 5) and accrues it over the delta.
	s.Tick(t0.Add(2 * time.Second))

	if math.Abs(s.Gold-1.0) > 1e-9 {
		t.Errorf("Gold = %v, want 1.0 (0.1*5 over 2s)", s.Gold)
	}
	if math.Abs(s.TotalGoldEarned-1.0) > 1e-9 {
		t.Errorf("TotalGoldEarned = %v, want 1.0", s.TotalGoldEarned)
	}
	if math.Abs(s.GoldPerSecond-0.5) > 1e-9 {
		t.Errorf("GoldPerSecond = %v, want 0.5", s.GoldPerSecond)
	}
}

func TestTickRecomputesClickPower(t *testing.T) {
	s := New(t0)
	upgradeByName(t, s, "Strong Arms").Owned = 2
	upgradeByName(t, s, "Steel Tools").Owned = 1

	s.Tick(t0.Add(100 * time.Millisecond))

	// 1 base + 2*1.0 + 1*2.0
	if math.Abs(s.ClickPower-5.0) > 1e-9 {
		t.Errorf("ClickPower = %v, want 5.0", s.ClickPower)
	}
	// Click upgrades contribute nothing to the passive rate.
	if s.GoldPerSecond != 0 {
		t.Errorf("GoldPerSecond = %v, want 0", s.GoldPerSecond)
	}
}

func TestTickNegativeDeltaClamped(t *testing.T) {
	s := New(t0)
	upgradeByName(t, s, "Pickaxe").Owned = 5
	s.Tick(t0.Add(time.Second))
	gold := s.Gold

	// Clock going backwards must not accrue (or debit) anything.
	s.Tick(t0.Add(-time.Minute))

	if s.Gold != gold {
		t.Errorf("Gold = %v after backwards tick, want unchanged %v", s.Gold, gold)
	}
}

func TestFirstClickNotGated(t *testing.T) {
	s := New(t0)

	s.Click(t0)

	if s.TotalClicks != 1 {
		t.Errorf("TotalClicks = %d, want 1 (first click must land)", s.TotalClicks)
	}
	if s.Gold != 1 {
		t.Errorf("Gold = %v, want 1 (base click power)", s.Gold)
	}
}

func TestClickCooldown(t *testing.T) {
	s := New(t0)

	s.Click(t0)
	s.Click(t0.Add(200 * time.Millisecond)) // inside the 500ms window: dropped

	if s.TotalClicks != 1 {
		t.Errorf("TotalClicks = %d after rapid double click, want 1", s.TotalClicks)
	}
	if s.Gold != 1 {
		t.Errorf("Gold = %v after rapid double click, want 1", s.Gold)
	}

	s.Click(t0.Add(500 * time.Millisecond)) // exactly the cooldown: counts

	if s.TotalClicks != 2 {
		t.Errorf("TotalClicks = %d after cooldown elapsed, want 2", s.TotalClicks)
	}
	if s.Gold != 2 {
		t.Errorf("Gold = %v after cooldown elapsed, want 2", s.Gold)
	}
}

func TestClickUsesCurrentClickPower(t *testing.T) {
	s := New(t0)
	upgradeByName(t, s, "Strong Arms").Owned = 4
	s.Tick(t0.Add(100 * time.Millisecond)) // recompute rates

	s.Click(t0.Add(time.Second))

	// 1 base + 4*1.0 per click
	if math.Abs(s.Gold-5.0) > 1e-9 {
		t.Errorf("Gold = %v after boosted click, want 5.0", s.Gold)
	}
	if math.Abs(s.TotalGoldEarned-5.0) > 1e-9 {
		t.Errorf("TotalGoldEarned = %v, want 5.0", s.TotalGoldEarned)
	}
}

func TestCustomCooldownOption(t *testing.T) {
	s := NewWithOptions(t0, Options{ClickCooldown: 50 * time.Millisecond})

	s.Click(t0)
	s.Click(t0.Add(60 * time.Millisecond))

	if s.TotalClicks != 2 {
		t.Errorf("TotalClicks = %d with 50ms cooldown, want 2", s.TotalClicks)
	}
}

func TestPurchaseSelectedDebitsExactly(t *testing.T) {
	s := New(t0)
	s.Gold = 10 // Pickaxe (first passive entry) costs exactly 10

	s.PurchaseSelected()

	if s.Gold != 0 {
		t.Errorf("Gold = %v after buying at exact balance, want 0", s.Gold)
	}
	if got := upgradeByName(t, s, "Pickaxe").Owned; got != 1 {
		t.Errorf("Pickaxe.Owned = %d, want 1", got)
	}
	if s.TotalUpgradesPurchased != 1 {
		t.Errorf("TotalUpgradesPurchased = %d, want 1", s.TotalUpgradesPurchased)
	}

	// Immediately unaffordable: state must be untouched.
	s.PurchaseSelected()

	if s.Gold != 0 {
		t.Errorf("Gold = %v after unaffordable attempt, want 0", s.Gold)
	}
	if got := upgradeByName(t, s, "Pickaxe").Owned; got != 1 {
		t.Errorf("Pickaxe.Owned = %d after unaffordable attempt, want 1", got)
	}
	if s.TotalUpgradesPurchased != 1 {
		t.Errorf("TotalUpgradesPurchased = %d after unaffordable attempt, want 1", s.TotalUpgradesPurchased)
	}
}

func TestPurchaseOnAchievementsViewIsNoop(t *testing.T) {
	s := New(t0)
	s.Gold = 1000000
	s.SwitchView(ViewAchievements)

	s.PurchaseSelected()

	if s.Gold != 1000000 {
		t.Errorf("Gold = %v, want unchanged on achievements view", s.Gold)
	}
	if s.TotalUpgradesPurchased != 0 {
		t.Errorf("TotalUpgradesPurchased = %d, want 0", s.TotalUpgradesPurchased)
	}
}

func TestFilteredPurchaseResolvesMasterEntry(t *testing.T) {
	s := New(t0)
	s.Gold = 100
	s.SwitchView(ViewClick)
	s.SelectNext() // position 1 in the click view: Steel Tools

	s.PurchaseSelected()

	if got := upgradeByName(t, s, "Steel Tools").Owned; got != 1 {
		t.Errorf("Steel Tools.Owned = %d, want 1", got)
	}
	// Position 1 of the master catalog (Shovel) must be untouched.
	if got := upgradeByName(t, s, "Shovel").Owned; got != 0 {
		t.Errorf("Shovel.Owned = %d, want 0 (filtered position leaked to master)", got)
	}
}

func TestSelectionClamps(t *testing.T) {
	s := New(t0)

	s.SelectPrevious()
	if s.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex = %d after underflow, want 0", s.SelectedIndex())
	}

	passiveCount := 0
	for i := range s.Upgrades {
		if s.Upgrades[i].Kind == KindPassive {
			passiveCount++
		}
	}
	for i := 0; i < passiveCount+5; i++ {
		s.SelectNext()
	}
	if s.SelectedIndex() != passiveCount-1 {
		t.Errorf("SelectedIndex = %d after overflow, want %d", s.SelectedIndex(), passiveCount-1)
	}
}

func TestSwitchViewResetsSelection(t *testing.T) {
	s := New(t0)
	s.SelectNext()
	s.SelectNext()

	// Same view: selection survives.
	s.SwitchView(ViewPassive)
	if s.SelectedIndex() != 2 {
		t.Errorf("SelectedIndex = %d after same-view switch, want 2", s.SelectedIndex())
	}

	// Different view: selection resets.
	s.SwitchView(ViewClick)
	if s.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex = %d after view change, want 0", s.SelectedIndex())
	}
	if s.CurrentView() != ViewClick {
		t.Errorf("CurrentView = %v, want %v", s.CurrentView(), ViewClick)
	}
}

func TestGoldNeverNegative(t *testing.T) {
	s := New(t0)
	now := t0

	// A busy session: click, tick, and buy whenever possible.
	for i := 0; i < 2000; i++ {
		now = now.Add(100 * time.Millisecond)
		s.Tick(now)
		s.Click(now)
		s.PurchaseSelected()

		if s.Gold < 0 {
			t.Fatalf("Gold = %v went negative at step %d", s.Gold, i)
		}
	}

	if s.TotalUpgradesPurchased == 0 {
		t.Error("scenario too weak: no upgrade was ever affordable")
	}
	if s.TotalGoldEarned < s.Gold {
		t.Errorf("TotalGoldEarned %v < Gold %v; earnings must dominate balance", s.TotalGoldEarned, s.Gold)
	}
}

func TestTotalGoldEarnedMonotonic(t *testing.T) {
	s := New(t0)
	s.Gold = 60
	prev := s.TotalGoldEarned
	now := t0

	check := func(op string) {
		t.Helper()
		if s.TotalGoldEarned < prev {
			t.Errorf("TotalGoldEarned decreased after %s: %v -> %v", op, prev, s.TotalGoldEarned)
		}
		prev = s.TotalGoldEarned
	}

	s.PurchaseSelected() // spends gold, earns nothing
	check("purchase")
	now = now.Add(time.Second)
	s.Tick(now)
	check("tick")
	s.Click(now)
	check("click")
}

func TestAchievementsCompleteDuringTick(t *testing.T) {
	s := New(t0)
	upgradeByName(t, s, "Gold Factory").Owned = 1 // 100 gold/sec

	s.Tick(t0.Add(2 * time.Second)) // 200 earned, 100/sec rate

	byName := func(name string) *Achievement {
		for i := range s.Achievements {
			if s.Achievements[i].Name == name {
				return &s.Achievements[i]
			}
		}
		t.Fatalf("achievement %q not in catalog", name)
		return nil
	}

	if !byName("First Steps").Completed {
		t.Error("First Steps (100 total gold) not completed after earning 200")
	}
	if !byName("Gold Rush").Completed {
		t.Error("Gold Rush (100 gold/sec) not completed at 100/sec")
	}
	if byName("Millionaire").Completed {
		t.Error("Millionaire completed far below target")
	}
}

func TestApplyDispatch(t *testing.T) {
	s := New(t0)
	s.Gold = 25

	s.Apply(ActionViewClick, t0)
	if s.CurrentView() != ViewClick {
		t.Fatalf("CurrentView = %v after ActionViewClick, want %v", s.CurrentView(), ViewClick)
	}

	s.Apply(ActionBuy, t0) // Strong Arms costs 25
	if got := upgradeByName(t, s, "Strong Arms").Owned; got != 1 {
		t.Errorf("Strong Arms.Owned = %d after ActionBuy, want 1", got)
	}

	s.Apply(ActionClick, t0)
	if s.TotalClicks != 1 {
		t.Errorf("TotalClicks = %d after ActionClick, want 1", s.TotalClicks)
	}

	s.Apply(ActionToggleHelp, t0)
	if !s.HelpVisible() {
		t.Error("help not visible after ActionToggleHelp")
	}

	// Quit and None are platform concerns; state must not change.
	before := *s
	s.Apply(ActionQuit, t0)
	s.Apply(ActionNone, t0)
	if s.TotalClicks != before.TotalClicks || s.Gold != before.Gold {
		t.Error("ActionQuit/ActionNone mutated the session")
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	s := New(t0)
	s.Gold = 30
	s.Tick(t0.Add(100 * time.Millisecond))
	s.Click(t0.Add(200 * time.Millisecond))

	snap := s.Snapshot(t0.Add(300 * time.Millisecond))

	if snap.Gold != s.Gold {
		t.Errorf("snapshot Gold = %v, want %v", snap.Gold, s.Gold)
	}
	if snap.View != ViewPassive {
		t.Errorf("snapshot View = %v, want %v", snap.View, ViewPassive)
	}
	if snap.ClickReady {
		t.Error("ClickReady = true only 100ms after a click")
	}
	if want := 400 * time.Millisecond; snap.CooldownRemaining != want {
		t.Errorf("CooldownRemaining = %v, want %v", snap.CooldownRemaining, want)
	}
	if len(snap.Upgrades) != 6 {
		t.Errorf("passive view has %d items, want 6", len(snap.Upgrades))
	}
	if !snap.Upgrades[0].Selected {
		t.Error("first item not marked selected")
	}
	if !snap.Upgrades[0].Affordable {
		t.Errorf("Pickaxe not affordable at gold=%v", snap.Gold)
	}
	if snap.Upgrades[5].Affordable {
		t.Error("Gold Factory affordable at starting gold")
	}
	if len(snap.Achievements) != 8 {
		t.Errorf("snapshot has %d achievements, want 8", len(snap.Achievements))
	}

	// Cooldown fully elapsed.
	snap = s.Snapshot(t0.Add(time.Hour))
	if !snap.ClickReady || snap.CooldownRemaining != 0 {
		t.Errorf("ClickReady=%v CooldownRemaining=%v long after a click, want true/0",
			snap.ClickReady, snap.CooldownRemaining)
	}
}
