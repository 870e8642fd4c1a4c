package game

import (
	"math"
	"testing"
)

func TestCurrentCostCurve(t *testing.T) {
	u := Upgrade{Name: "Pickaxe", BaseCost: 10, CostMultiplier: 1.15, BaseProduction: 0.1, Kind: KindPassive}

	// cost(owned) = base * multiplier^owned
	for owned := uint64(0); owned < 20; owned++ {
		u.Owned = owned
		want := 10 * math.Pow(1.15, float64(owned))
		if got := u.CurrentCost(); math.Abs(got-want) > 1e-9 {
			t.Errorf("CurrentCost() with owned=%d = %v, want %v", owned, got, want)
		}
	}

	// Strictly increasing when multiplier > 1
	u.Owned = 0
	prev := u.CurrentCost()
	for owned := uint64(1); owned < 20; owned++ {
		u.Owned = owned
		cost := u.CurrentCost()
		if cost <= prev {
			t.Errorf("cost not strictly increasing: owned=%d cost=%v prev=%v", owned, cost, prev)
		}
		prev = cost
	}
}

func TestCurrentProductionLinear(t *testing.T) {
	u := Upgrade{Name: "Drill", BaseCost: 250, CostMultiplier: 1.15, BaseProduction: 2.0, Kind: KindPassive}

	for owned := uint64(0); owned < 10; owned++ {
		u.Owned = owned
		want := 2.0 * float64(owned)
		if got := u.CurrentProduction(); got != want {
			t.Errorf("CurrentProduction() with owned=%d = %v, want %v", owned, got, want)
		}
	}
}

func TestCanAffordBoundary(t *testing.T) {
	u := Upgrade{Name: "Shovel", BaseCost: 50, CostMultiplier: 1.15, BaseProduction: 0.5, Kind: KindPassive}

	if u.CanAfford(49.99) {
		t.Error("CanAfford(49.99) = true, want false")
	}
	if !u.CanAfford(50) {
		t.Error("CanAfford(50) = false, want true (exact balance is enough)")
	}
	if !u.CanAfford(1000) {
		t.Error("CanAfford(1000) = false, want true")
	}
}

func TestPurchaseReturnsPriorCost(t *testing.T) {
	u := Upgrade{Name: "Pickaxe", BaseCost: 10, CostMultiplier: 1.5, BaseProduction: 0.1, Kind: KindPassive}

	cost := u.Purchase()
	if cost != 10 {
		t.Errorf("first Purchase() returned %v, want the pre-increment cost 10", cost)
	}
	if u.Owned != 1 {
		t.Errorf("Owned = %d after one purchase, want 1", u.Owned)
	}

	cost = u.Purchase()
	if cost != 15 {
		t.Errorf("second Purchase() returned %v, want 15", cost)
	}
}

func TestPurchaseTotalSpendGeometric(t *testing.T) {
	u := Upgrade{Name: "Pickaxe", BaseCost: 10, CostMultiplier: 1.15, BaseProduction: 0.1, Kind: KindPassive}

	const n = 12
	var spent float64
	for i := 0; i < n; i++ {
		spent += u.Purchase()
	}

	if u.Owned != n {
		t.Errorf("Owned = %d after %d purchases, want %d", u.Owned, n, n)
	}

	// Geometric series: base * (m^n - 1) / (m - 1)
	want := 10 * (math.Pow(1.15, n) - 1) / 0.15
	if math.Abs(spent-want) > 1e-6 {
		t.Errorf("total spend = %v, want %v", spent, want)
	}
}
