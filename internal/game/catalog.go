package game

// The catalog is fixed constant data: both tables are defined here and
// nowhere else. Callers get fresh copies so sessions never share mutable
// upgrade state.

// DefaultUpgrades returns the full upgrade catalog with nothing owned.
func DefaultUpgrades() []Upgrade {
	return []Upgrade{
		// Passive generators
		{Name: "Pickaxe", Description: "Basic mining tool (+0.1 gold/sec)", BaseCost: 10, CostMultiplier: 1.15, BaseProduction: 0.1, Kind: KindPassive},
		{Name: "Shovel", Description: "Dig faster (+0.5 gold/sec)", BaseCost: 50, CostMultiplier: 1.15, BaseProduction: 0.5, Kind: KindPassive},
		{Name: "Drill", Description: "Mechanical mining (+2.0 gold/sec)", BaseCost: 250, CostMultiplier: 1.15, BaseProduction: 2.0, Kind: KindPassive},
		{Name: "Excavator", Description: "Heavy machinery (+8.0 gold/sec)", BaseCost: 1000, CostMultiplier: 1.15, BaseProduction: 8.0, Kind: KindPassive},
		{Name: "Mine Shaft", Description: "Deep mining operation (+30.0 gold/sec)", BaseCost: 5000, CostMultiplier: 1.15, BaseProduction: 30.0, Kind: KindPassive},
		{Name: "Gold Factory", Description: "Automated gold production (+100.0 gold/sec)", BaseCost: 25000, CostMultiplier: 1.15, BaseProduction: 100.0, Kind: KindPassive},

		// Click boosters
		{Name: "Strong Arms", Description: "Better swinging (+1 gold per click)", BaseCost: 25, CostMultiplier: 1.2, BaseProduction: 1.0, Kind: KindClick},
		{Name: "Steel Tools", Description: "Sharper equipment (+2 gold per click)", BaseCost: 100, CostMultiplier: 1.2, BaseProduction: 2.0, Kind: KindClick},
		{Name: "Power Gloves", Description: "Enhanced grip (+5 gold per click)", BaseCost: 500, CostMultiplier: 1.2, BaseProduction: 5.0, Kind: KindClick},
		{Name: "Hydraulic Hammer", Description: "Mechanized clicking (+10 gold per click)", BaseCost: 2500, CostMultiplier: 1.2, BaseProduction: 10.0, Kind: KindClick},
		{Name: "Diamond Drill Bit", Description: "Ultimate mining power (+25 gold per click)", BaseCost: 10000, CostMultiplier: 1.2, BaseProduction: 25.0, Kind: KindClick},
	}
}

// DefaultAchievements returns the full achievement catalog, all unearned.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{Name: "First Steps", Description: "Earn 100 total gold", Metric: MetricTotalGold, Target: 100},
		{Name: "Getting Rich", Description: "Earn 10,000 total gold", Metric: MetricTotalGold, Target: 10000},
		{Name: "Millionaire", Description: "Earn 1,000,000 total gold", Metric: MetricTotalGold, Target: 1000000},
		{Name: "Passive Income", Description: "Reach 10 gold per second", Metric: MetricGoldPerSecond, Target: 10},
		{Name: "Gold Rush", Description: "Reach 100 gold per second", Metric: MetricGoldPerSecond, Target: 100},
		{Name: "Click Master", Description: "Click 1,000 times", Metric: MetricTotalClicks, Target: 1000},
		{Name: "Power Clicker", Description: "Reach 50 gold per click", Metric: MetricClickPower, Target: 50},
		{Name: "Upgrade Collector", Description: "Purchase 50 upgrades", Metric: MetricUpgradesPurchased, Target: 50},
	}
}
