package game

import "math"

// Kind distinguishes what an upgrade contributes to.
type Kind int

const (
	KindPassive Kind = iota // feeds the automatic gold-per-second rate
	KindClick               // feeds the manual click reward
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPassive:
		return "passive"
	case KindClick:
		return "click"
	default:
		return "unknown"
	}
}

// Upgrade is a purchasable generator from the fixed catalog.
// Owned only ever grows, and only through Purchase.
type Upgrade struct {
	Name           string
	Description    string
	BaseCost       float64 // cost of the first unit, > 0
	CostMultiplier float64 // > 1, so the price curve is strictly increasing
	BaseProduction float64 // contribution of a single owned unit
	Owned          uint64
	Kind           Kind
}

// CurrentCost returns the price of the next unit:
// BaseCost * CostMultiplier^Owned.
func (u *Upgrade) CurrentCost() float64 {
	return u.BaseCost * math.Pow(u.CostMultiplier, float64(u.Owned))
}

// CurrentProduction returns the combined output of all owned units.
func (u *Upgrade) CurrentProduction() float64 {
	return u.BaseProduction * float64(u.Owned)
}

// CanAfford reports whether balance covers the next unit.
func (u *Upgrade) CanAfford(balance float64) bool {
	return balance >= u.CurrentCost()
}

// Purchase increments Owned and returns the cost that applied before the
// increment. It performs no affordability check and cannot fail; callers
// must gate on CanAfford and debit the returned amount.
func (u *Upgrade) Purchase() float64 {
	cost := u.CurrentCost()
	u.Owned++
	return cost
}
