// Package loyalty derives the customer's display tier from the account
// balance. Pure computation, no I/O.
package loyalty

import "math"

// Tier is one named bracket of the loyalty ladder.
type Tier struct {
	Name       string  `json:"name"`
	MinBalance float64 `json:"minimumBalance"`
}

// DefaultTiers is the DinoBank ladder, ascending and starting at zero so
// every balance lands somewhere.
var DefaultTiers = []Tier{
	{Name: "Dino Egg", MinBalance: 0},
	{Name: "Velociraptor", MinBalance: 10_000},
	{Name: "Triceratops", MinBalance: 50_000},
	{Name: "T-Rex King", MinBalance: 250_000},
}

// Standing is the derived loyalty position for one balance.
type Standing struct {
	Current  Tier    `json:"current"`
	Next     *Tier   `json:"next,omitempty"`
	Progress float64 `json:"progressPercent"`
}

// StandingFor picks the tier for balance from tiers, which must be sorted
// ascending by MinBalance with strictly increasing thresholds and a zero
// first entry. Current is the highest threshold not exceeding the floored
// balance; Next is the nearest one above it, absent at the top, where
// progress pins at 100. An empty table yields the zero Standing.
func StandingFor(balance float64, tiers []Tier) Standing {
	if len(tiers) == 0 {
		return Standing{}
	}

	points := math.Floor(balance)

	current := tiers[0]
	for i := len(tiers) - 1; i >= 0; i-- {
		if points >= tiers[i].MinBalance {
			current = tiers[i]
			break
		}
	}

	var next *Tier
	for i := range tiers {
		if tiers[i].MinBalance > points {
			t := tiers[i]
			next = &t
			break
		}
	}

	progress := 100.0
	if next != nil {
		progress = (points - current.MinBalance) / (next.MinBalance - current.MinBalance) * 100
		progress = math.Max(0, math.Min(100, progress))
	}

	return Standing{Current: current, Next: next, Progress: progress}
}
