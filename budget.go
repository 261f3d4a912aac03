package otv

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// BudgetEntry is one maneuver accounted for in a DeltaVBudget.
type BudgetEntry struct {
	Label string
	Δv    float64 // km/s
}

// DeltaVBudget accumulates the cost of each maneuver. The zero value is an empty budget.
// The total never decreases.
type DeltaVBudget struct {
	entries []BudgetEntry
}

// Add accounts for a maneuver. Negative or non finite costs are rejected.
func (b *DeltaVBudget) Add(label string, Δv float64) error {
	if !isFinite(Δv) || Δv < 0 {
		return newValidationError("delta_v", Δv, fmt.Sprintf("for %q must be a finite non negative value", label))
	}
	b.entries = append(b.entries, BudgetEntry{label, Δv})
	return nil
}

// Total returns the sum of all maneuvers in km/s.
func (b DeltaVBudget) Total() float64 {
	Δvs := make([]float64, len(b.entries))
	for i, e := range b.entries {
		Δvs[i] = e.Δv
	}
	return floats.Sum(Δvs)
}

// Entries returns a copy of the maneuvers in the order they were added.
func (b DeltaVBudget) Entries() []BudgetEntry {
	return append([]BudgetEntry(nil), b.entries...)
}

// String implements the Stringer interface.
func (b DeltaVBudget) String() string {
	parts := make([]string, len(b.entries))
	for i, e := range b.entries {
		parts[i] = fmt.Sprintf("%s=%.3f", e.Label, e.Δv)
	}
	return fmt.Sprintf("Δv=%.3f km/s [%s]", b.Total(), strings.Join(parts, " "))
}
