package model

import (
	"fmt"
	"math"
)

// probSumTolerance absorbs floating-point drift when checking that the
// declared probabilities form a full distribution.
const probSumTolerance = 1e-6

// PrizeOutcome is one weighted entry of the wheel's result set. Immutable
// once the table is loaded.
type PrizeOutcome struct {
	ID              string  `json:"id"`
	Label           string  `json:"label"`
	DiscountPercent int     `json:"discount_percent"`
	Probability     float64 `json:"probability"`
}

// PrizeTable is the full outcome set in wheel layout order. Order is
// significant: it defines segment geometry and the draw's tie-break.
type PrizeTable []PrizeOutcome

// Validate checks the configuration-load invariants: a non-empty table,
// per-entry probabilities in (0,1], discounts >= 0, unique ids, and
// probabilities summing to 1.0 within tolerance. Violations are not
// recoverable at runtime; callers fail fast.
func (t PrizeTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("prize table is empty")
	}

	seen := make(map[string]struct{}, len(t))
	sum := 0.0
	for i, o := range t {
		if o.ID == "" {
			return fmt.Errorf("prize table entry %d has no id", i)
		}
		if _, dup := seen[o.ID]; dup {
			return fmt.Errorf("prize table entry %d: duplicate id %q", i, o.ID)
		}
		seen[o.ID] = struct{}{}

		if o.Probability <= 0 || o.Probability > 1 {
			return fmt.Errorf("prize table entry %q: probability %v out of (0,1]", o.ID, o.Probability)
		}
		if o.DiscountPercent < 0 {
			return fmt.Errorf("prize table entry %q: negative discount", o.ID)
		}
		sum += o.Probability
	}

	if math.Abs(sum-1.0) > probSumTolerance {
		return fmt.Errorf("prize table probabilities sum to %v, want 1.0", sum)
	}
	return nil
}

// IndexOf returns the layout position of the outcome with the given id, or
// -1 when it is not part of the table.
func (t PrizeTable) IndexOf(id string) int {
	for i, o := range t {
		if o.ID == id {
			return i
		}
	}
	return -1
}
