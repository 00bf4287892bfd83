package wheel

import (
	"math/rand"

	"spinwheel-cart-demo/internal/model"
)

// Selector draws one outcome per spin from a prize table using the table's
// declared weights.
type Selector struct {
	rng *rand.Rand
}

// NewSelector builds a selector around the given random source. Tests inject
// a seeded source to pin the draw.
func NewSelector(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// Draw picks a categorical sample: one uniform r in [0,1), then a cumulative
// walk over the table in layout order, returning the first outcome whose
// running sum reaches r. Floating-point slack is absorbed by the last entry.
// An empty table is a programming error and panics.
func (s *Selector) Draw(table model.PrizeTable) model.PrizeOutcome {
	if len(table) == 0 {
		panic("wheel: draw from empty prize table")
	}

	r := s.rng.Float64()
	cumulative := 0.0
	for _, outcome := range table {
		cumulative += outcome.Probability
		if r <= cumulative {
			return outcome
		}
	}
	return table[len(table)-1]
}
