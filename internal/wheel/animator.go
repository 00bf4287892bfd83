package wheel

import (
	"math"
	"math/rand"

	"spinwheel-cart-demo/internal/model"
)

// SpinState tracks where the wheel is in its idle → spinning → settled cycle.
type SpinState int

const (
	StateIdle SpinState = iota
	StateSpinning
	StateSettled
)

const (
	// Every spin makes at least minFullSpins complete turns before the
	// alignment angle, plus up to extraFullSpins more.
	minFullSpins   = 6
	extraFullSpins = 4
)

// Animator owns the wheel's rotation accumulator and the pending spin
// outcome. Rotation only ever grows: the target handed to the presentation
// layer is cumulative, so a repeated spin never snaps the wheel back.
type Animator struct {
	rng      *rand.Rand
	state    SpinState
	rotation float64
	pending  *model.PrizeOutcome
}

func NewAnimator(src rand.Source) *Animator {
	return &Animator{rng: rand.New(src)}
}

// PlanSpin returns the rotation delta, in degrees, that brings the center of
// the given segment under the pointer after 6-10 full extra turns.
//
// Segments are laid out clockwise in table order with segment 0 starting at
// the pointer (-90° in screen coordinates, i.e. the top of the wheel), each
// spanning 360/tableSize degrees.
func (a *Animator) PlanSpin(outcomeIndex, tableSize int) float64 {
	arc := 360.0 / float64(tableSize)
	segmentCenter := -90.0 + float64(outcomeIndex)*arc + arc/2

	alignment := math.Mod(360-math.Mod(segmentCenter+90, 360), 360)
	fullSpins := minFullSpins + a.rng.Intn(extraFullSpins+1)

	return float64(fullSpins)*360 + alignment
}

// Spin records the drawn outcome as pending and advances the rotation
// accumulator by a freshly planned delta. Returns the new cumulative rotation
// target. A request while a spin is already in flight is rejected as a no-op
// and reports ok=false.
func (a *Animator) Spin(outcome model.PrizeOutcome, outcomeIndex, tableSize int) (float64, bool) {
	if a.state == StateSpinning {
		return a.rotation, false
	}

	a.rotation += a.PlanSpin(outcomeIndex, tableSize)
	pending := outcome
	a.pending = &pending
	a.state = StateSpinning
	return a.rotation, true
}

// Settle reports the pending outcome exactly once, when the presentation
// layer signals that the animation has visually come to rest. The pending
// marker is cleared on the first report, so a duplicate completion signal is
// a no-op rather than a double win.
func (a *Animator) Settle() (*model.PrizeOutcome, bool) {
	if a.state != StateSpinning || a.pending == nil {
		return nil, false
	}

	outcome := a.pending
	a.pending = nil
	a.state = StateSettled
	return outcome, true
}

// Rotation returns the cumulative rotation target in degrees.
func (a *Animator) Rotation() float64 {
	return a.rotation
}

// Spinning reports whether a spin is in flight; user input is disabled while
// it is.
func (a *Animator) Spinning() bool {
	return a.state == StateSpinning
}

// State returns the current lifecycle phase.
func (a *Animator) State() SpinState {
	return a.state
}
