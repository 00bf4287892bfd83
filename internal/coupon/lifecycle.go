package coupon

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"spinwheel-cart-demo/internal/model"
)

// Lifecycle owns the single live coupon of a session. It is not safe for
// concurrent use; the owning session serializes access.
type Lifecycle struct {
	current *model.Coupon
	// spun stays true even for zero-discount outcomes, which mint no coupon.
	spun bool
}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// CreateFromOutcome mints the session's coupon for a won outcome, replacing
// any previous one. A zero-discount outcome ("Try Again") yields no coupon
// but still marks the session as having spun.
func (l *Lifecycle) CreateFromOutcome(outcome model.PrizeOutcome) *model.Coupon {
	l.spun = true
	if outcome.DiscountPercent <= 0 {
		return nil
	}

	l.current = &model.Coupon{
		Code:    newCode(outcome.DiscountPercent),
		Label:   outcome.Label,
		Percent: outcome.DiscountPercent,
		Applied: false,
		WonAt:   time.Now(),
	}
	return l.current
}

// MarkApplied flags the live coupon as applied to the cart. No-op without a
// live coupon.
func (l *Lifecycle) MarkApplied() {
	if l.current != nil {
		l.current.Applied = true
	}
}

// MarkIgnored returns the live coupon to the unapplied state. Unlike Clear,
// the coupon stays available for a later explicit apply.
func (l *Lifecycle) MarkIgnored() {
	if l.current != nil {
		l.current.Applied = false
	}
}

// Clear drops the live coupon entirely.
func (l *Lifecycle) Clear() {
	l.current = nil
}

// Current returns a snapshot of the live coupon, or nil.
func (l *Lifecycle) Current() *model.Coupon {
	if l.current == nil {
		return nil
	}
	snapshot := *l.current
	return &snapshot
}

// HasSpun reports whether a spin has completed this session, win or not.
func (l *Lifecycle) HasSpun() bool {
	return l.spun
}

// HasUnappliedCoupon reports whether a won coupon is waiting to be applied.
func (l *Lifecycle) HasUnappliedCoupon() bool {
	return l.current != nil && !l.current.Applied && l.current.Percent > 0
}

// newCode builds a human-readable code embedding the percent plus a short
// random suffix. Collisions are irrelevant for a single in-memory session.
func newCode(percent int) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("SPIN%d-%s", percent, suffix)
}
