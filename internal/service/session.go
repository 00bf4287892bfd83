package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"spinwheel-cart-demo/internal/cart"
	"spinwheel-cart-demo/internal/coupon"
	"spinwheel-cart-demo/internal/model"
	"spinwheel-cart-demo/internal/wheel"
)

// WinEvent is the one-shot completion notification for a settled spin. It is
// delivered at most once per spin; Celebrate gates the confetti-style effect
// for nonzero-discount outcomes.
type WinEvent struct {
	Outcome   model.PrizeOutcome
	Celebrate bool
}

// Session is the per-shopper page controller. It owns the wheel state, the
// single live coupon and the cart ledger, and serializes every transition
// behind its mutex so the HTTP layer can call in concurrently while the
// session itself behaves like the single-threaded UI loop it models. All
// session state is in-memory and dies with the session.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	table    model.PrizeTable
	selector *wheel.Selector
	animator *wheel.Animator
	coupons  *coupon.Lifecycle
	ledger   *cart.Ledger

	decisionPending bool
	winCh           chan WinEvent
}

// NewSession builds a session over an immutable prize table and the
// shopper's initial cart. The random source feeds both the draw and the spin
// planning; tests inject a seeded source.
func NewSession(table model.PrizeTable, items []model.CartItem, src rand.Source) *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		table:     table,
		selector:  wheel.NewSelector(src),
		animator:  wheel.NewAnimator(src),
		coupons:   coupon.NewLifecycle(),
		ledger:    cart.NewLedger(items),
		winCh:     make(chan WinEvent, 1),
	}
}

// StartSpin draws the outcome and advances the rotation target. The outcome
// stays hidden from the caller until the wheel settles. Returns the
// cumulative rotation and false when a spin is already in flight.
func (s *Session) StartSpin() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drawn := s.selector.Draw(s.table)
	index := s.table.IndexOf(drawn.ID)
	return s.animator.Spin(drawn, index, len(s.table))
}

// CompleteSpin is called when the presentation layer reports the animation
// has settled. The first call mints the coupon (for a winning outcome),
// opens the decision prompt, and fires the win event; duplicates are no-ops.
func (s *Session) CompleteSpin() (*model.PrizeOutcome, *model.Coupon, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, ok := s.animator.Settle()
	if !ok {
		return nil, nil, false
	}

	won := s.coupons.CreateFromOutcome(*outcome)
	s.decisionPending = won != nil

	// Buffered one-shot; never blocks and never re-fires for this spin.
	select {
	case s.winCh <- WinEvent{Outcome: *outcome, Celebrate: outcome.DiscountPercent > 0}:
	default:
	}

	return outcome, won, true
}

// WinEvents exposes the one-shot win notification stream consumed by the
// celebratory-effect collaborator.
func (s *Session) WinEvents() <-chan WinEvent {
	return s.winCh
}

// Decide resolves the post-spin prompt. Apply copies the coupon's percent
// and label into the ledger and marks the coupon applied; ignore parks the
// coupon unapplied and takes its discount off the cart, so an applied
// coupon ignored later is fully reversed rather than left half-active.
// No-op without a live coupon.
func (s *Session) Decide(apply bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.decisionPending = false
	cpn := s.coupons.Current()
	if cpn == nil {
		return
	}

	if apply {
		s.applyCouponLocked(cpn)
		return
	}
	s.ledger.RemoveDiscount()
	s.coupons.MarkIgnored()
}

// ApplySavedCoupon applies a previously ignored coupon. The ledger effect is
// identical to deciding "apply" right after the win. Returns false when no
// unapplied coupon is waiting.
func (s *Session) ApplySavedCoupon() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.coupons.HasUnappliedCoupon() {
		return false
	}
	s.applyCouponLocked(s.coupons.Current())
	return true
}

func (s *Session) applyCouponLocked(cpn *model.Coupon) {
	s.ledger.ApplyDiscount(cpn.Percent, cpn.Label)
	s.coupons.MarkApplied()
}

// WithdrawCoupon fully retires the coupon: the discount comes off the cart
// and the coupon is cleared rather than parked.
func (s *Session) WithdrawCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.RemoveDiscount()
	s.coupons.Clear()
}

// UpdateQuantity forwards to the ledger; invalid input is a silent no-op.
func (s *Session) UpdateQuantity(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.UpdateQuantity(itemID, quantity)
}

// RemoveItem forwards to the ledger; unknown ids are a silent no-op.
func (s *Session) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.RemoveItem(itemID)
}

// SessionState is what the presentation layer needs to render the page.
type SessionState struct {
	Rotation           float64
	SpinDisabled       bool
	HasSpun            bool
	HasUnappliedCoupon bool
	DecisionPending    bool
	Coupon             *model.Coupon
	Items              []model.CartItem
	Totals             model.CartTotals
}

// State snapshots the session. Totals are derived fresh on every call.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionState{
		Rotation:           s.animator.Rotation(),
		SpinDisabled:       s.animator.Spinning() || s.coupons.HasSpun(),
		HasSpun:            s.coupons.HasSpun(),
		HasUnappliedCoupon: s.coupons.HasUnappliedCoupon(),
		DecisionPending:    s.decisionPending,
		Coupon:             s.coupons.Current(),
		Items:              s.ledger.Items(),
		Totals:             s.ledger.Totals(),
	}
}
