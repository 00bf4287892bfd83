package coupon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"spinwheel-cart-demo/internal/model"
)

func TestCreateFromOutcome_Win(t *testing.T) {
	l := NewLifecycle()
	cpn := l.CreateFromOutcome(model.PrizeOutcome{ID: "pct_20", Label: "20% Off", DiscountPercent: 20, Probability: 0.1})

	require.NotNil(t, cpn)
	require.Equal(t, 20, cpn.Percent)
	require.Equal(t, "20% Off", cpn.Label)
	require.False(t, cpn.Applied)
	require.False(t, cpn.WonAt.IsZero())
	require.True(t, strings.HasPrefix(cpn.Code, "SPIN20-"))

	require.True(t, l.HasSpun())
	require.True(t, l.HasUnappliedCoupon())
}

func TestCreateFromOutcome_ZeroDiscount(t *testing.T) {
	l := NewLifecycle()
	cpn := l.CreateFromOutcome(model.PrizeOutcome{ID: "try_again", Label: "Try Again", DiscountPercent: 0, Probability: 0.25})

	require.Nil(t, cpn, "a Try Again outcome never yields a coupon")
	require.True(t, l.HasSpun(), "a losing spin still counts as spun")
	require.False(t, l.HasUnappliedCoupon())
	require.Nil(t, l.Current())
}

func TestLifecycle_SingularCoupon(t *testing.T) {
	l := NewLifecycle()
	l.CreateFromOutcome(model.PrizeOutcome{ID: "pct_5", Label: "5% Off", DiscountPercent: 5, Probability: 0.2})
	second := l.CreateFromOutcome(model.PrizeOutcome{ID: "pct_50", Label: "50% Off", DiscountPercent: 50, Probability: 0.02})

	current := l.Current()
	require.NotNil(t, current)
	require.Equal(t, second.Code, current.Code, "a new win replaces the prior coupon")
	require.Equal(t, 50, current.Percent)
}

func TestLifecycle_AppliedIgnoredClear(t *testing.T) {
	l := NewLifecycle()
	l.CreateFromOutcome(model.PrizeOutcome{ID: "pct_10", Label: "10% Off", DiscountPercent: 10, Probability: 0.15})

	l.MarkApplied()
	require.True(t, l.Current().Applied)
	require.False(t, l.HasUnappliedCoupon())

	l.MarkIgnored()
	require.False(t, l.Current().Applied)
	require.True(t, l.HasUnappliedCoupon(), "ignored is not cleared: it can be applied later")

	l.Clear()
	require.Nil(t, l.Current())
	require.False(t, l.HasUnappliedCoupon())
	require.True(t, l.HasSpun(), "clearing the coupon does not unwind the spin")
}

func TestMarks_NoopWithoutCoupon(t *testing.T) {
	l := NewLifecycle()

	l.MarkApplied()
	l.MarkIgnored()
	l.Clear()

	require.Nil(t, l.Current())
	require.False(t, l.HasSpun())
}

func TestCurrent_ReturnsSnapshot(t *testing.T) {
	l := NewLifecycle()
	l.CreateFromOutcome(model.PrizeOutcome{ID: "pct_15", Label: "15% Off", DiscountPercent: 15, Probability: 0.12})

	snapshot := l.Current()
	snapshot.Applied = true

	require.False(t, l.Current().Applied, "mutating a snapshot must not touch the live coupon")
}

func TestNewCode_EmbedsPercent(t *testing.T) {
	code := newCode(25)
	require.True(t, strings.HasPrefix(code, "SPIN25-"))
	require.Len(t, strings.TrimPrefix(code, "SPIN25-"), 6)
}
