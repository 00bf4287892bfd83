package wheel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spinwheel-cart-demo/internal/model"
)

func TestPlanSpin_Bounds(t *testing.T) {
	a := NewAnimator(rand.NewSource(3))

	for _, size := range []int{1, 4, 8, 12} {
		for index := 0; index < size; index++ {
			for trial := 0; trial < 50; trial++ {
				got := a.PlanSpin(index, size)
				assert.Greater(t, got, 6*360.0, "size=%d index=%d", size, index)
				assert.LessOrEqual(t, got, 10*360.0+360.0, "size=%d index=%d", size, index)
			}
		}
	}
}

func TestPlanSpin_AlignmentForReferenceWheel(t *testing.T) {
	// 8 segments of 45°, layout origin at the pointer (-90°): segment i's
	// center maps to an alignment of 360 - (45i + 22.5), mod 360.
	tests := []struct {
		index int
		want  float64
	}{
		{index: 0, want: 337.5},
		{index: 1, want: 292.5},
		{index: 3, want: 202.5},
		{index: 4, want: 157.5},
		{index: 7, want: 22.5},
	}

	a := NewAnimator(rand.NewSource(9))
	for _, tt := range tests {
		got := a.PlanSpin(tt.index, 8)
		alignment := math.Mod(got, 360)
		assert.InDelta(t, tt.want, alignment, 1e-9, "index %d", tt.index)
	}
}

func TestSpin_RotationAccumulates(t *testing.T) {
	a := NewAnimator(rand.NewSource(5))
	outcome := model.PrizeOutcome{ID: "pct_10", DiscountPercent: 10, Probability: 0.5}

	first, ok := a.Spin(outcome, 2, 8)
	require.True(t, ok)
	require.Greater(t, first, 0.0)

	_, settled := a.Settle()
	require.True(t, settled)

	second, ok := a.Spin(outcome, 5, 8)
	require.True(t, ok)
	require.Greater(t, second, first, "rotation must never reset")
	require.Equal(t, second, a.Rotation())
}

func TestSpin_RejectedWhileSpinning(t *testing.T) {
	a := NewAnimator(rand.NewSource(5))
	outcome := model.PrizeOutcome{ID: "pct_10", DiscountPercent: 10, Probability: 0.5}

	first, ok := a.Spin(outcome, 0, 8)
	require.True(t, ok)
	require.True(t, a.Spinning())

	again, ok := a.Spin(outcome, 1, 8)
	require.False(t, ok)
	require.Equal(t, first, again, "rejected spin must not move the wheel")
}

func TestSettle_ReportsExactlyOnce(t *testing.T) {
	a := NewAnimator(rand.NewSource(5))
	outcome := model.PrizeOutcome{ID: "pct_25", DiscountPercent: 25, Probability: 0.5}

	_, ok := a.Spin(outcome, 6, 8)
	require.True(t, ok)

	got, ok := a.Settle()
	require.True(t, ok)
	require.Equal(t, "pct_25", got.ID)
	require.Equal(t, StateSettled, a.State())

	dup, ok := a.Settle()
	require.False(t, ok, "duplicate completion signal must be a no-op")
	require.Nil(t, dup)
}

func TestSettle_BeforeSpinIsNoop(t *testing.T) {
	a := NewAnimator(rand.NewSource(5))

	got, ok := a.Settle()
	require.False(t, ok)
	require.Nil(t, got)
	require.Equal(t, StateIdle, a.State())
}
