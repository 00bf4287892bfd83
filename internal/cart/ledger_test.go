package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"spinwheel-cart-demo/internal/model"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func referenceItems() []model.CartItem {
	return []model.CartItem{
		{ID: "headphones_anc", Name: "Wireless Headphones", UnitPrice: price("2499.00"), Quantity: 1},
		{ID: "smartwatch_s3", Name: "Smart Watch", UnitPrice: price("1299.00"), Quantity: 1},
	}
}

func requireEqualDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, price(want).Equal(got), "want %s, got %s", want, got)
}

func TestTotals_NoDiscount(t *testing.T) {
	l := NewLedger(referenceItems())

	totals := l.Totals()
	requireEqualDecimal(t, "3798.00", totals.Subtotal)
	requireEqualDecimal(t, "0", totals.DiscountAmount)
	requireEqualDecimal(t, "3798.00", totals.FinalTotal)
}

func TestTotals_TwentyPercentScenario(t *testing.T) {
	l := NewLedger(referenceItems())
	l.ApplyDiscount(20, "20% Off")

	totals := l.Totals()
	requireEqualDecimal(t, "3798.00", totals.Subtotal)
	requireEqualDecimal(t, "759.60", totals.DiscountAmount)
	requireEqualDecimal(t, "3038.40", totals.FinalTotal)
}

func TestDiscount_RoundTrip(t *testing.T) {
	l := NewLedger([]model.CartItem{
		{ID: "one", Name: "Thing", UnitPrice: price("1000.00"), Quantity: 1},
	})

	l.ApplyDiscount(25, "25% Off")
	totals := l.Totals()
	requireEqualDecimal(t, "250.00", totals.DiscountAmount)
	requireEqualDecimal(t, "750.00", totals.FinalTotal)

	l.RemoveDiscount()
	totals = l.Totals()
	requireEqualDecimal(t, "0", totals.DiscountAmount)
	requireEqualDecimal(t, "1000.00", totals.FinalTotal)
}

func TestTotals_PureDerivation(t *testing.T) {
	l := NewLedger(referenceItems())
	l.ApplyDiscount(10, "10% Off")

	first := l.Totals()
	second := l.Totals()
	require.True(t, first.Subtotal.Equal(second.Subtotal))
	require.True(t, first.DiscountAmount.Equal(second.DiscountAmount))
	require.True(t, first.FinalTotal.Equal(second.FinalTotal))
}

func TestApplyDiscount_OverwritesPrior(t *testing.T) {
	l := NewLedger(referenceItems())
	l.ApplyDiscount(10, "10% Off")
	l.ApplyDiscount(25, "25% Off")

	percent, label := l.Discount()
	require.Equal(t, 25, percent)
	require.Equal(t, "25% Off", label)
}

func TestUpdateQuantity(t *testing.T) {
	l := NewLedger(referenceItems())

	l.UpdateQuantity("headphones_anc", 3)
	requireEqualDecimal(t, "8796.00", l.Totals().Subtotal)

	// Below 1 is a silent no-op.
	l.UpdateQuantity("headphones_anc", 0)
	requireEqualDecimal(t, "8796.00", l.Totals().Subtotal)

	// Unknown ids too.
	l.UpdateQuantity("ghost", 5)
	requireEqualDecimal(t, "8796.00", l.Totals().Subtotal)
}

func TestRemoveItem(t *testing.T) {
	l := NewLedger(referenceItems())

	l.RemoveItem("smartwatch_s3")
	require.Len(t, l.Items(), 1)
	requireEqualDecimal(t, "2499.00", l.Totals().Subtotal)

	l.RemoveItem("ghost")
	require.Len(t, l.Items(), 1)
}

func TestDiscount_TracksMutations(t *testing.T) {
	// The discount reprices live: totals follow item mutations made after
	// the coupon was applied.
	l := NewLedger(referenceItems())
	l.ApplyDiscount(20, "20% Off")

	l.RemoveItem("headphones_anc")
	totals := l.Totals()
	requireEqualDecimal(t, "1299.00", totals.Subtotal)
	requireEqualDecimal(t, "259.80", totals.DiscountAmount)
	requireEqualDecimal(t, "1039.20", totals.FinalTotal)
}

func TestItems_ReturnsSnapshot(t *testing.T) {
	l := NewLedger(referenceItems())

	items := l.Items()
	items[0].Quantity = 99

	requireEqualDecimal(t, "3798.00", l.Totals().Subtotal)
}
