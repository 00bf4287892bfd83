package cart

import (
	"github.com/shopspring/decimal"

	"spinwheel-cart-demo/internal/model"
)

// Ledger owns a session's cart items and the currently applied discount.
// The discount fields are a copy of the winning coupon's percent and label,
// not a live reference to it. Not safe for concurrent use; the owning
// session serializes access.
type Ledger struct {
	items []model.CartItem

	discountPercent int
	discountLabel   string
}

// NewLedger starts a ledger over the given initial items, normally supplied
// by the product catalog.
func NewLedger(items []model.CartItem) *Ledger {
	copied := make([]model.CartItem, len(items))
	copy(copied, items)
	return &Ledger{items: copied}
}

// UpdateQuantity sets a line's quantity. Quantities below 1 and unknown item
// ids are silently ignored; the constrained UI should never produce them.
func (l *Ledger) UpdateQuantity(itemID string, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range l.items {
		if l.items[i].ID == itemID {
			l.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops a line from the cart. Unknown ids are a no-op.
func (l *Ledger) RemoveItem(itemID string) {
	for i := range l.items {
		if l.items[i].ID == itemID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// ApplyDiscount sets the active discount, overwriting any prior one. Only
// one discount may be active at a time.
func (l *Ledger) ApplyDiscount(percent int, label string) {
	l.discountPercent = percent
	l.discountLabel = label
}

// RemoveDiscount clears both discount fields.
func (l *Ledger) RemoveDiscount() {
	l.discountPercent = 0
	l.discountLabel = ""
}

// Discount returns the active discount percent and label; percent 0 means
// none.
func (l *Ledger) Discount() (int, string) {
	return l.discountPercent, l.discountLabel
}

// Items returns a snapshot of the cart lines.
func (l *Ledger) Items() []model.CartItem {
	snapshot := make([]model.CartItem, len(l.items))
	copy(snapshot, l.items)
	return snapshot
}

// Totals derives subtotal, discount amount and final total from the current
// items and active discount. Pure: recomputed on every read, never cached.
func (l *Ledger) Totals() model.CartTotals {
	subtotal := decimal.Zero
	for _, item := range l.items {
		line := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	discount := decimal.Zero
	if l.discountPercent > 0 {
		discount = subtotal.
			Mul(decimal.NewFromInt(int64(l.discountPercent))).
			Div(decimal.NewFromInt(100))
	}

	return model.CartTotals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		FinalTotal:     subtotal.Sub(discount),
	}
}
