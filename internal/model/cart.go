package model

import "github.com/shopspring/decimal"

// CartItem is one line of the shopper's cart.
type CartItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"` // >= 1
}

// CartTotals is derived, never stored: recomputed from the item list and the
// active discount on every read.
type CartTotals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalTotal     decimal.Decimal `json:"final_total"`
}
