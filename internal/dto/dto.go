package dto

import "spinwheel-cart-demo/internal/model"

type SessionSnapshot struct {
	SessionID          string           `json:"session_id"`
	Rotation           float64          `json:"rotation"`
	SpinDisabled       bool             `json:"spin_disabled"`
	HasSpun            bool             `json:"has_spun"`
	HasUnappliedCoupon bool             `json:"has_unapplied_coupon"`
	DecisionPending    bool             `json:"decision_pending"`
	Coupon             *model.Coupon    `json:"coupon,omitempty"`
	Items              []model.CartItem `json:"items"`
	Totals             model.CartTotals `json:"totals"`
}

type SpinResponse struct {
	Rotation   float64 `json:"rotation"`
	DurationMS int     `json:"duration_ms"`
}

type SettleResponse struct {
	AlreadySettled bool                `json:"already_settled"`
	Outcome        *model.PrizeOutcome `json:"outcome,omitempty"`
	Coupon         *model.Coupon       `json:"coupon,omitempty"`
	Celebrate      bool                `json:"celebrate"`
	DecisionNeeded bool                `json:"decision_needed"`
}

type DecisionRequest struct {
	Action string `json:"action"` // "apply" | "ignore"
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type WheelSegment struct {
	Label           string `json:"label"`
	DiscountPercent int    `json:"discount_percent"`
}
