package model

import "time"

// Coupon is the session-scoped record of a won discount. At most one exists
// per session; it lives in memory only and is lost on reload.
type Coupon struct {
	Code    string    `json:"code"`
	Label   string    `json:"label"`
	Percent int       `json:"percent"` // always > 0; zero-win outcomes never mint a coupon
	Applied bool      `json:"applied"`
	WonAt   time.Time `json:"won_at"`
}
