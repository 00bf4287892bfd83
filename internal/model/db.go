package model

import "time"

type Product struct {
	ID          string `gorm:"primaryKey;size:64;not null"` // product sku
	Name        string `gorm:"size:128;not null"`
	Description string `gorm:"size:256"`
	// Price in minor units (cents); converted to decimal at the cart boundary.
	PriceCents int64  `gorm:"not null"`
	Currency   string `gorm:"size:8;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Prize is one stored wheel segment. Position defines the wheel layout order
// and must be contiguous from 0; the draw walks segments in this order.
type Prize struct {
	ID              string  `gorm:"primaryKey;size:64;not null"`
	Position        int     `gorm:"uniqueIndex;not null"`
	Label           string  `gorm:"size:64;not null"`
	DiscountPercent int     `gorm:"not null"` // 0 means "no win"
	Probability     float64 `gorm:"not null"` // in (0,1]; full table sums to 1.0
	CreatedAt       time.Time
}
