package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"spinwheel-cart-demo/internal/model"
)

type PrizeRepository interface {
	Seed(ctx context.Context) error
	GetTable(ctx context.Context) (model.PrizeTable, error)
}

type prizeRepoImpl struct {
	db *gorm.DB
}

func NewPrizeRepository(db *gorm.DB) PrizeRepository {
	return &prizeRepoImpl{
		db: db,
	}
}

// Seed installs the reference wheel: 8 segments, probabilities summing to
// 1.0, two zero-discount "no win" segments.
func (r *prizeRepoImpl) Seed(ctx context.Context) error {
	prizes := []model.Prize{
		{ID: "pct_5", Position: 0, Label: "5% Off", DiscountPercent: 5, Probability: 0.20},
		{ID: "try_again", Position: 1, Label: "Try Again", DiscountPercent: 0, Probability: 0.25},
		{ID: "pct_10", Position: 2, Label: "10% Off", DiscountPercent: 10, Probability: 0.15},
		{ID: "pct_15", Position: 3, Label: "15% Off", DiscountPercent: 15, Probability: 0.12},
		{ID: "no_luck", Position: 4, Label: "No Luck Today", DiscountPercent: 0, Probability: 0.10},
		{ID: "pct_20", Position: 5, Label: "20% Off", DiscountPercent: 20, Probability: 0.10},
		{ID: "pct_25", Position: 6, Label: "25% Off", DiscountPercent: 25, Probability: 0.06},
		{ID: "pct_50", Position: 7, Label: "50% Off", DiscountPercent: 50, Probability: 0.02},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&prizes).Error
}

// GetTable loads the full wheel in layout order. The caller validates the
// table before use and treats violations as fatal configuration errors.
func (r *prizeRepoImpl) GetTable(ctx context.Context) (model.PrizeTable, error) {
	var prizes []model.Prize
	err := r.db.WithContext(ctx).
		Order("position").
		Find(&prizes).
		Error

	if err != nil {
		return nil, err
	}

	table := make(model.PrizeTable, len(prizes))
	for i, p := range prizes {
		table[i] = model.PrizeOutcome{
			ID:              p.ID,
			Label:           p.Label,
			DiscountPercent: p.DiscountPercent,
			Probability:     p.Probability,
		}
	}

	return table, nil
}
