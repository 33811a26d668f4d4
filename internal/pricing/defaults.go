package pricing

import "cosec/internal/models"

// DefaultTiers is the table the marketplace launched with, used by the seeder
// when no seed file is given.
func DefaultTiers() []models.FeeTier {
	return []models.FeeTier{
		{Name: models.TierBasic, MinValue: 0, MaxValue: floatPtr(1000), FeePercentage: 5},
		{Name: models.TierStandard, MinValue: 1001, MaxValue: floatPtr(5000), FeePercentage: 4},
		{Name: models.TierPremium, MinValue: 5001, MaxValue: floatPtr(10000), FeePercentage: 3},
		{Name: models.TierEnterprise, MinValue: 10001, MaxValue: nil, FeePercentage: 2},
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
