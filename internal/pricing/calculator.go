// Package pricing derives the platform fee and final price of a listing from
// its base price and the fee tier table.
//
// Calculate is a pure function of its arguments: it performs no I/O, never
// fails and never mutates the tier slice it is given. Abnormal inputs degrade
// to a zero fee so that pricing can never block a listing from being saved.
package pricing

import (
	"math"
	"sort"

	"cosec/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Result is the outcome of a price calculation. Tier is nil when no tier
// covered the base price.
type Result struct {
	BasePrice   float64         `json:"base_price"`
	PlatformFee float64         `json:"platform_fee"`
	FinalPrice  float64         `json:"final_price"`
	Tier        *models.FeeTier `json:"tier"`
}

// Calculate resolves the tier for basePrice and applies its percentage.
// The fee is rounded half-up to two decimals; FinalPrice is BasePrice plus the
// rounded fee.
func Calculate(basePrice float64, tiers []models.FeeTier) Result {
	price := sanitize(basePrice)

	tier := Resolve(price, tiers)
	if tier == nil {
		return Result{BasePrice: price, PlatformFee: 0, FinalPrice: price}
	}

	base := decimal.NewFromFloat(price)
	fee := base.Mul(decimal.NewFromFloat(sanitize(tier.FeePercentage))).Div(hundred).Round(2)

	return Result{
		BasePrice:   price,
		PlatformFee: fee.InexactFloat64(),
		FinalPrice:  base.Add(fee).InexactFloat64(),
		Tier:        tier,
	}
}

// Resolve returns a copy of the first tier, in ascending MinValue order, whose
// inclusive range contains price. Tiers sharing a MinValue keep their input
// order.
func Resolve(price float64, tiers []models.FeeTier) *models.FeeTier {
	for _, t := range Sorted(tiers) {
		if t.Contains(price) {
			tier := t
			return &tier
		}
	}
	return nil
}

// Sorted returns a copy of tiers ordered by MinValue, stable on ties.
func Sorted(tiers []models.FeeTier) []models.FeeTier {
	sorted := make([]models.FeeTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinValue < sorted[j].MinValue
	})
	return sorted
}

// sanitize floors negative, negative-zero and non-finite values to zero.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}
