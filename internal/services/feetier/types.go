package feetier

import (
	"fmt"
	"strings"

	"cosec/internal/models"
	"cosec/internal/validation"
)

// DefaultAuditStep treats bounds one ringgit apart as adjacent.
const DefaultAuditStep = 1.0

// TierInput is the body of a create or update request. Updates replace the
// whole row, so an omitted max_value makes the tier unbounded.
type TierInput struct {
	Name          *string  `json:"name"`
	MinValue      *float64 `json:"min_value"`
	MaxValue      *float64 `json:"max_value"`
	FeePercentage *float64 `json:"fee_percentage"`
}

// Validate checks the input and returns a *validation.Error on failure.
func (in TierInput) Validate() error {
	v := validation.New()
	v.Required("name", in.Name)
	v.Required("min_value", in.MinValue)
	v.Required("fee_percentage", in.FeePercentage)
	if !v.Valid() {
		return v.Err()
	}
	checkTier(v, "", *in.Name, *in.MinValue, in.MaxValue, *in.FeePercentage)
	return v.Err()
}

func (in TierInput) apply(t *models.FeeTier) {
	t.Name = strings.TrimSpace(*in.Name)
	t.MinValue = *in.MinValue
	t.MaxValue = in.MaxValue
	t.FeePercentage = *in.FeePercentage
}

func checkTier(v *validation.Validator, prefix, name string, min float64, max *float64, pct float64) {
	v.Required(prefix+"name", name)
	v.MaxLength(prefix+"name", name, validation.MaxTierNameLength)
	v.Range(prefix+"min_value", min, validation.MinBasePrice, validation.MaxBasePrice)
	if max != nil {
		v.Range(prefix+"max_value", *max, validation.MinBasePrice, validation.MaxBasePrice)
		v.Check(*max >= min, prefix+"max_value", "must not be less than min_value")
	}
	v.Range(prefix+"fee_percentage", pct, 0, validation.MaxFeePercentage)
}

func validateTiers(tiers []models.FeeTier) error {
	v := validation.New()
	for i, t := range tiers {
		checkTier(v, fmt.Sprintf("tiers[%d].", i), t.Name, t.MinValue, t.MaxValue, t.FeePercentage)
	}
	return v.Err()
}
