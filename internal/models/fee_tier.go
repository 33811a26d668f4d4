package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tier names seeded by default. Informational only; matching never looks at them.
const (
	TierBasic      = "basic"
	TierStandard   = "standard"
	TierPremium    = "premium"
	TierEnterprise = "enterprise"
)

// FeeTier is one row of the platform fee table. MaxValue is nil for the
// unbounded top tier.
type FeeTier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:50;not null" json:"name"`
	MinValue      float64   `gorm:"type:decimal(12,2);not null;index" json:"min_value"`
	MaxValue      *float64  `gorm:"type:decimal(12,2)" json:"max_value"`
	FeePercentage float64   `gorm:"type:decimal(5,2);not null" json:"fee_percentage"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (t *FeeTier) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Unbounded reports whether the tier has no upper limit.
func (t FeeTier) Unbounded() bool {
	return t.MaxValue == nil
}

// Contains applies the inclusive range check used by the price calculator.
func (t FeeTier) Contains(price float64) bool {
	if price < t.MinValue {
		return false
	}
	return t.MaxValue == nil || price <= *t.MaxValue
}
