package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Specialist is a company-secretarial service listing published by a provider.
// PlatformFee and FinalPrice are snapshots taken when the listing is saved.
type Specialist struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string         `gorm:"size:200;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	SecretaryName string         `gorm:"size:150" json:"secretary_name"`
	CompanyName   string         `gorm:"size:200;index" json:"company_name"`
	Category      string         `gorm:"size:100;index" json:"category"`
	State         string         `gorm:"size:50;index" json:"state"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	ImageURLs     pq.StringArray `gorm:"type:text[]" json:"image_urls"`
	BasePrice     float64        `gorm:"type:decimal(12,2);not null" json:"base_price"`
	PlatformFee   float64        `gorm:"type:decimal(12,2);not null;default:0" json:"platform_fee"`
	FinalPrice    float64        `gorm:"type:decimal(12,2);not null;default:0" json:"final_price"`
	IsDraft       bool           `gorm:"default:false;index" json:"is_draft"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (s *Specialist) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SpecialistFilter narrows a listing query. Empty fields are ignored.
type SpecialistFilter struct {
	Category      string
	State         string
	Search        string
	IncludeDrafts bool
}
