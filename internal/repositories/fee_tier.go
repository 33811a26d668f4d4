package repositories

import (
	"context"
	"errors"

	"cosec/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrFeeTierNotFound = errors.New("fee tier not found")

type FeeTierRepository interface {
	List(ctx context.Context) ([]models.FeeTier, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.FeeTier, error)
	Create(ctx context.Context, tier *models.FeeTier) error
	Update(ctx context.Context, tier *models.FeeTier) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceAll(ctx context.Context, tiers []models.FeeTier) error
}

type feeTierRepository struct {
	db *gorm.DB
}

func NewFeeTierRepository(db *gorm.DB) FeeTierRepository {
	return &feeTierRepository{db: db}
}

// List returns the whole table ordered the way the price calculator walks it.
func (r *feeTierRepository) List(ctx context.Context) ([]models.FeeTier, error) {
	var tiers []models.FeeTier
	err := r.db.WithContext(ctx).Order("min_value ASC").Order("created_at ASC").Find(&tiers).Error
	return tiers, err
}

func (r *feeTierRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FeeTier, error) {
	var tier models.FeeTier
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeeTierNotFound
		}
		return nil, err
	}
	return &tier, nil
}

func (r *feeTierRepository) Create(ctx context.Context, tier *models.FeeTier) error {
	return r.db.WithContext(ctx).Create(tier).Error
}

// Update writes every column, so clearing MaxValue persists NULL.
func (r *feeTierRepository) Update(ctx context.Context, tier *models.FeeTier) error {
	result := r.db.WithContext(ctx).Model(&models.FeeTier{}).
		Where("id = ?", tier.ID).
		Select("name", "min_value", "max_value", "fee_percentage", "updated_at").
		Updates(tier)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFeeTierNotFound
	}
	return nil
}

func (r *feeTierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.FeeTier{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFeeTierNotFound
	}
	return nil
}

// ReplaceAll swaps the table contents in one transaction. Used by the seeder.
func (r *feeTierRepository) ReplaceAll(ctx context.Context, tiers []models.FeeTier) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.FeeTier{}).Error; err != nil {
			return err
		}
		if len(tiers) == 0 {
			return nil
		}
		return tx.Create(&tiers).Error
	})
}
