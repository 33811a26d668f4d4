package feetier

import (
	"context"

	"cosec/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]models.FeeTier, error) {
	args := m.Called(ctx)
	tiers, _ := args.Get(0).([]models.FeeTier)
	return tiers, args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FeeTier, error) {
	args := m.Called(ctx, id)
	tier, _ := args.Get(0).(*models.FeeTier)
	return tier, args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, tier *models.FeeTier) error {
	return m.Called(ctx, tier).Error(0)
}

func (m *MockRepository) Update(ctx context.Context, tier *models.FeeTier) error {
	return m.Called(ctx, tier).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ReplaceAll(ctx context.Context, tiers []models.FeeTier) error {
	return m.Called(ctx, tiers).Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFeeTiers(ctx context.Context) ([]models.FeeTier, bool, error) {
	args := m.Called(ctx)
	tiers, _ := args.Get(0).([]models.FeeTier)
	return tiers, args.Bool(1), args.Error(2)
}

func (m *MockCache) SetFeeTiers(ctx context.Context, tiers []models.FeeTier) error {
	return m.Called(ctx, tiers).Error(0)
}

func (m *MockCache) InvalidateFeeTiers(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
