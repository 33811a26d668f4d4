package handlers

import (
	"context"
	"io"

	"cosec/internal/models"
	"cosec/internal/pricing"
	"cosec/internal/services/auth"
	"cosec/internal/services/feetier"
	"cosec/internal/services/media"
	"cosec/internal/services/specialist"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockFeeTierService struct {
	mock.Mock
}

func (m *MockFeeTierService) List(ctx context.Context) ([]models.FeeTier, error) {
	args := m.Called(ctx)
	tiers, _ := args.Get(0).([]models.FeeTier)
	return tiers, args.Error(1)
}

func (m *MockFeeTierService) Get(ctx context.Context, id uuid.UUID) (*models.FeeTier, error) {
	args := m.Called(ctx, id)
	tier, _ := args.Get(0).(*models.FeeTier)
	return tier, args.Error(1)
}

func (m *MockFeeTierService) Create(ctx context.Context, input feetier.TierInput) (*models.FeeTier, error) {
	args := m.Called(ctx, input)
	tier, _ := args.Get(0).(*models.FeeTier)
	return tier, args.Error(1)
}

func (m *MockFeeTierService) Update(ctx context.Context, id uuid.UUID, input feetier.TierInput) (*models.FeeTier, error) {
	args := m.Called(ctx, id, input)
	tier, _ := args.Get(0).(*models.FeeTier)
	return tier, args.Error(1)
}

func (m *MockFeeTierService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFeeTierService) Replace(ctx context.Context, tiers []models.FeeTier) error {
	return m.Called(ctx, tiers).Error(0)
}

func (m *MockFeeTierService) Snapshot(ctx context.Context) ([]models.FeeTier, error) {
	args := m.Called(ctx)
	tiers, _ := args.Get(0).([]models.FeeTier)
	return tiers, args.Error(1)
}

func (m *MockFeeTierService) Audit(ctx context.Context, step float64) ([]pricing.Finding, error) {
	args := m.Called(ctx, step)
	findings, _ := args.Get(0).([]pricing.Finding)
	return findings, args.Error(1)
}

type MockSpecialistService struct {
	mock.Mock
}

func (m *MockSpecialistService) Create(ctx context.Context, input specialist.SpecialistInput) (*models.Specialist, error) {
	args := m.Called(ctx, input)
	sp, _ := args.Get(0).(*models.Specialist)
	return sp, args.Error(1)
}

func (m *MockSpecialistService) Update(ctx context.Context, id uuid.UUID, input specialist.SpecialistInput) (*models.Specialist, error) {
	args := m.Called(ctx, id, input)
	sp, _ := args.Get(0).(*models.Specialist)
	return sp, args.Error(1)
}

func (m *MockSpecialistService) Get(ctx context.Context, id uuid.UUID) (*models.Specialist, error) {
	args := m.Called(ctx, id)
	sp, _ := args.Get(0).(*models.Specialist)
	return sp, args.Error(1)
}

func (m *MockSpecialistService) List(ctx context.Context, filter models.SpecialistFilter, limit, offset int) ([]models.Specialist, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	items, _ := args.Get(0).([]models.Specialist)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockSpecialistService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSpecialistService) Quote(ctx context.Context, basePrice float64) (pricing.Result, error) {
	args := m.Called(ctx, basePrice)
	return args.Get(0).(pricing.Result), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(email, password string) (*auth.Token, error) {
	args := m.Called(email, password)
	token, _ := args.Get(0).(*auth.Token)
	return token, args.Error(1)
}

func (m *MockAuthService) ParseToken(token string) (*models.AdminClaims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*models.AdminClaims)
	return claims, args.Error(1)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, filename string, body io.Reader) (*media.Asset, error) {
	data, _ := io.ReadAll(body)
	args := m.Called(ctx, filename, data)
	asset, _ := args.Get(0).(*media.Asset)
	return asset, args.Error(1)
}

func (m *MockMediaService) Delete(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

func (m *MockMediaService) Enabled() bool {
	return m.Called().Bool(0)
}
