package feetier

import (
	"context"
	"errors"
	"testing"

	"cosec/internal/logger"
	"cosec/internal/models"
	"cosec/internal/pricing"
	"cosec/internal/repositories"
	"cosec/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }

func TestService_Snapshot(t *testing.T) {
	ctx := context.Background()
	stored := pricing.DefaultTiers()

	tests := []struct {
		name      string
		setupMock func(*MockRepository, *MockCache)
		want      []models.FeeTier
		wantErr   bool
		wantWarn  int
	}{
		{
			name: "cache hit skips the database",
			setupMock: func(repo *MockRepository, cache *MockCache) {
				cache.On("GetFeeTiers", ctx).Return(stored[:1], true, nil)
			},
			want: stored[:1],
		},
		{
			name: "cache miss loads and repopulates",
			setupMock: func(repo *MockRepository, cache *MockCache) {
				cache.On("GetFeeTiers", ctx).Return(nil, false, nil)
				repo.On("List", ctx).Return(stored, nil)
				cache.On("SetFeeTiers", ctx, stored).Return(nil)
			},
			want: stored,
		},
		{
			name: "cache errors are logged and ignored",
			setupMock: func(repo *MockRepository, cache *MockCache) {
				cache.On("GetFeeTiers", ctx).Return(nil, false, errors.New("connection refused"))
				repo.On("List", ctx).Return(stored, nil)
				cache.On("SetFeeTiers", ctx, stored).Return(errors.New("connection refused"))
			},
			want:     stored,
			wantWarn: 2,
		},
		{
			name: "database failure is returned",
			setupMock: func(repo *MockRepository, cache *MockCache) {
				cache.On("GetFeeTiers", ctx).Return(nil, false, nil)
				repo.On("List", ctx).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			cache := new(MockCache)
			tt.setupMock(repo, cache)
			log, logs := logger.Observed()

			svc := NewService(repo, cache, log)
			got, err := svc.Snapshot(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.wantWarn, logs.FilterMessageSnippet("cache").Len())
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestService_CreateInvalidatesSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	cache := new(MockCache)

	repo.On("Create", ctx, mock.MatchedBy(func(tier *models.FeeTier) bool {
		return tier.Name == "boutique" && tier.MinValue == 0 && tier.MaxValue == nil && tier.FeePercentage == 7.5
	})).Return(nil)
	cache.On("InvalidateFeeTiers", ctx).Return(nil)

	svc := NewService(repo, cache, logger.Nop())
	tier, err := svc.Create(ctx, TierInput{
		Name:          strPtr("  boutique "),
		MinValue:      numPtr(0),
		FeePercentage: numPtr(7.5),
	})

	require.NoError(t, err)
	assert.Equal(t, "boutique", tier.Name)
	assert.True(t, tier.Unbounded())
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		input  TierInput
		fields []string
	}{
		{
			name:   "missing fields",
			input:  TierInput{},
			fields: []string{"name", "min_value", "fee_percentage"},
		},
		{
			name:   "max below min",
			input:  TierInput{Name: strPtr("x"), MinValue: numPtr(500), MaxValue: numPtr(100), FeePercentage: numPtr(3)},
			fields: []string{"max_value"},
		},
		{
			name:   "negative minimum and oversized percentage",
			input:  TierInput{Name: strPtr("x"), MinValue: numPtr(-1), FeePercentage: numPtr(150)},
			fields: []string{"min_value", "fee_percentage"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := NewService(repo, nil, nil)

			_, err := svc.Create(context.Background(), tt.input)

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			for _, f := range tt.fields {
				assert.Contains(t, verr.Fields, f)
			}
			assert.Len(t, verr.Fields, len(tt.fields))
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_UpdateAndDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := new(MockRepository)
	cache := new(MockCache)

	repo.On("GetByID", ctx, id).Return(nil, repositories.ErrFeeTierNotFound)
	repo.On("Delete", ctx, id).Return(repositories.ErrFeeTierNotFound)

	svc := NewService(repo, cache, logger.Nop())

	_, err := svc.Update(ctx, id, TierInput{Name: strPtr("x"), MinValue: numPtr(0), FeePercentage: numPtr(1)})
	assert.ErrorIs(t, err, ErrTierNotFound)

	err = svc.Delete(ctx, id)
	assert.ErrorIs(t, err, ErrTierNotFound)

	cache.AssertNotCalled(t, "InvalidateFeeTiers", mock.Anything)
}

func TestService_UpdateClearsMaximum(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	existing := &models.FeeTier{ID: id, Name: "premium", MinValue: 5001, MaxValue: numPtr(10000), FeePercentage: 3}

	repo := new(MockRepository)
	cache := new(MockCache)
	repo.On("GetByID", ctx, id).Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)
	cache.On("InvalidateFeeTiers", ctx).Return(errors.New("timeout"))

	log, logs := logger.Observed()
	svc := NewService(repo, cache, log)

	got, err := svc.Update(ctx, id, TierInput{Name: strPtr("premium"), MinValue: numPtr(5001), FeePercentage: numPtr(2.5)})

	require.NoError(t, err)
	assert.Nil(t, got.MaxValue)
	assert.Equal(t, 2.5, got.FeePercentage)
	assert.Equal(t, 1, logs.FilterMessage("fee tier cache invalidation failed").Len())
}

func TestService_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("valid table", func(t *testing.T) {
		repo := new(MockRepository)
		cache := new(MockCache)
		tiers := pricing.DefaultTiers()
		repo.On("ReplaceAll", ctx, tiers).Return(nil)
		cache.On("InvalidateFeeTiers", ctx).Return(nil)

		err := NewService(repo, cache, nil).Replace(ctx, tiers)

		require.NoError(t, err)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("empty table", func(t *testing.T) {
		err := NewService(new(MockRepository), nil, nil).Replace(ctx, nil)
		assert.ErrorIs(t, err, ErrEmptySeed)
	})

	t.Run("invalid row", func(t *testing.T) {
		tiers := []models.FeeTier{{Name: "", MinValue: 0, FeePercentage: 5}}
		err := NewService(new(MockRepository), nil, nil).Replace(ctx, tiers)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "tiers[0].name")
	})
}

func TestService_Audit(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("List", ctx).Return(pricing.DefaultTiers(), nil)

	svc := NewService(repo, nil, nil)

	findings, err := svc.Audit(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, findings)

	// At cent resolution the whole-ringgit gaps between tiers show up.
	findings, err = svc.Audit(ctx, 0.01)
	require.NoError(t, err)
	assert.Len(t, findings, 3)
	for _, f := range findings {
		assert.Equal(t, pricing.FindingGap, f.Kind)
	}
}
