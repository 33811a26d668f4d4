// Package feetier manages the platform fee table and serves the snapshot the
// price calculator runs against.
package feetier

import (
	"context"
	"errors"
	"fmt"

	"cosec/internal/logger"
	"cosec/internal/models"
	"cosec/internal/pricing"
	"cosec/internal/repositories"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]models.FeeTier, error)
	Get(ctx context.Context, id uuid.UUID) (*models.FeeTier, error)
	Create(ctx context.Context, input TierInput) (*models.FeeTier, error)
	Update(ctx context.Context, id uuid.UUID, input TierInput) (*models.FeeTier, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Replace swaps the whole table in one transaction.
	Replace(ctx context.Context, tiers []models.FeeTier) error

	// Snapshot returns the table used for pricing, cache first.
	Snapshot(ctx context.Context) ([]models.FeeTier, error)
	Audit(ctx context.Context, step float64) ([]pricing.Finding, error)
}

// Cache holds the tier table snapshot. Implemented by cache.CacheService.
type Cache interface {
	GetFeeTiers(ctx context.Context) ([]models.FeeTier, bool, error)
	SetFeeTiers(ctx context.Context, tiers []models.FeeTier) error
	InvalidateFeeTiers(ctx context.Context) error
}

type service struct {
	repo  repositories.FeeTierRepository
	cache Cache
	log   *logger.Logger
}

// NewService builds the fee tier service. A nil cache disables caching and a
// nil logger discards output.
func NewService(repo repositories.FeeTierRepository, cache Cache, log *logger.Logger) Service {
	if cache == nil {
		cache = noopCache{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &service{repo: repo, cache: cache, log: log}
}

func (s *service) List(ctx context.Context) ([]models.FeeTier, error) {
	tiers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fee tiers: %w", err)
	}
	return tiers, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.FeeTier, error) {
	tier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return tier, nil
}

func (s *service) Create(ctx context.Context, input TierInput) (*models.FeeTier, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tier := &models.FeeTier{}
	input.apply(tier)
	if err := s.repo.Create(ctx, tier); err != nil {
		return nil, fmt.Errorf("create fee tier: %w", err)
	}

	s.invalidate(ctx)
	s.log.Info("fee tier created", "id", tier.ID, "name", tier.Name)
	return tier, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input TierInput) (*models.FeeTier, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	input.apply(tier)
	if err := s.repo.Update(ctx, tier); err != nil {
		return nil, translate(err)
	}

	s.invalidate(ctx)
	s.log.Info("fee tier updated", "id", tier.ID, "name", tier.Name)
	return tier, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	s.invalidate(ctx)
	s.log.Info("fee tier deleted", "id", id)
	return nil
}

func (s *service) Replace(ctx context.Context, tiers []models.FeeTier) error {
	if len(tiers) == 0 {
		return ErrEmptySeed
	}
	if err := validateTiers(tiers); err != nil {
		return err
	}
	if err := s.repo.ReplaceAll(ctx, tiers); err != nil {
		return fmt.Errorf("replace fee tiers: %w", err)
	}
	s.invalidate(ctx)
	s.log.Info("fee tier table replaced", "count", len(tiers))
	return nil
}

func (s *service) Snapshot(ctx context.Context) ([]models.FeeTier, error) {
	tiers, hit, err := s.cache.GetFeeTiers(ctx)
	switch {
	case err != nil:
		s.log.Warn("fee tier cache read failed", "error", err)
	case hit:
		return tiers, nil
	}

	tiers, err = s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fee tiers: %w", err)
	}
	if err := s.cache.SetFeeTiers(ctx, tiers); err != nil {
		s.log.Warn("fee tier cache write failed", "error", err)
	}
	return tiers, nil
}

// Audit reads the stored table, bypassing the cache.
func (s *service) Audit(ctx context.Context, step float64) ([]pricing.Finding, error) {
	if step <= 0 {
		step = DefaultAuditStep
	}
	tiers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fee tiers: %w", err)
	}
	return pricing.Audit(tiers, step), nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateFeeTiers(ctx); err != nil {
		s.log.Warn("fee tier cache invalidation failed", "error", err)
	}
}

func translate(err error) error {
	if errors.Is(err, repositories.ErrFeeTierNotFound) {
		return ErrTierNotFound
	}
	return err
}

type noopCache struct{}

func (noopCache) GetFeeTiers(context.Context) ([]models.FeeTier, bool, error) { return nil, false, nil }
func (noopCache) SetFeeTiers(context.Context, []models.FeeTier) error         { return nil }
func (noopCache) InvalidateFeeTiers(context.Context) error                    { return nil }
