// Package specialist manages service listings and stamps each one with the
// platform fee in force when it was saved.
package specialist

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
	Create(ctx context.Context, input SpecialistInput) (*models.Specialist, error)
	Update(ctx context.Context, id uuid.UUID, input SpecialistInput) (*models.Specialist, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Specialist, error)
	List(ctx context.Context, filter models.SpecialistFilter, limit, offset int) ([]models.Specialist, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Quote prices an arbitrary base price against the current tier table.
	Quote(ctx context.Context, basePrice float64) (pricing.Result, error)
}

// TierSource supplies the fee table. Implemented by feetier.Service.
type TierSource interface {
	Snapshot(ctx context.Context) ([]models.FeeTier, error)
}

type service struct {
	repo  repositories.SpecialistRepository
	tiers TierSource
	log   *logger.Logger
}

func NewService(repo repositories.SpecialistRepository, tiers TierSource, log *logger.Logger) Service {
	if log == nil {
		log = logger.Nop()
	}
	return &service{repo: repo, tiers: tiers, log: log}
}

func (s *service) Create(ctx context.Context, input SpecialistInput) (*models.Specialist, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sp := &models.Specialist{}
	input.apply(sp)
	s.price(ctx, sp)

	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, fmt.Errorf("create specialist: %w", err)
	}
	s.log.Info("specialist created", "id", sp.ID, "base_price", sp.BasePrice, "platform_fee", sp.PlatformFee)
	return sp, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input SpecialistInput) (*models.Specialist, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	input.apply(sp)
	s.price(ctx, sp)

	if err := s.repo.Update(ctx, sp); err != nil {
		return nil, translate(err)
	}
	s.log.Info("specialist updated", "id", sp.ID, "base_price", sp.BasePrice, "platform_fee", sp.PlatformFee)
	return sp, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Specialist, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return sp, nil
}

func (s *service) List(ctx context.Context, filter models.SpecialistFilter, limit, offset int) ([]models.Specialist, int64, error) {
	items, total, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list specialists: %w", err)
	}
	return items, total, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	s.log.Info("specialist deleted", "id", id)
	return nil
}

func (s *service) Quote(ctx context.Context, basePrice float64) (pricing.Result, error) {
	tiers, err := s.tiers.Snapshot(ctx)
	if err != nil {
		return pricing.Result{}, fmt.Errorf("load fee tiers: %w", err)
	}
	return pricing.Calculate(basePrice, tiers), nil
}

// price writes the fee snapshot onto the listing. A missing tier table
// prices with a zero fee rather than blocking the save.
func (s *service) price(ctx context.Context, sp *models.Specialist) {
	tiers, err := s.tiers.Snapshot(ctx)
	if err != nil {
		s.log.Warn("fee tiers unavailable, pricing with zero fee", "error", err, "specialist_id", sp.ID)
		tiers = nil
	}

	result := pricing.Calculate(sp.BasePrice, tiers)
	if result.Tier == nil {
		s.log.Debug("no fee tier matched", "base_price", sp.BasePrice)
	}
	sp.PlatformFee = result.PlatformFee
	sp.FinalPrice = result.FinalPrice
}

func translate(err error) error {
	if errors.Is(err, repositories.ErrSpecialistNotFound) {
		return ErrSpecialistNotFound
	}
	return err
}
