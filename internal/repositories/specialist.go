package repositories

import (
	"context"
	"errors"
	"strings"

	"cosec/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSpecialistNotFound = errors.New("specialist not found")

type SpecialistRepository interface {
	Create(ctx context.Context, s *models.Specialist) error
	Update(ctx context.Context, s *models.Specialist) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Specialist, error)
	List(ctx context.Context, filter models.SpecialistFilter, limit, offset int) ([]models.Specialist, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type specialistRepository struct {
	db *gorm.DB
}

func NewSpecialistRepository(db *gorm.DB) SpecialistRepository {
	return &specialistRepository{db: db}
}

func (r *specialistRepository) Create(ctx context.Context, s *models.Specialist) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *specialistRepository) Update(ctx context.Context, s *models.Specialist) error {
	result := r.db.WithContext(ctx).Model(&models.Specialist{}).
		Where("id = ?", s.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(s)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSpecialistNotFound
	}
	return nil
}

func (r *specialistRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Specialist, error) {
	var s models.Specialist
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialistNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *specialistRepository) List(ctx context.Context, filter models.SpecialistFilter, limit, offset int) ([]models.Specialist, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Specialist{})

	if !filter.IncludeDrafts {
		query = query.Where("is_draft = ?", false)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title ILIKE ? OR company_name ILIKE ?", like, like)
	}

	// Independent statements for the count and the page.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var specialists []models.Specialist
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&specialists).Error
	if err != nil {
		return nil, 0, err
	}
	return specialists, total, nil
}

func (r *specialistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Specialist{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSpecialistNotFound
	}
	return nil
}
