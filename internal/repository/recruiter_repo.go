package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

// RecruiterRepository defines persistence operations for the recruiter roster.
type RecruiterRepository interface {
	List(ctx context.Context) ([]models.Recruiter, error)
	ListAvailable(ctx context.Context) ([]models.Recruiter, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uint) (models.Recruiter, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Recruiter, error)
	Create(ctx context.Context, recruiter *models.Recruiter) error
	CreateBatch(ctx context.Context, recruiters []models.Recruiter) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Deactivate(ctx context.Context, id uint) error
}

type recruiterRepository struct {
	db *gorm.DB
}

// NewRecruiterRepository instantiates a GORM-backed recruiter repository.
func NewRecruiterRepository(db *gorm.DB) RecruiterRepository {
	return &recruiterRepository{db: db}
}

func (r *recruiterRepository) List(ctx context.Context) ([]models.Recruiter, error) {
	var recruiters []models.Recruiter
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&recruiters).Error; err != nil {
		return nil, err
	}
	return recruiters, nil
}

// ListAvailable returns assignable recruiters in insertion order so callers
// observe a stable ordering.
func (r *recruiterRepository) ListAvailable(ctx context.Context) ([]models.Recruiter, error) {
	var recruiters []models.Recruiter
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND status = ?", true, models.RecruiterStatusAvailable).
		Order("id ASC").
		Find(&recruiters).Error
	if err != nil {
		return nil, err
	}
	return recruiters, nil
}

func (r *recruiterRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Recruiter{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *recruiterRepository) GetByID(ctx context.Context, id uint) (models.Recruiter, error) {
	var recruiter models.Recruiter
	if err := r.db.WithContext(ctx).First(&recruiter, id).Error; err != nil {
		return models.Recruiter{}, err
	}
	return recruiter, nil
}

func (r *recruiterRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Recruiter, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var recruiters []models.Recruiter
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&recruiters).Error; err != nil {
		return nil, err
	}
	return recruiters, nil
}

func (r *recruiterRepository) Create(ctx context.Context, recruiter *models.Recruiter) error {
	return r.db.WithContext(ctx).Create(recruiter).Error
}

func (r *recruiterRepository) CreateBatch(ctx context.Context, recruiters []models.Recruiter) error {
	if len(recruiters) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&recruiters).Error
}

func (r *recruiterRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).Model(&models.Recruiter{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Deactivate soft-deletes a recruiter. Rows are never removed so historical
// assignments keep resolving.
func (r *recruiterRepository) Deactivate(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.Recruiter{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
