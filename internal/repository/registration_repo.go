package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

// RegistrationRepository defines persistence operations for info-session
// registrations and their checklist steps.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	GetByID(ctx context.Context, id uint) (models.Registration, error)
	Update(ctx context.Context, registration *models.Registration) error
	SaveStep(ctx context.Context, step *models.RegistrationStep) error
	ListByStatus(ctx context.Context, statuses []string, orderBy string) ([]models.Registration, error)
	CountBySlot(ctx context.Context, recruiterID uint, timeSlot string, onDate time.Time) (int64, error)
	CountByDay(ctx context.Context, recruiterID uint, onDate time.Time) (int64, error)
}

type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository instantiates a GORM-backed registration repository.
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

// Create persists the registration together with its steps in one
// transaction; either everything exists afterwards or nothing does.
func (r *registrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	return r.db.WithContext(ctx).Create(registration).Error
}

func (r *registrationRepository) GetByID(ctx context.Context, id uint) (models.Registration, error) {
	var registration models.Registration
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&registration, id).Error
	if err != nil {
		return models.Registration{}, err
	}
	return registration, nil
}

func (r *registrationRepository) Update(ctx context.Context, registration *models.Registration) error {
	return r.db.WithContext(ctx).Omit("Steps").Save(registration).Error
}

func (r *registrationRepository) SaveStep(ctx context.Context, step *models.RegistrationStep) error {
	return r.db.WithContext(ctx).Save(step).Error
}

func (r *registrationRepository) ListByStatus(ctx context.Context, statuses []string, orderBy string) ([]models.Registration, error) {
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	var registrations []models.Registration
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("status IN ?", statuses).
		Order(orderBy).
		Find(&registrations).Error
	if err != nil {
		return nil, err
	}
	return registrations, nil
}

// CountBySlot counts the recruiter's assignments within one time slot on one
// date. Counts are always queried fresh; callers must not cache them.
func (r *registrationRepository) CountBySlot(ctx context.Context, recruiterID uint, timeSlot string, onDate time.Time) (int64, error) {
	start, end := dayBounds(onDate)
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Registration{}).
		Where("assigned_recruiter_id = ? AND time_slot = ? AND created_at >= ? AND created_at < ?",
			recruiterID, timeSlot, start, end).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// CountByDay counts the recruiter's assignments across all time slots on one
// date.
func (r *registrationRepository) CountByDay(ctx context.Context, recruiterID uint, onDate time.Time) (int64, error) {
	start, end := dayBounds(onDate)
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Registration{}).
		Where("assigned_recruiter_id = ? AND created_at >= ? AND created_at < ?", recruiterID, start, end).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func dayBounds(onDate time.Time) (time.Time, time.Time) {
	year, month, day := onDate.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, onDate.Location())
	return start, start.AddDate(0, 0, 1)
}
