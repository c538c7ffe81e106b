package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

// ExclusionRepository defines persistence operations for the exclusion list.
type ExclusionRepository interface {
	Search(ctx context.Context, firstName, lastName string) ([]models.ExclusionEntry, error)
	List(ctx context.Context) ([]models.ExclusionEntry, error)
	Create(ctx context.Context, entry *models.ExclusionEntry) error
}

type exclusionRepository struct {
	db *gorm.DB
}

// NewExclusionRepository instantiates a GORM-backed exclusion repository.
func NewExclusionRepository(db *gorm.DB) ExclusionRepository {
	return &exclusionRepository{db: db}
}

// Search matches entries whose stored name contains both the first and the
// last name, case-insensitively. The richer fuzzy matching lives outside this
// service; this is the baseline lookup the adapter falls back on.
func (r *exclusionRepository) Search(ctx context.Context, firstName, lastName string) ([]models.ExclusionEntry, error) {
	first := "%" + strings.ToLower(strings.TrimSpace(firstName)) + "%"
	last := "%" + strings.ToLower(strings.TrimSpace(lastName)) + "%"

	var entries []models.ExclusionEntry
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? AND LOWER(name) LIKE ?", first, last).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *exclusionRepository) List(ctx context.Context) ([]models.ExclusionEntry, error) {
	var entries []models.ExclusionEntry
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *exclusionRepository) Create(ctx context.Context, entry *models.ExclusionEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
