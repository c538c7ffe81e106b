package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

// OrientationConfigRepository defines persistence operations for orientation
// settings.
type OrientationConfigRepository interface {
	GetActive(ctx context.Context) (models.OrientationConfig, error)
	Create(ctx context.Context, config *models.OrientationConfig) error
	ReplaceActive(ctx context.Context, config *models.OrientationConfig) error
}

type orientationConfigRepository struct {
	db *gorm.DB
}

// NewOrientationConfigRepository instantiates a GORM-backed config repository.
func NewOrientationConfigRepository(db *gorm.DB) OrientationConfigRepository {
	return &orientationConfigRepository{db: db}
}

func (r *orientationConfigRepository) GetActive(ctx context.Context) (models.OrientationConfig, error) {
	var config models.OrientationConfig
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id DESC").First(&config).Error
	if err != nil {
		return models.OrientationConfig{}, err
	}
	return config, nil
}

func (r *orientationConfigRepository) Create(ctx context.Context, config *models.OrientationConfig) error {
	return r.db.WithContext(ctx).Create(config).Error
}

// ReplaceActive deactivates every existing config row and inserts the new one
// as active, in a single transaction.
func (r *orientationConfigRepository) ReplaceActive(ctx context.Context, config *models.OrientationConfig) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.OrientationConfig{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		config.IsActive = true
		return tx.Create(config).Error
	})
}
