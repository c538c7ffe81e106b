package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

// AnnouncementRepository defines persistence operations for lobby
// announcements.
type AnnouncementRepository interface {
	ListActive(ctx context.Context, reference time.Time) ([]models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement) error
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository instantiates a GORM-backed announcement repository.
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) ListActive(ctx context.Context, reference time.Time) ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.WithContext(ctx).
		Where("starts_at <= ? AND (ends_at IS NULL OR ends_at >= ?)", reference, reference).
		Order("is_pinned DESC, starts_at DESC").
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *announcementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}
