package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

// VisitRepository defines persistence operations for the simple visit types
// (orientation, badge, fingerprint, team visit).
type VisitRepository interface {
	CreateOrientation(ctx context.Context, visit *models.NewHireOrientation) error
	ListOrientations(ctx context.Context) ([]models.NewHireOrientation, error)
	CreateBadge(ctx context.Context, visit *models.BadgeAppointment) error
	ListBadges(ctx context.Context) ([]models.BadgeAppointment, error)
	CreateFingerprint(ctx context.Context, visit *models.FingerprintAppointment) error
	ListFingerprints(ctx context.Context) ([]models.FingerprintAppointment, error)
	CreateTeamVisit(ctx context.Context, visit *models.TeamVisit) error
	ListTeamVisits(ctx context.Context) ([]models.TeamVisit, error)
	ListTeamVisitsByMember(ctx context.Context, memberID uint) ([]models.TeamVisit, error)
	GetTeamVisit(ctx context.Context, id uint) (models.TeamVisit, error)
	UpdateTeamVisit(ctx context.Context, visit *models.TeamVisit) error
}

type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository instantiates a GORM-backed visit repository.
func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) CreateOrientation(ctx context.Context, visit *models.NewHireOrientation) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *visitRepository) ListOrientations(ctx context.Context) ([]models.NewHireOrientation, error) {
	var visits []models.NewHireOrientation
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) CreateBadge(ctx context.Context, visit *models.BadgeAppointment) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *visitRepository) ListBadges(ctx context.Context) ([]models.BadgeAppointment, error) {
	var visits []models.BadgeAppointment
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) CreateFingerprint(ctx context.Context, visit *models.FingerprintAppointment) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *visitRepository) ListFingerprints(ctx context.Context) ([]models.FingerprintAppointment, error) {
	var visits []models.FingerprintAppointment
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) CreateTeamVisit(ctx context.Context, visit *models.TeamVisit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *visitRepository) ListTeamVisits(ctx context.Context) ([]models.TeamVisit, error) {
	var visits []models.TeamVisit
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) ListTeamVisitsByMember(ctx context.Context, memberID uint) ([]models.TeamVisit, error) {
	var visits []models.TeamVisit
	err := r.db.WithContext(ctx).
		Where("team_member_id = ?", memberID).
		Order("created_at DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) GetTeamVisit(ctx context.Context, id uint) (models.TeamVisit, error) {
	var visit models.TeamVisit
	if err := r.db.WithContext(ctx).First(&visit, id).Error; err != nil {
		return models.TeamVisit{}, err
	}
	return visit, nil
}

func (r *visitRepository) UpdateTeamVisit(ctx context.Context, visit *models.TeamVisit) error {
	return r.db.WithContext(ctx).Save(visit).Error
}
