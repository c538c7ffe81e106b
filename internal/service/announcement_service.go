package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/models"
	"github.com/noah-isme/frontdesk-go-api/internal/repository"
)

// AnnouncementService manages the lobby kiosk announcements.
type AnnouncementService interface {
	Create(ctx context.Context, payload dto.AnnouncementCreateRequest) (dto.AnnouncementResponse, error)
	ListActive(ctx context.Context) ([]dto.AnnouncementResponse, error)
}

type announcementService struct {
	repo      repository.AnnouncementRepository
	sanitizer *bluemonday.Policy
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAnnouncementService builds the announcement service. Bodies are
// sanitised on write since the kiosk renders them as HTML.
func NewAnnouncementService(repo repository.AnnouncementRepository, validate *validator.Validate, logger zerolog.Logger) AnnouncementService {
	return &announcementService{
		repo:      repo,
		sanitizer: bluemonday.UGCPolicy(),
		validator: validate,
		logger:    logger.With().Str("component", "announcement_service").Logger(),
		now:       time.Now,
	}
}

func (s *announcementService) Create(ctx context.Context, payload dto.AnnouncementCreateRequest) (dto.AnnouncementResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AnnouncementResponse{}, err
	}

	startsAt := s.now()
	if payload.StartsAt != nil {
		startsAt = *payload.StartsAt
	}

	announcement := models.Announcement{
		Title:    s.sanitizer.Sanitize(payload.Title),
		Body:     s.sanitizer.Sanitize(payload.Body),
		StartsAt: startsAt,
		EndsAt:   payload.EndsAt,
		IsPinned: payload.IsPinned,
	}
	if err := s.repo.Create(ctx, &announcement); err != nil {
		return dto.AnnouncementResponse{}, err
	}

	s.logger.Info().Uint("announcement_id", announcement.ID).Msg("announcement created")
	return dto.NewAnnouncementResponse(announcement), nil
}

func (s *announcementService) ListActive(ctx context.Context) ([]dto.AnnouncementResponse, error) {
	announcements, err := s.repo.ListActive(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return dto.NewAnnouncementResponseSlice(announcements), nil
}
