package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/models"
	"github.com/noah-isme/frontdesk-go-api/internal/repository"
)

// ErrTeamVisitNotFound indicates the requested team visit does not exist.
var ErrTeamVisitNotFound = errors.New("team visit not found")

// teamVisitSubject is the broker subject staff notifiers listen on.
const teamVisitSubject = "frontdesk.team_visit.requested"

// EventPublisher publishes fire-and-forget events to the message broker.
// *nats.Conn satisfies it.
type EventPublisher interface {
	Publish(subject string, data []byte) error
}

// VisitService registers the simple visit types that bypass the full
// registration workflow, and notifies staff of team visits.
type VisitService interface {
	RegisterOrientation(ctx context.Context, payload dto.OrientationCreateRequest) (dto.OrientationResponse, error)
	ListOrientations(ctx context.Context) ([]dto.OrientationResponse, error)
	RegisterBadge(ctx context.Context, payload dto.BadgeCreateRequest) (dto.BadgeResponse, error)
	ListBadges(ctx context.Context) ([]dto.BadgeResponse, error)
	RegisterFingerprint(ctx context.Context, payload dto.FingerprintCreateRequest) (dto.FingerprintResponse, error)
	ListFingerprints(ctx context.Context) ([]dto.FingerprintResponse, error)
	RegisterTeamVisit(ctx context.Context, payload dto.TeamVisitCreateRequest) (dto.TeamVisitResponse, error)
	ListTeamVisits(ctx context.Context) ([]dto.TeamVisitResponse, error)
	ListTeamVisitsForMember(ctx context.Context, memberID uint) ([]dto.TeamVisitResponse, error)
	NotifyTeamVisit(ctx context.Context, id uint) (dto.TeamVisitResponse, error)
}

type visitService struct {
	repo      repository.VisitRepository
	publisher EventPublisher
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewVisitService builds the visit service. publisher may be nil when the
// broker is not configured; notifications then only update the record.
func NewVisitService(repo repository.VisitRepository, publisher EventPublisher, validate *validator.Validate, logger zerolog.Logger) VisitService {
	return &visitService{
		repo:      repo,
		publisher: publisher,
		validator: validate,
		logger:    logger.With().Str("component", "visit_service").Logger(),
		now:       time.Now,
	}
}

func (s *visitService) RegisterOrientation(ctx context.Context, payload dto.OrientationCreateRequest) (dto.OrientationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.OrientationResponse{}, err
	}

	visit := models.NewHireOrientation{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		ZipCode:   payload.ZipCode,
		TimeSlot:  payload.TimeSlot,
		Status:    models.VisitStatusRegistered,
	}
	if err := s.repo.CreateOrientation(ctx, &visit); err != nil {
		return dto.OrientationResponse{}, err
	}

	s.logger.Info().Uint("orientation_id", visit.ID).Str("time_slot", visit.TimeSlot).Msg("orientation registered")
	return dto.NewOrientationResponse(visit), nil
}

func (s *visitService) ListOrientations(ctx context.Context) ([]dto.OrientationResponse, error) {
	visits, err := s.repo.ListOrientations(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewOrientationResponseSlice(visits), nil
}

func (s *visitService) RegisterBadge(ctx context.Context, payload dto.BadgeCreateRequest) (dto.BadgeResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.BadgeResponse{}, err
	}

	visit := models.BadgeAppointment{
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		Email:           payload.Email,
		Phone:           payload.Phone,
		ZipCode:         payload.ZipCode,
		AppointmentTime: payload.AppointmentTime,
		Status:          models.VisitStatusRegistered,
	}
	if err := s.repo.CreateBadge(ctx, &visit); err != nil {
		return dto.BadgeResponse{}, err
	}

	s.logger.Info().Uint("badge_id", visit.ID).Msg("badge appointment registered")
	return dto.NewBadgeResponse(visit), nil
}

func (s *visitService) ListBadges(ctx context.Context) ([]dto.BadgeResponse, error) {
	visits, err := s.repo.ListBadges(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewBadgeResponseSlice(visits), nil
}

func (s *visitService) RegisterFingerprint(ctx context.Context, payload dto.FingerprintCreateRequest) (dto.FingerprintResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.FingerprintResponse{}, err
	}

	visit := models.FingerprintAppointment{
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		Email:           payload.Email,
		Phone:           payload.Phone,
		ZipCode:         payload.ZipCode,
		AppointmentTime: payload.AppointmentTime,
		FingerprintType: payload.FingerprintType,
		Status:          models.VisitStatusRegistered,
	}
	if err := s.repo.CreateFingerprint(ctx, &visit); err != nil {
		return dto.FingerprintResponse{}, err
	}

	s.logger.Info().Uint("fingerprint_id", visit.ID).Str("type", visit.FingerprintType).Msg("fingerprint appointment registered")
	return dto.NewFingerprintResponse(visit), nil
}

func (s *visitService) ListFingerprints(ctx context.Context) ([]dto.FingerprintResponse, error) {
	visits, err := s.repo.ListFingerprints(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewFingerprintResponseSlice(visits), nil
}

func (s *visitService) RegisterTeamVisit(ctx context.Context, payload dto.TeamVisitCreateRequest) (dto.TeamVisitResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TeamVisitResponse{}, err
	}

	visit := models.TeamVisit{
		VisitorName:     payload.VisitorName,
		VisitorEmail:    payload.VisitorEmail,
		Team:            payload.Team,
		TeamMemberID:    payload.TeamMemberID,
		TeamMemberName:  payload.TeamMemberName,
		TeamMemberEmail: payload.TeamMemberEmail,
		Reason:          payload.Reason,
		Status:          models.TeamVisitStatusPending,
	}
	if err := s.repo.CreateTeamVisit(ctx, &visit); err != nil {
		return dto.TeamVisitResponse{}, err
	}

	s.logger.Info().Uint("team_visit_id", visit.ID).Str("team", visit.Team).Msg("team visit registered")
	return dto.NewTeamVisitResponse(visit), nil
}

func (s *visitService) ListTeamVisits(ctx context.Context) ([]dto.TeamVisitResponse, error) {
	visits, err := s.repo.ListTeamVisits(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewTeamVisitResponseSlice(visits), nil
}

func (s *visitService) ListTeamVisitsForMember(ctx context.Context, memberID uint) ([]dto.TeamVisitResponse, error) {
	visits, err := s.repo.ListTeamVisitsByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return dto.NewTeamVisitResponseSlice(visits), nil
}

// NotifyTeamVisit marks the visit notified and publishes the event. Broker
// failures are logged, not returned; the desk flow must not stall on the
// broker.
func (s *visitService) NotifyTeamVisit(ctx context.Context, id uint) (dto.TeamVisitResponse, error) {
	visit, err := s.repo.GetTeamVisit(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TeamVisitResponse{}, ErrTeamVisitNotFound
		}
		return dto.TeamVisitResponse{}, err
	}

	notifiedAt := s.now()
	visit.Status = models.TeamVisitStatusNotified
	visit.NotifiedAt = &notifiedAt
	if err := s.repo.UpdateTeamVisit(ctx, &visit); err != nil {
		return dto.TeamVisitResponse{}, err
	}

	if s.publisher != nil {
		event, err := json.Marshal(dto.NewTeamVisitResponse(visit))
		if err == nil {
			err = s.publisher.Publish(teamVisitSubject, event)
		}
		if err != nil {
			s.logger.Warn().Err(err).Uint("team_visit_id", visit.ID).Msg("failed to publish team visit event")
		}
	}

	s.logger.Info().Uint("team_visit_id", visit.ID).Msg("team visit notified")
	return dto.NewTeamVisitResponse(visit), nil
}
