package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/models"
	"github.com/noah-isme/frontdesk-go-api/internal/repository"
)

// ErrRecruiterNotFound indicates the requested recruiter does not exist.
var ErrRecruiterNotFound = errors.New("recruiter not found")

// defaultRoster seeds an empty directory so walk-ins can be assigned on day
// one. Bootstrap never touches a non-empty directory, regardless of count.
var defaultRoster = []models.Recruiter{
	{Name: "Nicolette Rose", Email: "nicolette.rose@kellyeducation.com", IsActive: true, Status: models.RecruiterStatusAvailable},
	{Name: "Rodrigo Bermudez", Email: "rodrigo.bermudez@kellyeducation.com", IsActive: true, Status: models.RecruiterStatusAvailable},
	{Name: "Miccael Val", Email: "miccael.val@kellyeducation.com", IsActive: true, Status: models.RecruiterStatusAvailable},
	{Name: "Demetrius Lee", Email: "demetrius.lee@kellyeducation.com", IsActive: true, Status: models.RecruiterStatusAvailable},
	{Name: "Jorge Silva", Email: "jorge.silva@kellyeducation.com", IsActive: true, Status: models.RecruiterStatusAvailable},
}

// RecruiterService manages the recruiter roster.
type RecruiterService interface {
	Bootstrap(ctx context.Context) error
	List(ctx context.Context) ([]dto.RecruiterResponse, error)
	ListAvailable(ctx context.Context) ([]dto.RecruiterResponse, error)
	Create(ctx context.Context, payload dto.RecruiterCreateRequest) (dto.RecruiterResponse, error)
	SetStatus(ctx context.Context, id uint, status string) (dto.RecruiterResponse, error)
	Deactivate(ctx context.Context, id uint) error
}

type recruiterService struct {
	repo      repository.RecruiterRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewRecruiterService builds the roster service.
func NewRecruiterService(repo repository.RecruiterRepository, validate *validator.Validate, logger zerolog.Logger) RecruiterService {
	return &recruiterService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "recruiter_service").Logger(),
	}
}

// Bootstrap seeds the default roster when the directory is empty. Idempotent:
// any existing rows, whatever their count, leave the roster untouched.
func (s *recruiterService) Bootstrap(ctx context.Context) error {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	seed := make([]models.Recruiter, len(defaultRoster))
	copy(seed, defaultRoster)
	if err := s.repo.CreateBatch(ctx, seed); err != nil {
		return err
	}

	s.logger.Info().Int("count", len(seed)).Msg("default recruiter roster seeded")
	return nil
}

func (s *recruiterService) List(ctx context.Context) ([]dto.RecruiterResponse, error) {
	recruiters, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewRecruiterResponseSlice(recruiters), nil
}

func (s *recruiterService) ListAvailable(ctx context.Context) ([]dto.RecruiterResponse, error) {
	recruiters, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewRecruiterResponseSlice(recruiters), nil
}

func (s *recruiterService) Create(ctx context.Context, payload dto.RecruiterCreateRequest) (dto.RecruiterResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.RecruiterResponse{}, err
	}

	recruiter := models.Recruiter{
		Name:     payload.Name,
		Email:    payload.Email,
		IsActive: true,
		Status:   models.RecruiterStatusAvailable,
	}
	if err := s.repo.Create(ctx, &recruiter); err != nil {
		return dto.RecruiterResponse{}, err
	}

	s.logger.Info().Uint("recruiter_id", recruiter.ID).Msg("recruiter created")
	return dto.NewRecruiterResponse(recruiter), nil
}

func (s *recruiterService) SetStatus(ctx context.Context, id uint, status string) (dto.RecruiterResponse, error) {
	if status != models.RecruiterStatusAvailable && status != models.RecruiterStatusBusy {
		return dto.RecruiterResponse{}, errors.New("status must be available or busy")
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RecruiterResponse{}, ErrRecruiterNotFound
		}
		return dto.RecruiterResponse{}, err
	}

	recruiter, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.RecruiterResponse{}, err
	}

	s.logger.Info().Uint("recruiter_id", id).Str("status", status).Msg("recruiter status updated")
	return dto.NewRecruiterResponse(recruiter), nil
}

func (s *recruiterService) Deactivate(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecruiterNotFound
		}
		return err
	}

	s.logger.Info().Uint("recruiter_id", id).Msg("recruiter deactivated")
	return nil
}
