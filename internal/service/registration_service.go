package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/models"
	"github.com/noah-isme/frontdesk-go-api/internal/observability"
	"github.com/noah-isme/frontdesk-go-api/internal/repository"
)

var (
	// ErrRegistrationNotFound indicates the requested registration does not exist.
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrStepNotFound indicates the named checklist step does not exist.
	ErrStepNotFound = errors.New("registration step not found")
	// ErrInvalidTimeSlot indicates the requested slot is not offered.
	ErrInvalidTimeSlot = errors.New("time slot not offered")
)

// sessionTimeSlots are the walk-in slots offered at the front desk.
var sessionTimeSlots = []string{"8:30 AM", "1:30 PM"}

// stepTemplate is the fixed checklist attached to every registration, in
// order. Template content is immutable; editing it never rewrites the steps
// of existing registrations.
var stepTemplate = []models.RegistrationStep{
	{
		StepName:        "english_communication",
		StepDescription: "For our process you must be able to communicate in English",
	},
	{
		StepName:        "education_proof",
		StepDescription: "Have your Education Proof. If your Education Proof is not from the U.S., you must have the equivalence. If you don't have it, our representatives will inform you how to do it",
	},
	{
		StepName:        "two_government_ids",
		StepDescription: "Two Forms of Government ID such as: Driver's License, Social Security Card, U.S. Passport, Birth Certificate, Permanent Resident Card, Work Permit Card. Documents must be physical originals, not copies, and must not be expired",
	},
}

// RegistrationService drives a visitor registration through screening,
// recruiter allocation and the checklist workflow to completion.
type RegistrationService interface {
	Register(ctx context.Context, payload dto.RegistrationCreateRequest) (dto.RegistrationResponse, error)
	Get(ctx context.Context, id uint) (dto.RegistrationResponse, error)
	CompleteStep(ctx context.Context, id uint, stepName string) (dto.StepResponse, error)
	CompleteRegistration(ctx context.Context, id uint) (dto.RegistrationResponse, error)
	ListLive(ctx context.Context) ([]dto.RegistrationResponse, error)
	ListCompleted(ctx context.Context) ([]dto.RegistrationResponse, error)
}

type registrationService struct {
	repo       repository.RegistrationRepository
	recruiters repository.RecruiterRepository
	roster     RecruiterService
	alloc      AllocationService
	matcher    NameMatcher
	validator  *validator.Validate
	logger     zerolog.Logger
	tracer     trace.Tracer
	now        func() time.Time
}

// NewRegistrationService builds the registration workflow service.
func NewRegistrationService(repo repository.RegistrationRepository, recruiters repository.RecruiterRepository, roster RecruiterService, alloc AllocationService, matcher NameMatcher, validate *validator.Validate, logger zerolog.Logger) RegistrationService {
	return &registrationService{
		repo:       repo,
		recruiters: recruiters,
		roster:     roster,
		alloc:      alloc,
		matcher:    matcher,
		validator:  validate,
		logger:     logger.With().Str("component", "registration_service").Logger(),
		tracer:     otel.Tracer("github.com/noah-isme/frontdesk-go-api/internal/service/registration"),
		now:        time.Now,
	}
}

func (s *registrationService) Register(ctx context.Context, payload dto.RegistrationCreateRequest) (dto.RegistrationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.RegistrationResponse{}, err
	}
	if !validTimeSlot(payload.TimeSlot) {
		return dto.RegistrationResponse{}, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, payload.TimeSlot)
	}

	spanCtx, span := s.tracer.Start(ctx, "registrations.register", trace.WithAttributes(
		attribute.String("registration.session_type", payload.SessionType),
		attribute.String("registration.time_slot", payload.TimeSlot),
	))
	defer span.End()

	// Registration is strict about screening: no decision, no registration.
	matches, err := s.matcher.MatchName(spanCtx, payload.FirstName, payload.LastName)
	if err != nil {
		span.RecordError(err)
		return dto.RegistrationResponse{}, err
	}
	excluded := len(matches) > 0

	if err := s.roster.Bootstrap(spanCtx); err != nil {
		return dto.RegistrationResponse{}, err
	}

	today := s.now()
	unlock := s.alloc.LockSlot(payload.TimeSlot, today)
	defer unlock()

	recruiter, err := s.alloc.SelectRecruiter(spanCtx, payload.TimeSlot, today)
	if err != nil {
		return dto.RegistrationResponse{}, err
	}

	registration := models.Registration{
		FirstName:             payload.FirstName,
		LastName:              payload.LastName,
		Email:                 payload.Email,
		Phone:                 payload.Phone,
		ZipCode:               payload.ZipCode,
		SessionType:           payload.SessionType,
		TimeSlot:              payload.TimeSlot,
		Status:                models.RegistrationStatusRegistered,
		IsInExclusionList:     excluded,
		ExclusionWarningShown: excluded,
		Steps:                 newStepsFromTemplate(),
	}
	if recruiter != nil {
		registration.AssignedRecruiterID = &recruiter.ID
	}

	if err := s.repo.Create(spanCtx, &registration); err != nil {
		span.RecordError(err)
		return dto.RegistrationResponse{}, err
	}

	observability.Registrations().WithLabelValues(payload.SessionType).Inc()
	s.logger.Info().
		Uint("registration_id", registration.ID).
		Str("time_slot", registration.TimeSlot).
		Bool("excluded", excluded).
		Msg("registration created")

	var recruiterName *string
	if recruiter != nil {
		recruiterName = &recruiter.Name
	}
	return dto.NewRegistrationResponse(registration, recruiterName, firstMatch(matches)), nil
}

func (s *registrationService) Get(ctx context.Context, id uint) (dto.RegistrationResponse, error) {
	registration, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RegistrationResponse{}, ErrRegistrationNotFound
		}
		return dto.RegistrationResponse{}, err
	}

	return s.enrich(ctx, registration), nil
}

func (s *registrationService) CompleteStep(ctx context.Context, id uint, stepName string) (dto.StepResponse, error) {
	registration, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StepResponse{}, ErrRegistrationNotFound
		}
		return dto.StepResponse{}, err
	}

	var step *models.RegistrationStep
	for i := range registration.Steps {
		if registration.Steps[i].StepName == stepName {
			step = &registration.Steps[i]
			break
		}
	}
	if step == nil {
		return dto.StepResponse{}, ErrStepNotFound
	}

	// Re-marking a completed step is a no-op success.
	if step.IsCompleted {
		return dto.NewStepResponse(*step), nil
	}

	completedAt := s.now()
	step.IsCompleted = true
	step.CompletedAt = &completedAt
	if err := s.repo.SaveStep(ctx, step); err != nil {
		return dto.StepResponse{}, err
	}

	// Auto-completion fires only while no recruiter is assigned yet. When an
	// assignment already exists, finishing the checklist leaves the status
	// alone and the explicit complete action finalises the registration.
	if registration.AllStepsCompleted() && registration.AssignedRecruiterID == nil {
		registration.Status = models.RegistrationStatusCompleted
		registration.CompletedAt = &completedAt

		// The slot lock must cover both the selection and the update that
		// persists it, or a concurrent completion in the same cohort can
		// observe the same minimum.
		unlock := s.alloc.LockSlot(registration.TimeSlot, completedAt)
		defer unlock()

		if err := s.assignRecruiter(ctx, &registration, completedAt); err != nil {
			return dto.StepResponse{}, err
		}
		if err := s.repo.Update(ctx, &registration); err != nil {
			return dto.StepResponse{}, err
		}

		s.logger.Info().Uint("registration_id", registration.ID).Msg("registration auto-completed after final step")
	}

	return dto.NewStepResponse(*step), nil
}

func (s *registrationService) CompleteRegistration(ctx context.Context, id uint) (dto.RegistrationResponse, error) {
	registration, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RegistrationResponse{}, ErrRegistrationNotFound
		}
		return dto.RegistrationResponse{}, err
	}

	// Completing twice is success; nothing changes.
	if registration.Status == models.RegistrationStatusCompleted {
		return s.enrich(ctx, registration), nil
	}

	completedAt := s.now()
	registration.Status = models.RegistrationStatusCompleted
	registration.CompletedAt = &completedAt

	// Duration is computed exactly once, from registration to completion, in
	// whole minutes.
	duration := int(completedAt.Sub(registration.CreatedAt) / time.Minute)
	registration.DurationMinutes = &duration

	if registration.AssignedRecruiterID == nil {
		unlock := s.alloc.LockSlot(registration.TimeSlot, completedAt)
		defer unlock()

		if err := s.assignRecruiter(ctx, &registration, completedAt); err != nil {
			return dto.RegistrationResponse{}, err
		}
	}

	if err := s.repo.Update(ctx, &registration); err != nil {
		return dto.RegistrationResponse{}, err
	}

	s.logger.Info().
		Uint("registration_id", registration.ID).
		Int("duration_minutes", duration).
		Msg("registration completed")

	return s.enrich(ctx, registration), nil
}

func (s *registrationService) ListLive(ctx context.Context) ([]dto.RegistrationResponse, error) {
	registrations, err := s.repo.ListByStatus(ctx,
		[]string{models.RegistrationStatusRegistered, models.RegistrationStatusInProgress},
		"created_at DESC")
	if err != nil {
		return nil, err
	}
	return s.enrichSlice(ctx, registrations), nil
}

func (s *registrationService) ListCompleted(ctx context.Context) ([]dto.RegistrationResponse, error) {
	registrations, err := s.repo.ListByStatus(ctx,
		[]string{models.RegistrationStatusCompleted},
		"completed_at DESC")
	if err != nil {
		return nil, err
	}
	return s.enrichSlice(ctx, registrations), nil
}

// assignRecruiter fills the assignment best-effort: a nil selection leaves
// the reference null and is not an error. Callers take the slot lock for
// onDate and hold it across this call and the write that persists the
// assignment.
func (s *registrationService) assignRecruiter(ctx context.Context, registration *models.Registration, onDate time.Time) error {
	if err := s.roster.Bootstrap(ctx); err != nil {
		return err
	}

	recruiter, err := s.alloc.SelectRecruiter(ctx, registration.TimeSlot, onDate)
	if err != nil {
		return err
	}
	if recruiter != nil {
		registration.AssignedRecruiterID = &recruiter.ID
	}
	return nil
}

// enrichSlice resolves recruiter display names in one query and attaches
// exclusion matches best-effort.
func (s *registrationService) enrichSlice(ctx context.Context, registrations []models.Registration) []dto.RegistrationResponse {
	ids := make([]uint, 0, len(registrations))
	seen := make(map[uint]struct{}, len(registrations))
	for _, registration := range registrations {
		if registration.AssignedRecruiterID == nil {
			continue
		}
		if _, ok := seen[*registration.AssignedRecruiterID]; ok {
			continue
		}
		seen[*registration.AssignedRecruiterID] = struct{}{}
		ids = append(ids, *registration.AssignedRecruiterID)
	}

	names := make(map[uint]string, len(ids))
	if recruiters, err := s.recruiters.GetByIDs(ctx, ids); err != nil {
		s.logger.Warn().Err(err).Msg("failed to resolve recruiter names")
	} else {
		for _, recruiter := range recruiters {
			names[recruiter.ID] = recruiter.Name
		}
	}

	responses := make([]dto.RegistrationResponse, 0, len(registrations))
	for _, registration := range registrations {
		var recruiterName *string
		if registration.AssignedRecruiterID != nil {
			if name, ok := names[*registration.AssignedRecruiterID]; ok {
				recruiterName = &name
			}
		}
		responses = append(responses, dto.NewRegistrationResponse(registration, recruiterName, s.lookupMatch(ctx, registration)))
	}
	return responses
}

func (s *registrationService) enrich(ctx context.Context, registration models.Registration) dto.RegistrationResponse {
	var recruiterName *string
	if registration.AssignedRecruiterID != nil {
		if recruiter, err := s.recruiters.GetByID(ctx, *registration.AssignedRecruiterID); err == nil {
			recruiterName = &recruiter.Name
		} else {
			s.logger.Warn().Err(err).Uint("recruiter_id", *registration.AssignedRecruiterID).Msg("failed to resolve recruiter name")
		}
	}
	return dto.NewRegistrationResponse(registration, recruiterName, s.lookupMatch(ctx, registration))
}

// lookupMatch re-screens flagged registrations for display. Screening
// failures here degrade to a nil match; they never fail the read.
func (s *registrationService) lookupMatch(ctx context.Context, registration models.Registration) *dto.ExclusionMatch {
	if !registration.IsInExclusionList {
		return nil
	}

	matches, err := s.matcher.MatchName(ctx, registration.FirstName, registration.LastName)
	if err != nil {
		s.logger.Warn().Err(err).Uint("registration_id", registration.ID).Msg("exclusion enrichment failed")
		return nil
	}
	return firstMatch(matches)
}

func newStepsFromTemplate() []models.RegistrationStep {
	steps := make([]models.RegistrationStep, len(stepTemplate))
	copy(steps, stepTemplate)
	return steps
}

func validTimeSlot(slot string) bool {
	for _, candidate := range sessionTimeSlots {
		if candidate == slot {
			return true
		}
	}
	return false
}

func firstMatch(matches []dto.ExclusionMatch) *dto.ExclusionMatch {
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}
