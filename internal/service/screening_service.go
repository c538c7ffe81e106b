package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/models"
	"github.com/noah-isme/frontdesk-go-api/internal/observability"
	"github.com/noah-isme/frontdesk-go-api/internal/repository"
)

// ErrScreeningUnavailable indicates the exclusion screening backend failed.
// Registration cannot proceed without a screening decision, so the register
// path propagates this; listing enrichment degrades to a nil match instead.
var ErrScreeningUnavailable = errors.New("exclusion screening unavailable")

const exclusionWarningMessage = "Please verify social and data to verify that this person is on the PC or RR list"

// NameMatcher screens a visitor name against the exclusion list and returns
// zero or more candidate matches.
type NameMatcher interface {
	MatchName(ctx context.Context, firstName, lastName string) ([]dto.ExclusionMatch, error)
}

// ScreeningService is the full screening surface: the matcher port, the
// on-demand check endpoint used by staff, and list maintenance.
type ScreeningService interface {
	NameMatcher
	Check(ctx context.Context, firstName, lastName string) (dto.ExclusionCheckResponse, error)
	ListEntries(ctx context.Context) ([]dto.ExclusionMatch, error)
	AddEntry(ctx context.Context, payload dto.ExclusionEntryCreateRequest) (dto.ExclusionMatch, error)
}

type screeningService struct {
	repo      repository.ExclusionRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewScreeningService builds the exclusion-list backed screening adapter.
func NewScreeningService(repo repository.ExclusionRepository, validate *validator.Validate, logger zerolog.Logger) ScreeningService {
	return &screeningService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "screening_service").Logger(),
	}
}

func (s *screeningService) MatchName(ctx context.Context, firstName, lastName string) ([]dto.ExclusionMatch, error) {
	entries, err := s.repo.Search(ctx, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreeningUnavailable, err)
	}

	matches := make([]dto.ExclusionMatch, 0, len(entries))
	for _, entry := range entries {
		matches = append(matches, dto.NewExclusionMatch(entry))
	}

	if len(matches) > 0 {
		observability.ScreeningMatches().Inc()
	}

	return matches, nil
}

func (s *screeningService) Check(ctx context.Context, firstName, lastName string) (dto.ExclusionCheckResponse, error) {
	matches, err := s.MatchName(ctx, firstName, lastName)
	if err != nil {
		return dto.ExclusionCheckResponse{}, err
	}

	response := dto.ExclusionCheckResponse{
		IsInExclusionList: len(matches) > 0,
		Matches:           matches,
	}
	if response.IsInExclusionList {
		message := exclusionWarningMessage
		response.WarningMessage = &message
	}

	return response, nil
}

func (s *screeningService) ListEntries(ctx context.Context) ([]dto.ExclusionMatch, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]dto.ExclusionMatch, 0, len(entries))
	for _, entry := range entries {
		matches = append(matches, dto.NewExclusionMatch(entry))
	}
	return matches, nil
}

func (s *screeningService) AddEntry(ctx context.Context, payload dto.ExclusionEntryCreateRequest) (dto.ExclusionMatch, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ExclusionMatch{}, err
	}

	entry := models.ExclusionEntry{
		Name:  payload.Name,
		Code:  payload.Code,
		SSN:   payload.SSN,
		DOB:   payload.DOB,
		Notes: payload.Notes,
	}
	if err := s.repo.Create(ctx, &entry); err != nil {
		return dto.ExclusionMatch{}, err
	}

	s.logger.Info().Uint("entry_id", entry.ID).Msg("exclusion entry added")
	return dto.NewExclusionMatch(entry), nil
}
