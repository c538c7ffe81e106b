package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

type exclusionRepoFake struct {
	entries   []models.ExclusionEntry
	searchErr error
}

func (f *exclusionRepoFake) Search(_ context.Context, firstName, lastName string) ([]models.ExclusionEntry, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.entries, nil
}

func (f *exclusionRepoFake) List(_ context.Context) ([]models.ExclusionEntry, error) {
	return f.entries, nil
}

func (f *exclusionRepoFake) Create(_ context.Context, entry *models.ExclusionEntry) error {
	entry.ID = uint(len(f.entries) + 1)
	f.entries = append(f.entries, *entry)
	return nil
}

func newScreeningService(repo *exclusionRepoFake) ScreeningService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewScreeningService(repo, validate, testLogger())
}

func TestCheckReturnsWarningOnMatch(t *testing.T) {
	dob := time.Date(1990, time.March, 12, 0, 0, 0, 0, time.UTC)
	repo := &exclusionRepoFake{entries: []models.ExclusionEntry{
		{ID: 1, Name: "Doe, Jane", Code: "PC", SSN: "123456789", DOB: &dob},
	}}

	result, err := newScreeningService(repo).Check(context.Background(), "Jane", "Doe")
	require.NoError(t, err)

	require.True(t, result.IsInExclusionList)
	require.Len(t, result.Matches, 1)
	require.NotNil(t, result.WarningMessage)
	require.Equal(t, "6789", result.Matches[0].SSNLast4)
}

func TestCheckCleanName(t *testing.T) {
	result, err := newScreeningService(&exclusionRepoFake{}).Check(context.Background(), "John", "Smith")
	require.NoError(t, err)

	require.False(t, result.IsInExclusionList)
	require.Empty(t, result.Matches)
	require.Nil(t, result.WarningMessage)
}

func TestMatchNameWrapsBackendFailure(t *testing.T) {
	repo := &exclusionRepoFake{searchErr: errors.New("connection refused")}

	_, err := newScreeningService(repo).MatchName(context.Background(), "Jane", "Doe")
	require.ErrorIs(t, err, ErrScreeningUnavailable)
}

func TestAddEntryValidatesAndMasks(t *testing.T) {
	repo := &exclusionRepoFake{}
	svc := newScreeningService(repo)

	_, err := svc.AddEntry(context.Background(), dto.ExclusionEntryCreateRequest{Name: "x"})
	require.Error(t, err)

	entry, err := svc.AddEntry(context.Background(), dto.ExclusionEntryCreateRequest{Name: "Doe, John", Code: "RR", SSN: "987654321"})
	require.NoError(t, err)
	require.Equal(t, "4321", entry.SSNLast4)

	listed, err := svc.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
}
