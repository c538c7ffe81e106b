package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

func seedRecruiters(t *testing.T, repo *recruiterRepoFake, count int) []models.Recruiter {
	t.Helper()
	for i := 0; i < count; i++ {
		recruiter := models.Recruiter{
			Name:     "Recruiter",
			Email:    "recruiter@example.com",
			IsActive: true,
			Status:   models.RecruiterStatusAvailable,
		}
		require.NoError(t, repo.Create(context.Background(), &recruiter))
	}
	recruiters, err := repo.List(context.Background())
	require.NoError(t, err)
	return recruiters
}

func seedAssignment(t *testing.T, repo *registrationRepoFake, recruiterID uint, timeSlot string, createdAt time.Time) {
	t.Helper()
	registration := models.Registration{
		FirstName:           "Seed",
		LastName:            "Visitor",
		Email:               "seed@example.com",
		Phone:               "5550000000",
		SessionType:         "info_session",
		TimeSlot:            timeSlot,
		Status:              models.RegistrationStatusRegistered,
		AssignedRecruiterID: &recruiterID,
		CreatedAt:           createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), &registration))
}

func TestSelectRecruiterEmptyRoster(t *testing.T) {
	svc := NewAllocationService(&recruiterRepoFake{}, newRegistrationRepoFake(), testLogger())

	recruiter, err := svc.SelectRecruiter(context.Background(), "8:30 AM", time.Now())
	require.NoError(t, err)
	require.Nil(t, recruiter)
}

func TestSelectRecruiterPrefersLowestSlotLoad(t *testing.T) {
	recruiterRepo := &recruiterRepoFake{}
	registrationRepo := newRegistrationRepoFake()
	recruiters := seedRecruiters(t, recruiterRepo, 3)

	today := time.Now()
	seedAssignment(t, registrationRepo, recruiters[0].ID, "8:30 AM", today)
	seedAssignment(t, registrationRepo, recruiters[2].ID, "8:30 AM", today)
	seedAssignment(t, registrationRepo, recruiters[2].ID, "8:30 AM", today)

	svc := NewAllocationService(recruiterRepo, registrationRepo, testLogger())

	chosen, err := svc.SelectRecruiter(context.Background(), "8:30 AM", today)
	require.NoError(t, err)
	require.NotNil(t, chosen)
	require.Equal(t, recruiters[1].ID, chosen.ID)
}

func TestSelectRecruiterBreaksSlotTiesByDayLoad(t *testing.T) {
	recruiterRepo := &recruiterRepoFake{}
	registrationRepo := newRegistrationRepoFake()
	recruiters := seedRecruiters(t, recruiterRepo, 2)

	// Both have zero load in the afternoon slot; the first already carries a
	// morning assignment today.
	today := time.Now()
	seedAssignment(t, registrationRepo, recruiters[0].ID, "8:30 AM", today)

	svc := NewAllocationService(recruiterRepo, registrationRepo, testLogger())

	chosen, err := svc.SelectRecruiter(context.Background(), "1:30 PM", today)
	require.NoError(t, err)
	require.NotNil(t, chosen)
	require.Equal(t, recruiters[1].ID, chosen.ID)
}

func TestSelectRecruiterIgnoresOtherDays(t *testing.T) {
	recruiterRepo := &recruiterRepoFake{}
	registrationRepo := newRegistrationRepoFake()
	recruiters := seedRecruiters(t, recruiterRepo, 2)

	// Yesterday's load must not count against today's allocation.
	today := time.Now()
	seedAssignment(t, registrationRepo, recruiters[1].ID, "8:30 AM", today.AddDate(0, 0, -1))
	seedAssignment(t, registrationRepo, recruiters[0].ID, "8:30 AM", today)

	svc := NewAllocationService(recruiterRepo, registrationRepo, testLogger())

	chosen, err := svc.SelectRecruiter(context.Background(), "8:30 AM", today)
	require.NoError(t, err)
	require.NotNil(t, chosen)
	require.Equal(t, recruiters[1].ID, chosen.ID)
}

func TestSelectRecruiterRandomTieBreak(t *testing.T) {
	recruiterRepo := &recruiterRepoFake{}
	registrationRepo := newRegistrationRepoFake()
	recruiters := seedRecruiters(t, recruiterRepo, 3)

	svc := NewAllocationService(recruiterRepo, registrationRepo, testLogger())
	svc.(*allocationService).rng = func(n int) int {
		require.Equal(t, 3, n)
		return 2
	}

	chosen, err := svc.SelectRecruiter(context.Background(), "8:30 AM", time.Now())
	require.NoError(t, err)
	require.NotNil(t, chosen)
	require.Equal(t, recruiters[2].ID, chosen.ID)
}

func TestSelectRecruiterTieBreakReachesAllCandidates(t *testing.T) {
	recruiterRepo := &recruiterRepoFake{}
	registrationRepo := newRegistrationRepoFake()
	recruiters := seedRecruiters(t, recruiterRepo, 3)

	svc := NewAllocationService(recruiterRepo, registrationRepo, testLogger())

	// Nothing is persisted between selections, so every trial is a three-way
	// tie resolved by the default rng. Over enough trials each recruiter must
	// come up at least once.
	chosen := make(map[uint]int, len(recruiters))
	for i := 0; i < 200; i++ {
		recruiter, err := svc.SelectRecruiter(context.Background(), "8:30 AM", time.Now())
		require.NoError(t, err)
		require.NotNil(t, recruiter)
		chosen[recruiter.ID]++
	}

	require.Len(t, chosen, len(recruiters))
}

func TestSelectRecruiterSkipsBusyAndInactive(t *testing.T) {
	recruiterRepo := &recruiterRepoFake{}
	registrationRepo := newRegistrationRepoFake()
	recruiters := seedRecruiters(t, recruiterRepo, 3)

	require.NoError(t, recruiterRepo.UpdateStatus(context.Background(), recruiters[0].ID, models.RecruiterStatusBusy))
	require.NoError(t, recruiterRepo.Deactivate(context.Background(), recruiters[2].ID))

	svc := NewAllocationService(recruiterRepo, registrationRepo, testLogger())

	chosen, err := svc.SelectRecruiter(context.Background(), "8:30 AM", time.Now())
	require.NoError(t, err)
	require.NotNil(t, chosen)
	require.Equal(t, recruiters[1].ID, chosen.ID)
}

func TestLockSlotSerialisesSameCohort(t *testing.T) {
	svc := NewAllocationService(&recruiterRepoFake{}, newRegistrationRepoFake(), testLogger())

	today := time.Now()
	unlock := svc.LockSlot("8:30 AM", today)

	acquired := make(chan struct{})
	go func() {
		second := svc.LockSlot("8:30 AM", today)
		second()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first was held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired after release")
	}
}

func TestLockSlotIndependentCohorts(t *testing.T) {
	svc := NewAllocationService(&recruiterRepoFake{}, newRegistrationRepoFake(), testLogger())

	today := time.Now()
	unlockMorning := svc.LockSlot("8:30 AM", today)
	defer unlockMorning()

	// A different slot on the same day must not block.
	unlockAfternoon := svc.LockSlot("1:30 PM", today)
	unlockAfternoon()
}
