package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
	"github.com/noah-isme/frontdesk-go-api/internal/observability"
	"github.com/noah-isme/frontdesk-go-api/internal/repository"
)

// AllocationService selects which recruiter receives a new registration so
// that load stays balanced across a time slot and across the day. It only
// selects; it never mutates the roster or flips anyone to busy.
type AllocationService interface {
	// SelectRecruiter returns the least-loaded assignable recruiter for the
	// given slot and date, or nil when nobody is available. A nil result is a
	// valid business outcome, not an error.
	SelectRecruiter(ctx context.Context, timeSlot string, onDate time.Time) (*models.Recruiter, error)

	// LockSlot serialises count-then-assign sequences for one (timeSlot, date)
	// cohort. Callers hold the lock across SelectRecruiter and the write that
	// persists the assignment, and release it via the returned func.
	LockSlot(timeSlot string, onDate time.Time) func()
}

type allocationService struct {
	recruiters    repository.RecruiterRepository
	registrations repository.RegistrationRepository
	logger        zerolog.Logger
	rng           func(n int) int

	mu    sync.Mutex
	slots map[string]*sync.Mutex
}

// NewAllocationService builds the allocation engine.
func NewAllocationService(recruiters repository.RecruiterRepository, registrations repository.RegistrationRepository, logger zerolog.Logger) AllocationService {
	return &allocationService{
		recruiters:    recruiters,
		registrations: registrations,
		logger:        logger.With().Str("component", "allocation_service").Logger(),
		rng:           rand.Intn,
		slots:         make(map[string]*sync.Mutex),
	}
}

func (s *allocationService) SelectRecruiter(ctx context.Context, timeSlot string, onDate time.Time) (*models.Recruiter, error) {
	available, err := s.recruiters.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		observability.Allocations().WithLabelValues("none_available").Inc()
		s.logger.Info().Str("time_slot", timeSlot).Msg("no recruiters available for assignment")
		return nil, nil
	}

	slotLoads := make(map[uint]int64, len(available))
	minSlotLoad := int64(-1)
	for _, recruiter := range available {
		load, err := s.registrations.CountBySlot(ctx, recruiter.ID, timeSlot, onDate)
		if err != nil {
			return nil, err
		}
		slotLoads[recruiter.ID] = load
		if minSlotLoad < 0 || load < minSlotLoad {
			minSlotLoad = load
		}
	}

	candidates := make([]models.Recruiter, 0, len(available))
	for _, recruiter := range available {
		if slotLoads[recruiter.ID] == minSlotLoad {
			candidates = append(candidates, recruiter)
		}
	}

	// Slot-level ties fall back to the daily total across all time slots.
	if len(candidates) > 1 {
		dayLoads := make(map[uint]int64, len(candidates))
		minDayLoad := int64(-1)
		for _, recruiter := range candidates {
			load, err := s.registrations.CountByDay(ctx, recruiter.ID, onDate)
			if err != nil {
				return nil, err
			}
			dayLoads[recruiter.ID] = load
			if minDayLoad < 0 || load < minDayLoad {
				minDayLoad = load
			}
		}

		reduced := candidates[:0]
		for _, recruiter := range candidates {
			if dayLoads[recruiter.ID] == minDayLoad {
				reduced = append(reduced, recruiter)
			}
		}
		candidates = reduced
	}

	// Should not be reachable, but never return an empty selection when
	// someone was available.
	if len(candidates) == 0 {
		chosen := available[0]
		observability.Allocations().WithLabelValues("fallback").Inc()
		return &chosen, nil
	}

	// Final random tie-break so a stable id ordering never favours the same
	// recruiter on persistent ties.
	chosen := candidates[0]
	if len(candidates) > 1 {
		chosen = candidates[s.rng(len(candidates))]
	}

	observability.Allocations().WithLabelValues("assigned").Inc()
	s.logger.Info().
		Uint("recruiter_id", chosen.ID).
		Str("time_slot", timeSlot).
		Int64("slot_load", slotLoads[chosen.ID]).
		Msg("recruiter selected")

	return &chosen, nil
}

// LockSlot hands out one mutex per (timeSlot, date) cohort. The key space is
// a handful of slots per day, so entries are kept for the process lifetime.
func (s *allocationService) LockSlot(timeSlot string, onDate time.Time) func() {
	key := fmt.Sprintf("%s|%s", timeSlot, onDate.Format("2006-01-02"))

	s.mu.Lock()
	slot, ok := s.slots[key]
	if !ok {
		slot = &sync.Mutex{}
		s.slots[key] = slot
	}
	s.mu.Unlock()

	slot.Lock()
	return slot.Unlock
}
