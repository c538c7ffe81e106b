package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// recruiterRepoFake is an in-memory RecruiterRepository.
type recruiterRepoFake struct {
	mu     sync.Mutex
	nextID uint
	items  []models.Recruiter
}

func (f *recruiterRepoFake) List(_ context.Context) ([]models.Recruiter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Recruiter(nil), f.items...), nil
}

func (f *recruiterRepoFake) ListAvailable(_ context.Context) ([]models.Recruiter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	available := make([]models.Recruiter, 0, len(f.items))
	for _, recruiter := range f.items {
		if recruiter.IsAssignable() {
			available = append(available, recruiter)
		}
	}
	return available, nil
}

func (f *recruiterRepoFake) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.items)), nil
}

func (f *recruiterRepoFake) GetByID(_ context.Context, id uint) (models.Recruiter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, recruiter := range f.items {
		if recruiter.ID == id {
			return recruiter, nil
		}
	}
	return models.Recruiter{}, gorm.ErrRecordNotFound
}

func (f *recruiterRepoFake) GetByIDs(_ context.Context, ids []uint) ([]models.Recruiter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wanted := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var found []models.Recruiter
	for _, recruiter := range f.items {
		if _, ok := wanted[recruiter.ID]; ok {
			found = append(found, recruiter)
		}
	}
	return found, nil
}

func (f *recruiterRepoFake) Create(_ context.Context, recruiter *models.Recruiter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	recruiter.ID = f.nextID
	f.items = append(f.items, *recruiter)
	return nil
}

func (f *recruiterRepoFake) CreateBatch(_ context.Context, recruiters []models.Recruiter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range recruiters {
		f.nextID++
		recruiters[i].ID = f.nextID
		f.items = append(f.items, recruiters[i])
	}
	return nil
}

func (f *recruiterRepoFake) UpdateStatus(_ context.Context, id uint, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *recruiterRepoFake) Deactivate(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsActive = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// registrationRepoFake is an in-memory RegistrationRepository. updateHook,
// when set, runs at the start of Update so tests can widen race windows.
type registrationRepoFake struct {
	mu         sync.Mutex
	nextID     uint
	items      map[uint]*models.Registration
	updateHook func()
}

func newRegistrationRepoFake() *registrationRepoFake {
	return &registrationRepoFake{items: make(map[uint]*models.Registration)}
}

func cloneRegistration(registration models.Registration) models.Registration {
	clone := registration
	clone.Steps = append([]models.RegistrationStep(nil), registration.Steps...)
	return clone
}

func (f *registrationRepoFake) Create(_ context.Context, registration *models.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	registration.ID = f.nextID
	if registration.CreatedAt.IsZero() {
		registration.CreatedAt = time.Now()
	}
	for i := range registration.Steps {
		registration.Steps[i].ID = registration.ID*100 + uint(i) + 1
		registration.Steps[i].RegistrationID = registration.ID
	}
	stored := cloneRegistration(*registration)
	f.items[registration.ID] = &stored
	return nil
}

func (f *registrationRepoFake) GetByID(_ context.Context, id uint) (models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.items[id]
	if !ok {
		return models.Registration{}, gorm.ErrRecordNotFound
	}
	return cloneRegistration(*stored), nil
}

func (f *registrationRepoFake) Update(_ context.Context, registration *models.Registration) error {
	if f.updateHook != nil {
		f.updateHook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.items[registration.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	updated := cloneRegistration(*registration)
	updated.Steps = stored.Steps
	f.items[registration.ID] = &updated
	return nil
}

func (f *registrationRepoFake) SaveStep(_ context.Context, step *models.RegistrationStep) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.items[step.RegistrationID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range stored.Steps {
		if stored.Steps[i].ID == step.ID {
			stored.Steps[i] = *step
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *registrationRepoFake) ListByStatus(_ context.Context, statuses []string, orderBy string) ([]models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	allowed := make(map[string]struct{}, len(statuses))
	for _, status := range statuses {
		allowed[status] = struct{}{}
	}
	var matched []models.Registration
	for _, stored := range f.items {
		if _, ok := allowed[stored.Status]; ok {
			matched = append(matched, cloneRegistration(*stored))
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if orderBy == "completed_at DESC" && matched[i].CompletedAt != nil && matched[j].CompletedAt != nil {
			return matched[i].CompletedAt.After(*matched[j].CompletedAt)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (f *registrationRepoFake) CountBySlot(_ context.Context, recruiterID uint, timeSlot string, onDate time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total int64
	for _, stored := range f.items {
		if stored.AssignedRecruiterID != nil && *stored.AssignedRecruiterID == recruiterID &&
			stored.TimeSlot == timeSlot && sameDay(stored.CreatedAt, onDate) {
			total++
		}
	}
	return total, nil
}

func (f *registrationRepoFake) CountByDay(_ context.Context, recruiterID uint, onDate time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total int64
	for _, stored := range f.items {
		if stored.AssignedRecruiterID != nil && *stored.AssignedRecruiterID == recruiterID &&
			sameDay(stored.CreatedAt, onDate) {
			total++
		}
	}
	return total, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// matcherFake is a canned NameMatcher.
type matcherFake struct {
	matches []dto.ExclusionMatch
	err     error
	calls   int
}

func (f *matcherFake) MatchName(_ context.Context, _, _ string) ([]dto.ExclusionMatch, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.matches, nil
}

// publisherFake records published events.
type publisherFake struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (f *publisherFake) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
	return nil
}
