package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

type orientationConfigRepoFake struct {
	active *models.OrientationConfig
	nextID uint
}

func (f *orientationConfigRepoFake) GetActive(_ context.Context) (models.OrientationConfig, error) {
	if f.active == nil {
		return models.OrientationConfig{}, gorm.ErrRecordNotFound
	}
	return *f.active, nil
}

func (f *orientationConfigRepoFake) Create(_ context.Context, config *models.OrientationConfig) error {
	f.nextID++
	config.ID = f.nextID
	stored := *config
	f.active = &stored
	return nil
}

func (f *orientationConfigRepoFake) ReplaceActive(_ context.Context, config *models.OrientationConfig) error {
	f.nextID++
	config.ID = f.nextID
	config.IsActive = true
	stored := *config
	f.active = &stored
	return nil
}

func newOrientationConfigService(t *testing.T, repo *orientationConfigRepoFake) (OrientationConfigService, *redis.Client) {
	t.Helper()
	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewOrientationConfigService(repo, client, time.Minute, validate, testLogger()), client
}

func TestGetCreatesDefaultConfig(t *testing.T) {
	repo := &orientationConfigRepoFake{}
	svc, _ := newOrientationConfigService(t, repo)

	config, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, config.MaxSessionsPerDay)
	require.Equal(t, []string{"9:00 AM", "2:00 PM"}, config.TimeSlots)
	require.NotNil(t, repo.active)
}

func TestTimeSlotsServedFromCache(t *testing.T) {
	repo := &orientationConfigRepoFake{}
	svc, _ := newOrientationConfigService(t, repo)

	first, err := svc.TimeSlots(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"9:00 AM", "2:00 PM"}, first)

	// A direct database change is invisible until the cache expires or the
	// settings are updated through the service.
	repo.active.TimeSlots = models.EncodeSlots([]string{"7:00 AM"})

	second, err := svc.TimeSlots(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestUpdateInvalidatesSlotCache(t *testing.T) {
	repo := &orientationConfigRepoFake{}
	svc, _ := newOrientationConfigService(t, repo)

	_, err := svc.TimeSlots(context.Background())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), dto.OrientationConfigUpdateRequest{
		MaxSessionsPerDay: 3,
		TimeSlots:         []string{"8:00 AM", "12:00 PM", "4:00 PM"},
	})
	require.NoError(t, err)
	require.Equal(t, 3, updated.MaxSessionsPerDay)

	slots, err := svc.TimeSlots(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"8:00 AM", "12:00 PM", "4:00 PM"}, slots)
}

func TestUpdateValidatesPayload(t *testing.T) {
	repo := &orientationConfigRepoFake{}
	svc, _ := newOrientationConfigService(t, repo)

	_, err := svc.Update(context.Background(), dto.OrientationConfigUpdateRequest{MaxSessionsPerDay: 0, TimeSlots: nil})
	require.Error(t, err)
}

func TestTimeSlotsWithoutCache(t *testing.T) {
	repo := &orientationConfigRepoFake{}
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewOrientationConfigService(repo, nil, time.Minute, validate, testLogger())

	slots, err := svc.TimeSlots(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"9:00 AM", "2:00 PM"}, slots)
}
