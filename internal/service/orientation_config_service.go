package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/models"
	"github.com/noah-isme/frontdesk-go-api/internal/repository"
)

const timeSlotCacheKey = "frontdesk:orientation:time_slots"

// defaultOrientationConfig is created on first read when no settings exist.
var defaultOrientationConfig = func() models.OrientationConfig {
	return models.OrientationConfig{
		MaxSessionsPerDay: 2,
		TimeSlots:         models.EncodeSlots([]string{"9:00 AM", "2:00 PM"}),
		IsActive:          true,
	}
}

// OrientationConfigService manages the active orientation settings and serves
// the kiosk's slot picker from cache.
type OrientationConfigService interface {
	Get(ctx context.Context) (dto.OrientationConfigResponse, error)
	Update(ctx context.Context, payload dto.OrientationConfigUpdateRequest) (dto.OrientationConfigResponse, error)
	TimeSlots(ctx context.Context) ([]string, error)
}

type orientationConfigService struct {
	repo      repository.OrientationConfigRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewOrientationConfigService builds the settings service. cache may be nil;
// slot reads then always hit the database.
func NewOrientationConfigService(repo repository.OrientationConfigRepository, cache *redis.Client, cacheTTL time.Duration, validate *validator.Validate, logger zerolog.Logger) OrientationConfigService {
	return &orientationConfigService{
		repo:      repo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		validator: validate,
		logger:    logger.With().Str("component", "orientation_config_service").Logger(),
	}
}

// Get returns the active settings, creating the default row when none exist.
func (s *orientationConfigService) Get(ctx context.Context) (dto.OrientationConfigResponse, error) {
	config, err := s.activeConfig(ctx)
	if err != nil {
		return dto.OrientationConfigResponse{}, err
	}
	return dto.NewOrientationConfigResponse(config), nil
}

func (s *orientationConfigService) Update(ctx context.Context, payload dto.OrientationConfigUpdateRequest) (dto.OrientationConfigResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.OrientationConfigResponse{}, err
	}

	config := models.OrientationConfig{
		MaxSessionsPerDay: payload.MaxSessionsPerDay,
		TimeSlots:         models.EncodeSlots(payload.TimeSlots),
	}
	if err := s.repo.ReplaceActive(ctx, &config); err != nil {
		return dto.OrientationConfigResponse{}, err
	}

	s.invalidateSlots(ctx)
	s.logger.Info().Int("max_sessions_per_day", config.MaxSessionsPerDay).Msg("orientation config updated")
	return dto.NewOrientationConfigResponse(config), nil
}

// TimeSlots serves the kiosk slot picker, preferring the cache. Cache errors
// degrade to a database read.
func (s *orientationConfigService) TimeSlots(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, timeSlotCacheKey).Result()
		if err == nil {
			var slots []string
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				return slots, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Msg("time slot cache read failed")
		}
	}

	config, err := s.activeConfig(ctx)
	if err != nil {
		return nil, err
	}
	slots := config.SlotList()

	if s.cache != nil {
		payload, err := json.Marshal(slots)
		if err == nil {
			if err := s.cache.Set(ctx, timeSlotCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("time slot cache write failed")
			}
		}
	}

	return slots, nil
}

func (s *orientationConfigService) activeConfig(ctx context.Context) (models.OrientationConfig, error) {
	config, err := s.repo.GetActive(ctx)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.OrientationConfig{}, err
	}

	config = defaultOrientationConfig()
	if err := s.repo.Create(ctx, &config); err != nil {
		return models.OrientationConfig{}, err
	}
	s.logger.Info().Msg("default orientation config created")
	return config, nil
}

func (s *orientationConfigService) invalidateSlots(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, timeSlotCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("time slot cache invalidation failed")
	}
}
