package dto

import (
	"time"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

// OrientationConfigUpdateRequest replaces the active orientation settings.
type OrientationConfigUpdateRequest struct {
	MaxSessionsPerDay int      `json:"max_sessions_per_day" validate:"required,min=1,max=10"`
	TimeSlots         []string `json:"time_slots" validate:"required,min=1,dive,required,max=20"`
}

// OrientationConfigResponse is the API shape of the active settings.
type OrientationConfigResponse struct {
	ID                uint      `json:"id"`
	MaxSessionsPerDay int       `json:"max_sessions_per_day"`
	TimeSlots         []string  `json:"time_slots"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewOrientationConfigResponse maps the settings model to its API shape.
func NewOrientationConfigResponse(config models.OrientationConfig) OrientationConfigResponse {
	return OrientationConfigResponse{
		ID:                config.ID,
		MaxSessionsPerDay: config.MaxSessionsPerDay,
		TimeSlots:         config.SlotList(),
		UpdatedAt:         config.UpdatedAt,
	}
}
