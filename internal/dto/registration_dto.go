package dto

import (
	"time"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

// RegistrationCreateRequest is the kiosk payload for a new info-session
// registration.
type RegistrationCreateRequest struct {
	FirstName   string `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string `json:"last_name" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Phone       string `json:"phone" validate:"required,min=7,max=20"`
	ZipCode     string `json:"zip_code" validate:"omitempty,min=3,max=10"`
	SessionType string `json:"session_type" validate:"required,max=50"`
	TimeSlot    string `json:"time_slot" validate:"required,max=20"`
}

// StepResponse is the API shape of one checklist step.
type StepResponse struct {
	ID              uint       `json:"id"`
	StepName        string     `json:"step_name"`
	StepDescription string     `json:"step_description"`
	IsCompleted     bool       `json:"is_completed"`
	CompletedAt     *time.Time `json:"completed_at"`
}

// NewStepResponse maps a step model to its API shape.
func NewStepResponse(step models.RegistrationStep) StepResponse {
	return StepResponse{
		ID:              step.ID,
		StepName:        step.StepName,
		StepDescription: step.StepDescription,
		IsCompleted:     step.IsCompleted,
		CompletedAt:     step.CompletedAt,
	}
}

// RegistrationResponse is the API shape of a registration, enriched with the
// assigned recruiter's display name and any exclusion match.
type RegistrationResponse struct {
	ID                    uint            `json:"id"`
	FirstName             string          `json:"first_name"`
	LastName              string          `json:"last_name"`
	Email                 string          `json:"email"`
	Phone                 string          `json:"phone"`
	ZipCode               string          `json:"zip_code"`
	SessionType           string          `json:"session_type"`
	TimeSlot              string          `json:"time_slot"`
	Status                string          `json:"status"`
	IsInExclusionList     bool            `json:"is_in_exclusion_list"`
	ExclusionWarningShown bool            `json:"exclusion_warning_shown"`
	AssignedRecruiterID   *uint           `json:"assigned_recruiter_id"`
	AssignedRecruiterName *string         `json:"assigned_recruiter_name"`
	ExclusionMatch        *ExclusionMatch `json:"exclusion_match,omitempty"`
	CompletedAt           *time.Time      `json:"completed_at"`
	DurationMinutes       *int            `json:"duration_minutes"`
	CreatedAt             time.Time       `json:"created_at"`
	Steps                 []StepResponse  `json:"steps"`
}

// NewRegistrationResponse maps a registration and its enrichment to the API
// shape.
func NewRegistrationResponse(registration models.Registration, recruiterName *string, match *ExclusionMatch) RegistrationResponse {
	steps := make([]StepResponse, 0, len(registration.Steps))
	for _, step := range registration.Steps {
		steps = append(steps, NewStepResponse(step))
	}

	return RegistrationResponse{
		ID:                    registration.ID,
		FirstName:             registration.FirstName,
		LastName:              registration.LastName,
		Email:                 registration.Email,
		Phone:                 registration.Phone,
		ZipCode:               registration.ZipCode,
		SessionType:           registration.SessionType,
		TimeSlot:              registration.TimeSlot,
		Status:                registration.Status,
		IsInExclusionList:     registration.IsInExclusionList,
		ExclusionWarningShown: registration.ExclusionWarningShown,
		AssignedRecruiterID:   registration.AssignedRecruiterID,
		AssignedRecruiterName: recruiterName,
		ExclusionMatch:        match,
		CompletedAt:           registration.CompletedAt,
		DurationMinutes:       registration.DurationMinutes,
		CreatedAt:             registration.CreatedAt,
		Steps:                 steps,
	}
}
