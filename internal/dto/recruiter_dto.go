package dto

import (
	"time"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

// RecruiterCreateRequest is the payload for adding a recruiter to the roster.
type RecruiterCreateRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// RecruiterStatusRequest is the payload for flipping a recruiter's status.
type RecruiterStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available busy"`
}

// RecruiterResponse is the API shape of a roster entry.
type RecruiterResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRecruiterResponse maps a recruiter model to its API shape.
func NewRecruiterResponse(recruiter models.Recruiter) RecruiterResponse {
	return RecruiterResponse{
		ID:        recruiter.ID,
		Name:      recruiter.Name,
		Email:     recruiter.Email,
		IsActive:  recruiter.IsActive,
		Status:    recruiter.Status,
		CreatedAt: recruiter.CreatedAt,
	}
}

// NewRecruiterResponseSlice maps a slice of recruiters.
func NewRecruiterResponseSlice(recruiters []models.Recruiter) []RecruiterResponse {
	responses := make([]RecruiterResponse, 0, len(recruiters))
	for _, recruiter := range recruiters {
		responses = append(responses, NewRecruiterResponse(recruiter))
	}
	return responses
}
