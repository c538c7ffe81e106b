package dto

import (
	"time"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

// OrientationCreateRequest is the payload for a new-hire orientation walk-in.
type OrientationCreateRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,min=7,max=20"`
	ZipCode   string `json:"zip_code" validate:"omitempty,min=3,max=10"`
	TimeSlot  string `json:"time_slot" validate:"required,max=20"`
}

// OrientationResponse is the API shape of an orientation registration.
type OrientationResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	ZipCode   string    `json:"zip_code"`
	TimeSlot  string    `json:"time_slot"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOrientationResponse maps an orientation model to its API shape.
func NewOrientationResponse(visit models.NewHireOrientation) OrientationResponse {
	return OrientationResponse{
		ID:        visit.ID,
		FirstName: visit.FirstName,
		LastName:  visit.LastName,
		Email:     visit.Email,
		Phone:     visit.Phone,
		ZipCode:   visit.ZipCode,
		TimeSlot:  visit.TimeSlot,
		Status:    visit.Status,
		CreatedAt: visit.CreatedAt,
	}
}

// NewOrientationResponseSlice maps a slice of orientations.
func NewOrientationResponseSlice(visits []models.NewHireOrientation) []OrientationResponse {
	responses := make([]OrientationResponse, 0, len(visits))
	for _, visit := range visits {
		responses = append(responses, NewOrientationResponse(visit))
	}
	return responses
}

// BadgeCreateRequest is the payload for a badge pickup appointment.
type BadgeCreateRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=1,max=100"`
	LastName        string `json:"last_name" validate:"required,min=1,max=100"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Phone           string `json:"phone" validate:"required,min=7,max=20"`
	ZipCode         string `json:"zip_code" validate:"omitempty,min=3,max=10"`
	AppointmentTime string `json:"appointment_time" validate:"required,max=20"`
}

// BadgeResponse is the API shape of a badge appointment.
type BadgeResponse struct {
	ID              uint      `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ZipCode         string    `json:"zip_code"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewBadgeResponse maps a badge appointment to its API shape.
func NewBadgeResponse(visit models.BadgeAppointment) BadgeResponse {
	return BadgeResponse{
		ID:              visit.ID,
		FirstName:       visit.FirstName,
		LastName:        visit.LastName,
		Email:           visit.Email,
		Phone:           visit.Phone,
		ZipCode:         visit.ZipCode,
		AppointmentTime: visit.AppointmentTime,
		Status:          visit.Status,
		CreatedAt:       visit.CreatedAt,
	}
}

// NewBadgeResponseSlice maps a slice of badge appointments.
func NewBadgeResponseSlice(visits []models.BadgeAppointment) []BadgeResponse {
	responses := make([]BadgeResponse, 0, len(visits))
	for _, visit := range visits {
		responses = append(responses, NewBadgeResponse(visit))
	}
	return responses
}

// FingerprintCreateRequest is the payload for a fingerprinting appointment.
type FingerprintCreateRequest struct {
	FirstName       string `json:"first_name" validate:"required,min=1,max=100"`
	LastName        string `json:"last_name" validate:"required,min=1,max=100"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Phone           string `json:"phone" validate:"required,min=7,max=20"`
	ZipCode         string `json:"zip_code" validate:"omitempty,min=3,max=10"`
	AppointmentTime string `json:"appointment_time" validate:"required,max=20"`
	FingerprintType string `json:"fingerprint_type" validate:"required,oneof=regular dcf"`
}

// FingerprintResponse is the API shape of a fingerprint appointment.
type FingerprintResponse struct {
	ID              uint      `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ZipCode         string    `json:"zip_code"`
	AppointmentTime string    `json:"appointment_time"`
	FingerprintType string    `json:"fingerprint_type"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewFingerprintResponse maps a fingerprint appointment to its API shape.
func NewFingerprintResponse(visit models.FingerprintAppointment) FingerprintResponse {
	return FingerprintResponse{
		ID:              visit.ID,
		FirstName:       visit.FirstName,
		LastName:        visit.LastName,
		Email:           visit.Email,
		Phone:           visit.Phone,
		ZipCode:         visit.ZipCode,
		AppointmentTime: visit.AppointmentTime,
		FingerprintType: visit.FingerprintType,
		Status:          visit.Status,
		CreatedAt:       visit.CreatedAt,
	}
}

// NewFingerprintResponseSlice maps a slice of fingerprint appointments.
func NewFingerprintResponseSlice(visits []models.FingerprintAppointment) []FingerprintResponse {
	responses := make([]FingerprintResponse, 0, len(visits))
	for _, visit := range visits {
		responses = append(responses, NewFingerprintResponse(visit))
	}
	return responses
}

// TeamVisitCreateRequest is the payload for a visitor asking for a team or a
// specific staff member.
type TeamVisitCreateRequest struct {
	VisitorName     string `json:"visitor_name" validate:"required,min=1,max=100"`
	VisitorEmail    string `json:"visitor_email" validate:"omitempty,email,max=255"`
	Team            string `json:"team" validate:"required,min=1,max=100"`
	TeamMemberID    *uint  `json:"team_member_id"`
	TeamMemberName  string `json:"team_member_name" validate:"omitempty,max=100"`
	TeamMemberEmail string `json:"team_member_email" validate:"omitempty,email,max=255"`
	Reason          string `json:"reason" validate:"required,min=1"`
}

// TeamVisitResponse is the API shape of a team visit.
type TeamVisitResponse struct {
	ID              uint       `json:"id"`
	VisitorName     string     `json:"visitor_name"`
	VisitorEmail    string     `json:"visitor_email"`
	Team            string     `json:"team"`
	TeamMemberID    *uint      `json:"team_member_id"`
	TeamMemberName  string     `json:"team_member_name"`
	TeamMemberEmail string     `json:"team_member_email"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	NotifiedAt      *time.Time `json:"notified_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

// NewTeamVisitResponse maps a team visit to its API shape.
func NewTeamVisitResponse(visit models.TeamVisit) TeamVisitResponse {
	return TeamVisitResponse{
		ID:              visit.ID,
		VisitorName:     visit.VisitorName,
		VisitorEmail:    visit.VisitorEmail,
		Team:            visit.Team,
		TeamMemberID:    visit.TeamMemberID,
		TeamMemberName:  visit.TeamMemberName,
		TeamMemberEmail: visit.TeamMemberEmail,
		Reason:          visit.Reason,
		Status:          visit.Status,
		NotifiedAt:      visit.NotifiedAt,
		CreatedAt:       visit.CreatedAt,
	}
}

// NewTeamVisitResponseSlice maps a slice of team visits.
func NewTeamVisitResponseSlice(visits []models.TeamVisit) []TeamVisitResponse {
	responses := make([]TeamVisitResponse, 0, len(visits))
	for _, visit := range visits {
		responses = append(responses, NewTeamVisitResponse(visit))
	}
	return responses
}
