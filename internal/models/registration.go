package models

import "time"

// Registration status values. RegistrationStatusInProgress is written by
// external tooling only; this service accepts it on read but never sets it.
const (
	RegistrationStatusRegistered = "registered"
	RegistrationStatusInProgress = "in-progress"
	RegistrationStatusCompleted  = "completed"
)

// Registration is one visitor's record of signing up for an info session.
type Registration struct {
	ID                    uint               `gorm:"primaryKey" json:"id"`
	FirstName             string             `gorm:"size:100;not null" json:"first_name"`
	LastName              string             `gorm:"size:100;not null" json:"last_name"`
	Email                 string             `gorm:"size:255;not null" json:"email"`
	Phone                 string             `gorm:"size:20;not null" json:"phone"`
	ZipCode               string             `gorm:"size:10" json:"zip_code"`
	SessionType           string             `gorm:"size:50;not null" json:"session_type"`
	TimeSlot              string             `gorm:"size:20;not null;index" json:"time_slot"`
	Status                string             `gorm:"size:50;not null;default:registered;index" json:"status"`
	IsInExclusionList     bool               `gorm:"not null;default:false" json:"is_in_exclusion_list"`
	ExclusionWarningShown bool               `gorm:"not null;default:false" json:"exclusion_warning_shown"`
	AssignedRecruiterID   *uint              `gorm:"index" json:"assigned_recruiter_id"`
	StartedAt             *time.Time         `json:"started_at"`
	CompletedAt           *time.Time         `json:"completed_at"`
	DurationMinutes       *int               `json:"duration_minutes"`
	CreatedAt             time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
	Steps                 []RegistrationStep `gorm:"constraint:OnDelete:CASCADE" json:"steps"`
}

// AllStepsCompleted reports whether every attached step is done.
func (r Registration) AllStepsCompleted() bool {
	if len(r.Steps) == 0 {
		return false
	}
	for _, step := range r.Steps {
		if !step.IsCompleted {
			return false
		}
	}
	return true
}

// RegistrationStep is one item of the fixed checklist attached to a
// registration at creation time. Name and description are template content;
// only IsCompleted and CompletedAt ever change.
type RegistrationStep struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	RegistrationID  uint       `gorm:"not null;index" json:"registration_id"`
	StepName        string     `gorm:"size:100;not null" json:"step_name"`
	StepDescription string     `gorm:"type:text" json:"step_description"`
	IsCompleted     bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
