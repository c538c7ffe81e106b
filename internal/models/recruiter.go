package models

import "time"

// Recruiter status values. The set is open-ended on read; only these two are
// written by this service.
const (
	RecruiterStatusAvailable = "available"
	RecruiterStatusBusy      = "busy"
)

// Recruiter is a staff member eligible to receive visitor assignments.
// Recruiters are deactivated, never deleted, so historical assignments keep
// resolving.
type Recruiter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	Status    string    `gorm:"size:32;not null;default:available" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAssignable reports whether the recruiter may receive new assignments.
func (r Recruiter) IsAssignable() bool {
	return r.IsActive && r.Status == RecruiterStatusAvailable
}
