package models

import "time"

// Visit status values shared by the simple visit types.
const (
	VisitStatusRegistered = "registered"

	TeamVisitStatusPending  = "pending"
	TeamVisitStatusNotified = "notified"
)

// Fingerprint appointment flavours.
const (
	FingerprintTypeRegular = "regular"
	FingerprintTypeDCF     = "dcf"
)

// NewHireOrientation is a walk-in registration for an orientation session.
type NewHireOrientation struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	FirstName           string    `gorm:"size:100;not null" json:"first_name"`
	LastName            string    `gorm:"size:100;not null" json:"last_name"`
	Email               string    `gorm:"size:255;not null" json:"email"`
	Phone               string    `gorm:"size:20;not null" json:"phone"`
	ZipCode             string    `gorm:"size:10" json:"zip_code"`
	TimeSlot            string    `gorm:"size:20;not null" json:"time_slot"`
	Status              string    `gorm:"size:50;not null;default:registered" json:"status"`
	AssignedRecruiterID *uint     `json:"assigned_recruiter_id"`
	CreatedAt           time.Time `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// BadgeAppointment is a scheduled badge pickup.
type BadgeAppointment struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	FirstName           string    `gorm:"size:100;not null" json:"first_name"`
	LastName            string    `gorm:"size:100;not null" json:"last_name"`
	Email               string    `gorm:"size:255;not null" json:"email"`
	Phone               string    `gorm:"size:20;not null" json:"phone"`
	ZipCode             string    `gorm:"size:10" json:"zip_code"`
	AppointmentTime     string    `gorm:"size:20;not null" json:"appointment_time"`
	Status              string    `gorm:"size:50;not null;default:registered" json:"status"`
	AssignedRecruiterID *uint     `json:"assigned_recruiter_id"`
	CreatedAt           time.Time `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// FingerprintAppointment is a scheduled fingerprinting visit.
type FingerprintAppointment struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	FirstName           string    `gorm:"size:100;not null" json:"first_name"`
	LastName            string    `gorm:"size:100;not null" json:"last_name"`
	Email               string    `gorm:"size:255;not null" json:"email"`
	Phone               string    `gorm:"size:20;not null" json:"phone"`
	ZipCode             string    `gorm:"size:10" json:"zip_code"`
	AppointmentTime     string    `gorm:"size:20;not null" json:"appointment_time"`
	FingerprintType     string    `gorm:"size:50;not null" json:"fingerprint_type"`
	Status              string    `gorm:"size:50;not null;default:registered" json:"status"`
	AssignedRecruiterID *uint     `json:"assigned_recruiter_id"`
	CreatedAt           time.Time `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TeamVisit records a visitor asking for a specific staff member or team.
type TeamVisit struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	VisitorName     string     `gorm:"size:100;not null" json:"visitor_name"`
	VisitorEmail    string     `gorm:"size:255" json:"visitor_email"`
	Team            string     `gorm:"size:100;not null" json:"team"`
	TeamMemberID    *uint      `gorm:"index" json:"team_member_id"`
	TeamMemberName  string     `gorm:"size:100" json:"team_member_name"`
	TeamMemberEmail string     `gorm:"size:255" json:"team_member_email"`
	Reason          string     `gorm:"type:text;not null" json:"reason"`
	Status          string     `gorm:"size:50;not null;default:pending" json:"status"`
	NotifiedAt      *time.Time `json:"notified_at"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
