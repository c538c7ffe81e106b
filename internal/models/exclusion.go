package models

import "time"

// ExclusionEntry is one row of the exclusion list: an individual who must
// trigger a warning when they register at the front desk.
type ExclusionEntry struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:255;not null;index" json:"name"`
	Code      string     `gorm:"size:50" json:"code"`
	SSN       string     `gorm:"size:20" json:"ssn"`
	DOB       *time.Time `json:"dob"`
	Notes     string     `gorm:"type:text" json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
