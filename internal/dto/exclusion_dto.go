package dto

import (
	"time"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

// ExclusionCheckRequest is the payload for an on-demand screening check.
type ExclusionCheckRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
}

// ExclusionEntryCreateRequest is the payload for adding an exclusion entry.
type ExclusionEntryCreateRequest struct {
	Name  string     `json:"name" validate:"required,min=2,max=255"`
	Code  string     `json:"code" validate:"max=50"`
	SSN   string     `json:"ssn" validate:"max=20"`
	DOB   *time.Time `json:"dob"`
	Notes string     `json:"notes"`
}

// ExclusionMatch is one candidate match from the exclusion list. The SSN is
// masked to its last four digits; the full value never leaves the service.
type ExclusionMatch struct {
	ID       uint       `json:"id"`
	Name     string     `json:"name"`
	Code     string     `json:"code"`
	SSNLast4 string     `json:"ssn_last4"`
	DOB      *time.Time `json:"dob"`
	Notes    string     `json:"notes"`
}

// NewExclusionMatch maps an exclusion entry to its screening result shape.
func NewExclusionMatch(entry models.ExclusionEntry) ExclusionMatch {
	return ExclusionMatch{
		ID:       entry.ID,
		Name:     entry.Name,
		Code:     entry.Code,
		SSNLast4: maskSSN(entry.SSN),
		DOB:      entry.DOB,
		Notes:    entry.Notes,
	}
}

// ExclusionCheckResponse is the result of an on-demand screening check.
type ExclusionCheckResponse struct {
	IsInExclusionList bool             `json:"is_in_exclusion_list"`
	Matches           []ExclusionMatch `json:"matches"`
	WarningMessage    *string          `json:"warning_message,omitempty"`
}

func maskSSN(ssn string) string {
	if len(ssn) < 4 {
		return ""
	}
	return ssn[len(ssn)-4:]
}
