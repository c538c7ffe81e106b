package models

import "time"

// Announcement is a message displayed on the lobby kiosk.
type Announcement struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Body      string     `gorm:"type:text;not null" json:"body"`
	StartsAt  time.Time  `gorm:"index" json:"starts_at"`
	EndsAt    *time.Time `gorm:"index" json:"ends_at"`
	IsPinned  bool       `gorm:"index" json:"is_pinned"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ActiveAt reports whether the announcement should be displayed at the given
// moment.
func (a Announcement) ActiveAt(reference time.Time) bool {
	if a.StartsAt.After(reference) {
		return false
	}
	if a.EndsAt != nil && a.EndsAt.Before(reference) {
		return false
	}
	return true
}
