package dto

import (
	"time"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

// AnnouncementCreateRequest is the payload for a new kiosk announcement.
// StartsAt defaults to the current time when omitted.
type AnnouncementCreateRequest struct {
	Title    string     `json:"title" validate:"required,min=1,max=255"`
	Body     string     `json:"body" validate:"required,min=1"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	IsPinned bool       `json:"is_pinned"`
}

// AnnouncementResponse is the API shape of an announcement.
type AnnouncementResponse struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
	IsPinned  bool       `json:"is_pinned"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewAnnouncementResponse maps an announcement to its API shape.
func NewAnnouncementResponse(announcement models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        announcement.ID,
		Title:     announcement.Title,
		Body:      announcement.Body,
		StartsAt:  announcement.StartsAt,
		EndsAt:    announcement.EndsAt,
		IsPinned:  announcement.IsPinned,
		CreatedAt: announcement.CreatedAt,
	}
}

// NewAnnouncementResponseSlice maps a slice of announcements.
func NewAnnouncementResponseSlice(announcements []models.Announcement) []AnnouncementResponse {
	responses := make([]AnnouncementResponse, 0, len(announcements))
	for _, announcement := range announcements {
		responses = append(responses, NewAnnouncementResponse(announcement))
	}
	return responses
}
