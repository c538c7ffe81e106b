package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// OrientationConfig stores the active new-hire orientation settings. Updates
// insert a new active row and deactivate the previous ones, so the history of
// settings is preserved.
type OrientationConfig struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	MaxSessionsPerDay int            `gorm:"not null;default:2" json:"max_sessions_per_day"`
	TimeSlots         datatypes.JSON `gorm:"type:json" json:"time_slots"`
	IsActive          bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// SlotList decodes the stored time-slot column.
func (c OrientationConfig) SlotList() []string {
	var slots []string
	if err := json.Unmarshal(c.TimeSlots, &slots); err != nil {
		return nil
	}
	return slots
}

// EncodeSlots serialises a slot list for storage.
func EncodeSlots(slots []string) datatypes.JSON {
	payload, err := json.Marshal(slots)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(payload)
}
