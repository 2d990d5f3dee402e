package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailableSlot is an admin-configured bookable (date, time) offering.
// CurrentBookings and IsAvailable are advisory caches kept roughly in sync
// by the reconciliation job; admission always recounts from bookings.
type AvailableSlot struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	Date time.Time `gorm:"type:date;not null;uniqueIndex:idx_slot_date_time,priority:1"`
	Time string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_slot_date_time,priority:2"`

	MaxBookings     int  `gorm:"not null;default:1"`
	CurrentBookings int  `gorm:"not null;default:0"`
	IsAvailable     bool `gorm:"not null;default:true"`

	gorm.Model
}

func (s *AvailableSlot) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
