package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking lifecycle statuses
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Where the booking came from
const (
	BookingSourceWeb      = "web"
	BookingSourceWhatsApp = "whatsapp"
	BookingSourcePhone    = "phone"
	BookingSourceAdmin    = "admin"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	Name  string `gorm:"not null"`
	Email string `gorm:"not null"`
	Phone string `gorm:"not null"`

	// Date is the calendar day (stored as a date column, midnight UTC),
	// Time is the slot start as "HH:MM". There is no foreign key to
	// AvailableSlot; the association is by (date, time) value.
	Date time.Time `gorm:"type:date;index;not null"`
	Time string    `gorm:"type:varchar(5);not null"`

	Status string `gorm:"type:varchar(20);not null;default:'confirmed'"`
	Source string `gorm:"type:varchar(20);not null;default:'web'"`
	Notes  string

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// IsActive reports whether the booking still blocks its day from being closed.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusCompleted
}
