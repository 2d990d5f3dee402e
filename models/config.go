package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemConfig is a flat key-value store for business settings
// (business_name, business_hours, booking_duration, ...).
type SystemConfig struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Key         string    `gorm:"uniqueIndex;not null"`
	Value       string    `gorm:"not null"`
	Description string

	gorm.Model
}

func (c *SystemConfig) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
