package entity

import (
	"time"

	"github.com/google/uuid"
)

// FixedTimeSlot is one admin-curated bookable time for a clinic weekday.
// DayOfWeek uses 0=Sunday..6=Saturday, matching time.Weekday.
type FixedTimeSlot struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID  uuid.UUID `gorm:"type:uuid;not null;index:idx_fixed_slots_clinic_day" json:"clinic_id"`
	DayOfWeek int       `gorm:"not null;index:idx_fixed_slots_clinic_day" json:"day_of_week"`
	TimeSlot  string    `gorm:"type:time;not null" json:"time_slot"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Clinic Clinic `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

func (FixedTimeSlot) TableName() string {
	return "fixed_time_slots"
}
