package entity

import (
	"time"

	"github.com/google/uuid"
)

// Clinic represents a bookable unit within a medical center, with its own
// schedule and doctor. Availability is derived either from WorkingHours
// (7-minute slot generation) or from enumerated FixedTimeSlots when
// UseFixedTimeSlots is set.
type Clinic struct {
	ID                uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MedicalCenterID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"medical_center_id"`
	Name              string       `gorm:"type:varchar(255);not null" json:"name"`
	DoctorName        string       `gorm:"type:varchar(255)" json:"doctor_name,omitempty"`
	Description       string       `gorm:"type:text" json:"description,omitempty"`
	WorkingHours      WorkingHours `gorm:"type:jsonb" json:"working_hours,omitempty"`
	UseFixedTimeSlots bool         `gorm:"not null;default:false" json:"use_fixed_time_slots"`
	IsActive          *bool        `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt         time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	MedicalCenter  MedicalCenter   `gorm:"foreignKey:MedicalCenterID" json:"medical_center,omitempty"`
	FixedTimeSlots []FixedTimeSlot `gorm:"foreignKey:ClinicID" json:"fixed_time_slots,omitempty"`
	Appointments   []Appointment   `gorm:"foreignKey:ClinicID" json:"appointments,omitempty"`
}

func (Clinic) TableName() string {
	return "clinics"
}
