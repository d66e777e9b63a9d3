package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalCenter represents a facility owning one or more clinics
type MedicalCenter struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	IsActive    *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Clinics []Clinic `gorm:"foreignKey:MedicalCenterID" json:"clinics,omitempty"`
}

func (MedicalCenter) TableName() string {
	return "medical_centers"
}
