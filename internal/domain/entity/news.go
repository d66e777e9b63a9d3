package entity

import (
	"time"

	"github.com/google/uuid"
)

// News is an announcement shown to patients. A nil MedicalCenterID means
// the item is platform-wide.
type News struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MedicalCenterID *uuid.UUID `gorm:"type:uuid;index" json:"medical_center_id,omitempty"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	Body            string     `gorm:"type:text;not null" json:"body"`
	IsPublished     *bool      `gorm:"not null;default:false;index" json:"is_published"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	MedicalCenter *MedicalCenter `gorm:"foreignKey:MedicalCenterID" json:"medical_center,omitempty"`
}

func (News) TableName() string {
	return "news"
}
