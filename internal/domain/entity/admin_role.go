package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole maps a center_admin user to the medical center they administer.
// Platform admins (RoleIDAdmin) are global and have no AdminRole rows.
type AdminRole struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_admin_roles_user_center" json:"user_id"`
	MedicalCenterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_admin_roles_user_center" json:"medical_center_id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User          User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	MedicalCenter MedicalCenter `gorm:"foreignKey:MedicalCenterID" json:"medical_center,omitempty"`
}

func (AdminRole) TableName() string {
	return "admin_roles"
}
