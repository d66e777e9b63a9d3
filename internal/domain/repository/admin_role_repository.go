package repository

import (
	"github.com/shifacare/medcenter-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRoleRepository interface {
	Create(db *gorm.DB, adminRole *entity.AdminRole) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.AdminRole, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
