package repository

import (
	"github.com/shifacare/medcenter-booking/internal/domain/entity"
	domainRepo "github.com/shifacare/medcenter-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adminRoleRepository struct{}

func NewAdminRoleRepository() domainRepo.AdminRoleRepository {
	return &adminRoleRepository{}
}

func (r *adminRoleRepository) Create(db *gorm.DB, adminRole *entity.AdminRole) error {
	return db.Create(adminRole).Error
}

func (r *adminRoleRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.AdminRole, error) {
	var roles []entity.AdminRole
	err := db.Preload("MedicalCenter").Where("user_id = ?", userID).Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *adminRoleRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.AdminRole{})
	return result.RowsAffected, result.Error
}
