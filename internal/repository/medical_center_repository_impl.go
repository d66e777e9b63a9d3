package repository

import (
	"errors"

	"github.com/shifacare/medcenter-booking/internal/domain/entity"
	domainRepo "github.com/shifacare/medcenter-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalCenterRepository struct{}

func NewMedicalCenterRepository() domainRepo.MedicalCenterRepository {
	return &medicalCenterRepository{}
}

func (r *medicalCenterRepository) Create(db *gorm.DB, center *entity.MedicalCenter) error {
	return db.Create(center).Error
}

func (r *medicalCenterRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalCenter, error) {
	var center entity.MedicalCenter
	err := db.Where("id = ?", id).First(&center).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &center, nil
}

func (r *medicalCenterRepository) FindAllActive(db *gorm.DB) ([]entity.MedicalCenter, error) {
	var centers []entity.MedicalCenter
	err := db.Where("is_active = ?", true).Order("name ASC").Find(&centers).Error
	if err != nil {
		return nil, err
	}
	return centers, nil
}

func (r *medicalCenterRepository) FindAll(db *gorm.DB) ([]entity.MedicalCenter, error) {
	var centers []entity.MedicalCenter
	err := db.Order("name ASC").Find(&centers).Error
	if err != nil {
		return nil, err
	}
	return centers, nil
}

func (r *medicalCenterRepository) Update(db *gorm.DB, center *entity.MedicalCenter) error {
	return db.Omit("Clinics").Save(center).Error
}

func (r *medicalCenterRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.MedicalCenter{})
	return result.RowsAffected, result.Error
}
