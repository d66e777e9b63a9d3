package repository

import (
	"errors"

	"github.com/shifacare/medcenter-booking/internal/domain/entity"
	domainRepo "github.com/shifacare/medcenter-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicRepository struct{}

func NewClinicRepository() domainRepo.ClinicRepository {
	return &clinicRepository{}
}

func (r *clinicRepository) Create(db *gorm.DB, clinic *entity.Clinic) error {
	return db.Create(clinic).Error
}

func (r *clinicRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Preload("MedicalCenter").Where("id = ?", id).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

func (r *clinicRepository) FindByCenterID(db *gorm.DB, centerID uuid.UUID) ([]entity.Clinic, error) {
	var clinics []entity.Clinic
	err := db.Where("medical_center_id = ? AND is_active = ?", centerID, true).
		Order("name ASC").
		Find(&clinics).Error
	if err != nil {
		return nil, err
	}
	return clinics, nil
}

func (r *clinicRepository) Update(db *gorm.DB, clinic *entity.Clinic) error {
	return db.Omit("MedicalCenter", "FixedTimeSlots", "Appointments").Save(clinic).Error
}

func (r *clinicRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Clinic{})
	return result.RowsAffected, result.Error
}
