package repository

import (
	"github.com/shifacare/medcenter-booking/internal/domain/entity"
	domainRepo "github.com/shifacare/medcenter-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fixedTimeSlotRepository struct{}

func NewFixedTimeSlotRepository() domainRepo.FixedTimeSlotRepository {
	return &fixedTimeSlotRepository{}
}

func (r *fixedTimeSlotRepository) FindByClinicID(db *gorm.DB, clinicID uuid.UUID) ([]entity.FixedTimeSlot, error) {
	var slots []entity.FixedTimeSlot
	err := db.Where("clinic_id = ?", clinicID).
		Order("day_of_week ASC, time_slot ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *fixedTimeSlotRepository) FindActiveByClinicAndDay(db *gorm.DB, clinicID uuid.UUID, dayOfWeek int) ([]entity.FixedTimeSlot, error) {
	var slots []entity.FixedTimeSlot
	err := db.Where("clinic_id = ? AND day_of_week = ? AND is_active = ?", clinicID, dayOfWeek, true).
		Order("time_slot ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// ReplaceForClinicDay swaps a weekday's slot list in one transaction so the
// booking flow never observes a half-replaced day.
func (r *fixedTimeSlotRepository) ReplaceForClinicDay(db *gorm.DB, clinicID uuid.UUID, dayOfWeek int, times []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("clinic_id = ? AND day_of_week = ?", clinicID, dayOfWeek).
			Delete(&entity.FixedTimeSlot{}).Error; err != nil {
			return err
		}
		if len(times) == 0 {
			return nil
		}
		active := true
		slots := make([]entity.FixedTimeSlot, len(times))
		for i, t := range times {
			slots[i] = entity.FixedTimeSlot{
				ClinicID:  clinicID,
				DayOfWeek: dayOfWeek,
				TimeSlot:  t,
				IsActive:  &active,
			}
		}
		return tx.Create(&slots).Error
	})
}

func (r *fixedTimeSlotRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.FixedTimeSlot{})
	return result.RowsAffected, result.Error
}
