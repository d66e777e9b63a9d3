package repository

import (
	"github.com/shifacare/medcenter-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FixedTimeSlotRepository interface {
	FindByClinicID(db *gorm.DB, clinicID uuid.UUID) ([]entity.FixedTimeSlot, error)
	FindActiveByClinicAndDay(db *gorm.DB, clinicID uuid.UUID, dayOfWeek int) ([]entity.FixedTimeSlot, error)
	ReplaceForClinicDay(db *gorm.DB, clinicID uuid.UUID, dayOfWeek int, times []string) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
