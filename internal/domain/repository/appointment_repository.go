package repository

import (
	"time"

	"github.com/shifacare/medcenter-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error)

	// FindBySlot returns every row for the exact (clinic, date, time),
	// regardless of status, for the submission-time conflict guard.
	FindBySlot(db *gorm.DB, clinicID uuid.UUID, date time.Time, timeOfDay string) ([]entity.Appointment, error)

	// FindBookedTimes returns appointment times for a clinic+date where
	// status is pending or approved. Cancelled and rejected rows are
	// excluded so their slots show as free.
	FindBookedTimes(db *gorm.DB, clinicID uuid.UUID, date time.Time) ([]string, error)

	// Rebook claims a freed (cancelled or rejected) slot row for a new
	// booking. The status guard makes the claim conditional, so two
	// concurrent rebookings cannot both succeed. Returns affected rows.
	Rebook(db *gorm.DB, appointment *entity.Appointment) (int64, error)

	// CancelOwnPending atomically cancels the patient's own appointment only
	// while it is still pending. Returns affected rows.
	CancelOwnPending(db *gorm.DB, id uuid.UUID, userID uuid.UUID) (int64, error)

	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus, adminNotes string) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	FindWithFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)

	// FindApprovedInWindow returns approved appointments on a date whose
	// time falls in [fromTime, toTime), for the reminder sweep.
	FindApprovedInWindow(db *gorm.DB, date time.Time, fromTime, toTime string) ([]entity.Appointment, error)
}
