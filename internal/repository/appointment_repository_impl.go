package repository

import (
	"errors"
	"time"

	"github.com/shifacare/medcenter-booking/internal/domain/entity"
	domainRepo "github.com/shifacare/medcenter-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Clinic").Preload("MedicalCenter").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Clinic").Preload("MedicalCenter").
		Where("user_id = ?", userID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBySlot(db *gorm.DB, clinicID uuid.UUID, date time.Time, timeOfDay string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("clinic_id = ? AND appointment_date = ? AND appointment_time = ?",
		clinicID, date.Format("2006-01-02"), timeOfDay).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBookedTimes(db *gorm.DB, clinicID uuid.UUID, date time.Time) ([]string, error) {
	var times []string
	err := db.Model(&entity.Appointment{}).
		Where("clinic_id = ? AND appointment_date = ? AND status IN ?",
			clinicID, date.Format("2006-01-02"),
			[]entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusApproved}).
		Pluck("appointment_time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

// Rebook overwrites a freed row in place so the slot unique index stays
// satisfied. The update only applies while the row is still cancelled or
// rejected: zero affected rows means a concurrent booking reclaimed it.
func (r *appointmentRepository) Rebook(db *gorm.DB, appointment *entity.Appointment) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status IN ?", appointment.ID,
			[]entity.AppointmentStatus{entity.AppointmentStatusCancelled, entity.AppointmentStatusRejected}).
		Updates(map[string]interface{}{
			"user_id":        appointment.UserID,
			"status":         appointment.Status,
			"patient_name":   appointment.PatientName,
			"patient_gender": appointment.PatientGender,
			"patient_age":    appointment.PatientAge,
			"notes":          appointment.Notes,
			"admin_notes":    appointment.AdminNotes,
		})
	return result.RowsAffected, result.Error
}

// CancelOwnPending cancels only while still pending and only for the owning
// patient. Returns affected rows: 0 means the row moved on (approved,
// rejected, already cancelled) or belongs to someone else.
func (r *appointmentRepository) CancelOwnPending(db *gorm.DB, id uuid.UUID, userID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, entity.AppointmentStatusPending).
		Update("status", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus, adminNotes string) (int64, error) {
	updates := map[string]interface{}{"status": status}
	if adminNotes != "" {
		updates["admin_notes"] = adminNotes
	}
	result := db.Model(&entity.Appointment{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) FindWithFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Model(&entity.Appointment{})

	if filter != nil {
		if filter.MedicalCenterID != uuid.Nil {
			query = query.Where("medical_center_id = ?", filter.MedicalCenterID)
		}
		if filter.ClinicID != uuid.Nil {
			query = query.Where("clinic_id = ?", filter.ClinicID)
		}
		if filter.Date != "" {
			query = query.Where("appointment_date = ?", filter.Date)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.PatientName != "" {
			query = query.Where("patient_name ILIKE ?", "%"+filter.PatientName+"%")
		}
	}

	var appointments []entity.Appointment
	err := query.Preload("Clinic").Preload("User").
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindApprovedInWindow(db *gorm.DB, date time.Time, fromTime, toTime string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Clinic").Preload("User").
		Where("appointment_date = ? AND appointment_time >= ? AND appointment_time < ? AND status = ?",
			date.Format("2006-01-02"), fromTime, toTime, entity.AppointmentStatusApproved).
		Order("appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
