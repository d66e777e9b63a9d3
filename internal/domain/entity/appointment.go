package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusApproved  AppointmentStatus = "approved"
	AppointmentStatusRejected  AppointmentStatus = "rejected"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents one booked (clinic, date, time) slot. The database
// enforces uniqueness on (clinic_id, appointment_date, appointment_time);
// cancelled and rejected rows are reused in place on rebooking, so at most
// one row ever exists per slot.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	MedicalCenterID uuid.UUID         `gorm:"type:uuid;not null;index" json:"medical_center_id"`
	ClinicID        uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_appointments_slot" json:"clinic_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;uniqueIndex:idx_appointments_slot" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:varchar(5);not null;uniqueIndex:idx_appointments_slot" json:"appointment_time"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'pending';index" json:"status"`

	// Patient snapshot captured at booking time, independent of the
	// booking user's profile
	PatientName   string `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientGender string `gorm:"type:char(1);not null" json:"patient_gender"`
	PatientAge    int    `gorm:"not null" json:"patient_age"`

	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	AdminNotes string    `gorm:"type:text" json:"admin_notes,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User          User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	MedicalCenter MedicalCenter `gorm:"foreignKey:MedicalCenterID" json:"medical_center,omitempty"`
	Clinic        Clinic        `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsActive reports whether the appointment occupies its slot.
// Cancelled and rejected appointments free the slot immediately.
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentStatusPending || a.Status == AppointmentStatusApproved
}

// IsPending checks if the appointment awaits admin review
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCancelled checks if the appointment was cancelled by the patient
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Approve transitions the appointment to approved
func (a *Appointment) Approve() {
	a.Status = AppointmentStatusApproved
}

// Reject transitions the appointment to rejected
func (a *Appointment) Reject() {
	a.Status = AppointmentStatusRejected
}

// Cancel transitions the appointment to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// Gender constants for the patient snapshot
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
