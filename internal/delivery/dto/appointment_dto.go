package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	ClinicID        uuid.UUID `json:"clinic_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string    `json:"appointment_time" validate:"required,datetime=15:04"`
	PatientName     string    `json:"patient_name" validate:"required,min=2,max=255"`
	PatientGender   string    `json:"patient_gender" validate:"required,oneof=M F"`
	PatientAge      int       `json:"patient_age" validate:"gte=0,lte=120"`
	Notes           string    `json:"notes" validate:"omitempty"`
}

type DecideAppointmentRequest struct {
	AdminNotes string `json:"admin_notes" validate:"omitempty"`
}

type AppointmentFilterRequest struct {
	ClinicID    string `json:"clinic_id"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	PatientName string `json:"patient_name"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID              `json:"id"`
	UserID          uuid.UUID              `json:"user_id"`
	MedicalCenterID uuid.UUID              `json:"medical_center_id"`
	ClinicID        uuid.UUID              `json:"clinic_id"`
	AppointmentDate string                 `json:"appointment_date"`
	AppointmentTime string                 `json:"appointment_time"`
	Status          string                 `json:"status"`
	PatientName     string                 `json:"patient_name"`
	PatientGender   string                 `json:"patient_gender"`
	PatientAge      int                    `json:"patient_age"`
	Notes           string                 `json:"notes,omitempty"`
	AdminNotes      string                 `json:"admin_notes,omitempty"`
	Clinic          *ClinicResponse        `json:"clinic,omitempty"`
	MedicalCenter   *MedicalCenterResponse `json:"medical_center,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// ReminderSweepResponse matches the reminder route's JSON contract.
type ReminderSweepResponse struct {
	Success       bool                  `json:"success"`
	RemindersSent int                   `json:"remindersSent"`
	Appointments  []AppointmentResponse `json:"appointments"`
}
