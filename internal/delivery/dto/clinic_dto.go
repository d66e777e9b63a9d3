package dto

import (
	"time"

	"github.com/google/uuid"
)

// DayHoursRequest is one weekday's opening configuration as submitted by
// the admin clinic form.
type DayHoursRequest struct {
	IsOpen    bool   `json:"is_open"`
	StartTime string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"omitempty,datetime=15:04"`
}

// Request DTOs

type CreateClinicRequest struct {
	MedicalCenterID uuid.UUID                  `json:"medical_center_id" validate:"required"`
	Name            string                     `json:"name" validate:"required,min=2,max=255"`
	DoctorName      string                     `json:"doctor_name" validate:"omitempty,max=255"`
	Description     string                     `json:"description" validate:"omitempty"`
	WorkingHours    map[string]DayHoursRequest `json:"working_hours" validate:"omitempty"`
	UseFixedSlots   bool                       `json:"use_fixed_time_slots"`
}

type UpdateClinicRequest struct {
	Name          string                     `json:"name" validate:"omitempty,min=2,max=255"`
	DoctorName    string                     `json:"doctor_name" validate:"omitempty,max=255"`
	Description   string                     `json:"description" validate:"omitempty"`
	WorkingHours  map[string]DayHoursRequest `json:"working_hours" validate:"omitempty"`
	UseFixedSlots *bool                      `json:"use_fixed_time_slots" validate:"omitempty"`
	IsActive      *bool                      `json:"is_active" validate:"omitempty"`
}

type ReplaceFixedSlotsRequest struct {
	DayOfWeek int      `json:"day_of_week" validate:"gte=0,lte=6"`
	TimeSlots []string `json:"time_slots" validate:"required,dive,datetime=15:04"`
}

// GenerateFixedSlotsRequest asks the server to derive a weekday's fixed
// slots from an interval with an admin-chosen step.
type GenerateFixedSlotsRequest struct {
	DayOfWeek       int    `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime       string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime         string `json:"end_time" validate:"required,datetime=15:04"`
	IntervalMinutes int    `json:"interval_minutes" validate:"required,gte=5,lte=120"`
}

// Response DTOs

type ClinicResponse struct {
	ID              uuid.UUID                  `json:"id"`
	MedicalCenterID uuid.UUID                  `json:"medical_center_id"`
	Name            string                     `json:"name"`
	DoctorName      string                     `json:"doctor_name,omitempty"`
	Description     string                     `json:"description,omitempty"`
	WorkingHours    map[string]DayHoursRequest `json:"working_hours,omitempty"`
	UseFixedSlots   bool                       `json:"use_fixed_time_slots"`
	IsActive        bool                       `json:"is_active"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

type ClinicListResponse struct {
	Clinics []ClinicResponse `json:"clinics"`
	Total   int              `json:"total"`
}

type FixedTimeSlotResponse struct {
	ID        uuid.UUID `json:"id"`
	ClinicID  uuid.UUID `json:"clinic_id"`
	DayOfWeek int       `json:"day_of_week"`
	TimeSlot  string    `json:"time_slot"`
	IsActive  bool      `json:"is_active"`
}

type FixedTimeSlotListResponse struct {
	Slots []FixedTimeSlotResponse `json:"slots"`
	Total int                     `json:"total"`
}

// AvailabilityResponse lists the bookable times for a clinic+date.
// Degraded is set when the fixed-slot lookup failed and the list was
// forced empty (fail closed).
type AvailabilityResponse struct {
	ClinicID uuid.UUID `json:"clinic_id"`
	Date     string    `json:"date"`
	Times    []string  `json:"times"`
	Degraded bool      `json:"degraded,omitempty"`
}
