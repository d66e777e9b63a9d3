package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	MedicalCenterID uuid.UUID // Scope for center admins (zero value = all)
	ClinicID        uuid.UUID // Filter by clinic (zero value = all)
	Date            string    // Format: YYYY-MM-DD
	Status          string    // pending / approved / rejected / cancelled
	PatientName     string    // Filter by patient snapshot name (ILIKE)
}
