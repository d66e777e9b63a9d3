package converter

import (
	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		UserID:          appointment.UserID,
		MedicalCenterID: appointment.MedicalCenterID,
		ClinicID:        appointment.ClinicID,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: appointment.AppointmentTime,
		Status:          string(appointment.Status),
		PatientName:     appointment.PatientName,
		PatientGender:   appointment.PatientGender,
		PatientAge:      appointment.PatientAge,
		Notes:           appointment.Notes,
		AdminNotes:      appointment.AdminNotes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	// Include clinic/center info if preloaded
	if appointment.Clinic.ID != uuid.Nil {
		response.Clinic = ClinicToResponse(&appointment.Clinic)
	}
	if appointment.MedicalCenter.ID != uuid.Nil {
		response.MedicalCenter = MedicalCenterToResponse(&appointment.MedicalCenter)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
