package converter

import (
	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/domain/entity"
	"github.com/shifacare/medcenter-booking/internal/scheduling"
)

// WorkingHoursFromRequest maps the admin form's working hours into the
// entity shape, canonicalizing day keys on the way in so only reads have to
// deal with legacy keys.
func WorkingHoursFromRequest(req map[string]dto.DayHoursRequest) entity.WorkingHours {
	if req == nil {
		return nil
	}
	wh := make(entity.WorkingHours, len(req))
	for key, day := range req {
		isOpen := day.IsOpen
		wh[scheduling.NormalizeDayKey(key)] = entity.DayHours{
			IsOpen:    &isOpen,
			StartTime: day.StartTime,
			EndTime:   day.EndTime,
		}
	}
	return wh
}

// WorkingHoursToResponse maps stored working hours (either shape) to the
// current response shape.
func WorkingHoursToResponse(wh entity.WorkingHours) map[string]dto.DayHoursRequest {
	if wh == nil {
		return nil
	}
	out := make(map[string]dto.DayHoursRequest, len(wh))
	for key, day := range wh {
		start, end, open := day.Bounds()
		out[scheduling.NormalizeDayKey(key)] = dto.DayHoursRequest{
			IsOpen:    open,
			StartTime: start,
			EndTime:   end,
		}
	}
	return out
}

// ClinicToResponse converts a Clinic entity to ClinicResponse DTO
func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}

	isActive := false
	if clinic.IsActive != nil {
		isActive = *clinic.IsActive
	}

	return &dto.ClinicResponse{
		ID:              clinic.ID,
		MedicalCenterID: clinic.MedicalCenterID,
		Name:            clinic.Name,
		DoctorName:      clinic.DoctorName,
		Description:     clinic.Description,
		WorkingHours:    WorkingHoursToResponse(clinic.WorkingHours),
		UseFixedSlots:   clinic.UseFixedTimeSlots,
		IsActive:        isActive,
		CreatedAt:       clinic.CreatedAt,
		UpdatedAt:       clinic.UpdatedAt,
	}
}

// ClinicsToResponses converts a slice of Clinic entities
func ClinicsToResponses(clinics []entity.Clinic) []dto.ClinicResponse {
	responses := make([]dto.ClinicResponse, len(clinics))
	for i, clinic := range clinics {
		resp := ClinicToResponse(&clinic)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// FixedTimeSlotToResponse converts a FixedTimeSlot entity, truncating the
// stored time to minute precision.
func FixedTimeSlotToResponse(slot *entity.FixedTimeSlot) *dto.FixedTimeSlotResponse {
	if slot == nil {
		return nil
	}

	isActive := false
	if slot.IsActive != nil {
		isActive = *slot.IsActive
	}

	return &dto.FixedTimeSlotResponse{
		ID:        slot.ID,
		ClinicID:  slot.ClinicID,
		DayOfWeek: slot.DayOfWeek,
		TimeSlot:  scheduling.TruncateToMinute(slot.TimeSlot),
		IsActive:  isActive,
	}
}

// FixedTimeSlotsToResponses converts a slice of FixedTimeSlot entities
func FixedTimeSlotsToResponses(slots []entity.FixedTimeSlot) []dto.FixedTimeSlotResponse {
	responses := make([]dto.FixedTimeSlotResponse, len(slots))
	for i, slot := range slots {
		resp := FixedTimeSlotToResponse(&slot)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
