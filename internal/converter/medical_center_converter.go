package converter

import (
	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/domain/entity"
)

// MedicalCenterToResponse converts a MedicalCenter entity to its DTO
func MedicalCenterToResponse(center *entity.MedicalCenter) *dto.MedicalCenterResponse {
	if center == nil {
		return nil
	}

	isActive := false
	if center.IsActive != nil {
		isActive = *center.IsActive
	}

	return &dto.MedicalCenterResponse{
		ID:          center.ID,
		Name:        center.Name,
		Description: center.Description,
		Address:     center.Address,
		Phone:       center.Phone,
		IsActive:    isActive,
		CreatedAt:   center.CreatedAt,
		UpdatedAt:   center.UpdatedAt,
	}
}

// MedicalCentersToResponses converts a slice of MedicalCenter entities
func MedicalCentersToResponses(centers []entity.MedicalCenter) []dto.MedicalCenterResponse {
	responses := make([]dto.MedicalCenterResponse, len(centers))
	for i, center := range centers {
		resp := MedicalCenterToResponse(&center)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
