package converter

import (
	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	isActive := false
	if user.IsActive != nil {
		isActive = *user.IsActive
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		RoleID:    user.RoleID,
		RoleName:  user.Role.RoleName,
		IsActive:  isActive,
		CreatedAt: user.CreatedAt,
	}
}
