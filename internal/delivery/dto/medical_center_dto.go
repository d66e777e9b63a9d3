package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicalCenterRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Address     string `json:"address" validate:"omitempty"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
}

type UpdateMedicalCenterRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Address     string `json:"address" validate:"omitempty"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	IsActive    *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type MedicalCenterResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MedicalCenterListResponse struct {
	Centers []MedicalCenterResponse `json:"centers"`
	Total   int                     `json:"total"`
}
