package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateNewsRequest struct {
	MedicalCenterID *uuid.UUID `json:"medical_center_id" validate:"omitempty"`
	Title           string     `json:"title" validate:"required,min=2,max=255"`
	Body            string     `json:"body" validate:"required"`
	IsPublished     bool       `json:"is_published"`
}

type UpdateNewsRequest struct {
	Title       string `json:"title" validate:"omitempty,min=2,max=255"`
	Body        string `json:"body" validate:"omitempty"`
	IsPublished *bool  `json:"is_published" validate:"omitempty"`
}

// Response DTOs

type NewsResponse struct {
	ID              uuid.UUID  `json:"id"`
	MedicalCenterID *uuid.UUID `json:"medical_center_id,omitempty"`
	Title           string     `json:"title"`
	Body            string     `json:"body"`
	IsPublished     bool       `json:"is_published"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type NewsListResponse struct {
	News  []NewsResponse `json:"news"`
	Total int            `json:"total"`
}
