package converter

import (
	"github.com/shifacare/medcenter-booking/internal/delivery/dto"
	"github.com/shifacare/medcenter-booking/internal/domain/entity"
)

// NewsToResponse converts a News entity to NewsResponse DTO
func NewsToResponse(news *entity.News) *dto.NewsResponse {
	if news == nil {
		return nil
	}

	isPublished := false
	if news.IsPublished != nil {
		isPublished = *news.IsPublished
	}

	return &dto.NewsResponse{
		ID:              news.ID,
		MedicalCenterID: news.MedicalCenterID,
		Title:           news.Title,
		Body:            news.Body,
		IsPublished:     isPublished,
		CreatedAt:       news.CreatedAt,
		UpdatedAt:       news.UpdatedAt,
	}
}

// NewsItemsToResponses converts a slice of News entities
func NewsItemsToResponses(items []entity.News) []dto.NewsResponse {
	responses := make([]dto.NewsResponse, len(items))
	for i, item := range items {
		resp := NewsToResponse(&item)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
