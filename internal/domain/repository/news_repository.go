package repository

import (
	"github.com/shifacare/medcenter-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsRepository interface {
	Create(db *gorm.DB, news *entity.News) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.News, error)
	FindPublished(db *gorm.DB) ([]entity.News, error)
	FindAll(db *gorm.DB) ([]entity.News, error)
	Update(db *gorm.DB, news *entity.News) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
