package repository

import (
	"errors"

	"github.com/shifacare/medcenter-booking/internal/domain/entity"
	domainRepo "github.com/shifacare/medcenter-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type newsRepository struct{}

func NewNewsRepository() domainRepo.NewsRepository {
	return &newsRepository{}
}

func (r *newsRepository) Create(db *gorm.DB, news *entity.News) error {
	return db.Create(news).Error
}

func (r *newsRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.News, error) {
	var news entity.News
	err := db.Where("id = ?", id).First(&news).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &news, nil
}

func (r *newsRepository) FindPublished(db *gorm.DB) ([]entity.News, error) {
	var items []entity.News
	err := db.Where("is_published = ?", true).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *newsRepository) FindAll(db *gorm.DB) ([]entity.News, error) {
	var items []entity.News
	err := db.Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *newsRepository) Update(db *gorm.DB, news *entity.News) error {
	return db.Omit("MedicalCenter").Save(news).Error
}

func (r *newsRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.News{})
	return result.RowsAffected, result.Error
}
