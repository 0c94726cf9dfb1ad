package repository

import (
	"github.com/adboardhq/adboard/app/models"
	"gorm.io/gorm"
)

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// GetAll lists news posts, newest first
func (r *newsRepository) GetAll() ([]models.News, error) {
	var news []models.News
	err := r.db.Order("created_at DESC").Find(&news).Error
	return news, err
}
