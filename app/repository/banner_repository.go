package repository

import (
	"github.com/adboardhq/adboard/app/models"
	"gorm.io/gorm"
)

// bannerRepository implements the BannerRepository interface
type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository creates a new banner repository instance
func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

// GetAll lists all banners
func (r *bannerRepository) GetAll() ([]models.Banner, error) {
	var banners []models.Banner
	err := r.db.Order("created_at DESC").Find(&banners).Error
	return banners, err
}
