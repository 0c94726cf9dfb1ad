package repository

import (
	"github.com/adboardhq/adboard/app/models"
	"gorm.io/gorm"
)

// favoriteRepository implements the FavoriteRepository interface
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository instance
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create stores a bookmark; the unique index rejects duplicates
func (r *favoriteRepository) Create(f *models.Favorite) error {
	return r.db.Create(f).Error
}

// GetByIDForUser fetches a bookmark only if it belongs to the user
func (r *favoriteRepository) GetByIDForUser(id, userID uint) (*models.Favorite, error) {
	var f models.Favorite
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByUser lists the user's bookmarks, newest first
func (r *favoriteRepository) ListByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Announcement").Preload("Announcement.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

// Delete removes a bookmark
func (r *favoriteRepository) Delete(id uint) error {
	return r.db.Delete(&models.Favorite{}, id).Error
}
