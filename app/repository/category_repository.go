package repository

import (
	"strings"

	"github.com/adboardhq/adboard/app/models"
	"gorm.io/gorm"
)

// categoryRepository implements the CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// GetByID retrieves a category with its direct children
func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.Preload("Children").First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetAll lists every category node ordered by name
func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// Search finds categories by name substring, case-insensitive
func (r *categoryRepository) Search(query string) ([]models.Category, error) {
	var categories []models.Category
	pattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.Where("name ILIKE ?", pattern).Find(&categories).Error
	return categories, err
}

// Update persists category changes
func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category; children cascade via the FK constraint
func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}
