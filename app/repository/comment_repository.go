package repository

import (
	"github.com/adboardhq/adboard/app/models"
	"gorm.io/gorm"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create stores a new comment
func (r *commentRepository) Create(c *models.Comment) error {
	return r.db.Create(c).Error
}

// List returns comments, newest first; announcementID 0 lists all
func (r *commentRepository) List(announcementID uint) ([]models.Comment, error) {
	var comments []models.Comment
	q := r.db.Preload("User").Order("created_at DESC")
	if announcementID != 0 {
		q = q.Where("announcement_id = ?", announcementID)
	}
	err := q.Find(&comments).Error
	return comments, err
}
