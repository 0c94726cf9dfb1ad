package repository

import (
	"strings"

	"github.com/adboardhq/adboard/app/models"
	"gorm.io/gorm"
)

// announcementRepository implements the AnnouncementRepository interface
type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository instance
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Create creates a new announcement
func (r *announcementRepository) Create(a *models.Announcement) error {
	return r.db.Create(a).Error
}

// GetByID retrieves an announcement with its relations
func (r *announcementRepository) GetByID(id uint) (*models.Announcement, error) {
	var a models.Announcement
	err := r.db.Preload("Category").Preload("Plan").Preload("Images").First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Update persists announcement changes
func (r *announcementRepository) Update(a *models.Announcement) error {
	return r.db.Save(a).Error
}

// Delete removes an announcement; images, payments, favorites and chats
// cascade via FK constraints
func (r *announcementRepository) Delete(id uint) error {
	return r.db.Delete(&models.Announcement{}, id).Error
}

func (r *announcementRepository) filtered(filter AnnouncementFilter) *gorm.DB {
	q := r.db.Model(&models.Announcement{})
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Condition != "" {
		q = q.Where("condition = ?", filter.Condition)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.PlanID != nil {
		q = q.Where("plan_id = ?", *filter.PlanID)
	}
	if s := strings.TrimSpace(filter.Query); s != "" {
		pattern := "%" + s + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	return q
}

// orderClause whitelists user-supplied ordering; everything else falls back
// to the canonical ranking order (priority, recency).
func orderClause(orderBy string) string {
	field := strings.TrimSpace(orderBy)
	desc := strings.HasPrefix(field, "-")
	field = strings.TrimPrefix(field, "-")

	switch field {
	case "priority", "created_at", "price":
	default:
		return "priority DESC, created_at DESC"
	}
	if desc {
		return field + " DESC"
	}
	return field + " ASC"
}

// List returns a filtered page of announcements in the requested order
func (r *announcementRepository) List(filter AnnouncementFilter) ([]models.Announcement, error) {
	var items []models.Announcement
	q := r.filtered(filter).
		Preload("Category").Preload("Plan").Preload("Images").
		Order(orderClause(filter.OrderBy))
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	err := q.Find(&items).Error
	return items, err
}

// Count returns the number of announcements matching the filter
func (r *announcementRepository) Count(filter AnnouncementFilter) (int64, error) {
	var count int64
	err := r.filtered(filter).Count(&count).Error
	return count, err
}

// Search finds published announcements by title or description substring
func (r *announcementRepository) Search(query string) ([]models.Announcement, error) {
	return r.List(AnnouncementFilter{Query: query, Status: models.AnnouncementStatusPublished})
}

// RandomInCategory picks up to limit random published announcements from the
// same category, excluding the given one.
func (r *announcementRepository) RandomInCategory(categoryID uint, excludeID uint, limit int) ([]models.Announcement, error) {
	var items []models.Announcement
	err := r.db.
		Where("category_id = ? AND status = ? AND id <> ?", categoryID, models.AnnouncementStatusPublished, excludeID).
		Order("RANDOM()").
		Limit(limit).
		Preload("Category").Preload("Plan").Preload("Images").
		Find(&items).Error
	return items, err
}

// SlugExists reports whether a slug is already taken
func (r *announcementRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Announcement{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// IncrementViews bumps the view counter without touching updated_at
func (r *announcementRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Announcement{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}
