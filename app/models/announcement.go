package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	AnnouncementStatusDraft     = "draft"
	AnnouncementStatusPublished = "published"
	AnnouncementStatusArchived  = "archived"
)

// Announcement is a classified listing. Priority is a denormalized copy of the
// plan's weight so listing queries can sort without a join; it must only be
// written through payment.AssignPriority.
type Announcement struct {
	ID             uint                `gorm:"primaryKey" json:"id"`
	UserID         uint                `gorm:"not null;index" json:"user_id"`
	User           *User               `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CategoryID     *uint               `gorm:"index" json:"category_id"`
	Category       *Category           `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Title          string              `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Slug           string              `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description    string              `gorm:"type:text;not null" json:"description" validate:"required"`
	Condition      string              `gorm:"type:varchar(50);default:null" json:"condition"`
	Location       string              `gorm:"type:varchar(255);default:null" json:"location"`
	City           string              `gorm:"type:varchar(100);default:null" json:"city"`
	Phone          string              `gorm:"type:varchar(20);default:null" json:"phone"`
	Status         string              `gorm:"type:varchar(20);not null;default:'draft'" json:"status" validate:"oneof=draft published archived"`
	PlanID         *uint               `gorm:"index" json:"plan_id"`
	Plan           *Plan               `gorm:"foreignKey:PlanID;constraint:OnDelete:SET NULL" json:"plan,omitempty"`
	Priority       int                 `gorm:"not null;default:1;index:idx_announcements_ranking,priority:1,sort:desc" json:"priority"`
	Price          float64             `gorm:"type:numeric(10,2);not null;default:0" json:"price" validate:"gte=0"`
	IsNegotiable   bool                `gorm:"default:false" json:"is_negotiable"`
	ViewsCount     uint                `gorm:"not null;default:0" json:"views_count"`
	ExpirationDate *time.Time          `gorm:"type:timestamp;default:null" json:"expiration_date,omitempty"`
	Images         []AnnouncementImage `gorm:"foreignKey:AnnouncementID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt      time.Time           `gorm:"autoCreateTime;index:idx_announcements_ranking,priority:2,sort:desc" json:"created_at"`
	UpdatedAt      time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Announcement) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

// PositionLabel describes where the current plan places the listing on the board.
func (a *Announcement) PositionLabel() string {
	if a.Plan != nil && a.Plan.Name == PlanTop {
		return "Top of the board"
	}
	if a.Plan != nil && a.Plan.Name == PlanStandard {
		return "Middle of the board"
	}
	return "Lower part of the board"
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title. Uniqueness is the caller's concern.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
