package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Comment is a rated user comment on an announcement.
type Comment struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	UserID         uint          `gorm:"not null;index" json:"user_id"`
	User           *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	AnnouncementID uint          `gorm:"not null;index" json:"announcement_id"`
	Announcement   *Announcement `gorm:"foreignKey:AnnouncementID;constraint:OnDelete:CASCADE" json:"-"`
	Text           string        `gorm:"type:text;not null" json:"text" validate:"required"`
	Rating         uint          `gorm:"not null;default:5" json:"rating" validate:"gte=1,lte=5"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Comment) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
