package models

import "time"

// Favorite bookmarks an announcement for a user. One row per pair.
type Favorite struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	UserID         uint          `gorm:"not null;uniqueIndex:ux_favorites_user_announcement,priority:1" json:"user_id"`
	User           *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	AnnouncementID uint          `gorm:"not null;uniqueIndex:ux_favorites_user_announcement,priority:2" json:"announcement_id"`
	Announcement   *Announcement `gorm:"foreignKey:AnnouncementID;constraint:OnDelete:CASCADE" json:"announcement,omitempty"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
}
