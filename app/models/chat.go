package models

import "time"

// Chat is a conversation attached to an announcement. One chat exists per
// announcement (get-or-create); both the inquirer and the owner become
// participants. Message exchange is plain request/response.
type Chat struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	AnnouncementID *uint         `gorm:"index" json:"announcement_id"`
	Announcement   *Announcement `gorm:"foreignKey:AnnouncementID;constraint:OnDelete:CASCADE" json:"announcement,omitempty"`
	Participants   []User        `gorm:"many2many:chat_participants;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
}
