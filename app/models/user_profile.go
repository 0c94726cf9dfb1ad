package models

import "time"

// UserProfile holds the optional public profile of a user. Created lazily on
// first access (get-or-create).
type UserProfile struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User          *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	AvatarURL     string    `gorm:"type:varchar(255);default:null" json:"avatar_url" validate:"omitempty,max=255"`
	Bio           string    `gorm:"type:text;default:null" json:"bio" validate:"max=1000"`
	TelegramLink  string    `gorm:"type:varchar(255);default:null" json:"telegram_link" validate:"omitempty,url,max=255"`
	InstagramLink string    `gorm:"type:varchar(255);default:null" json:"instagram_link" validate:"omitempty,url,max=255"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
