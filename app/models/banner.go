package models

import "time"

// Banner is a promotional image slot on the landing page.
type Banner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ImageURL  string    `gorm:"type:varchar(255);not null" json:"image_url" validate:"required,max=255"`
	AltText   string    `gorm:"type:varchar(255);default:null" json:"alt_text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
