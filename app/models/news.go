package models

import "time"

// News is a flat editorial post shown on the landing page.
type News struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Content   string    `gorm:"type:text;not null" json:"content" validate:"required"`
	ImageURL  string    `gorm:"type:varchar(255);default:null" json:"image_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
