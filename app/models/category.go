package models

import "time"

// Category is a node in the hierarchical category tree, stored as a plain
// parent-id adjacency list.
type Category struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	ImageURL  string     `gorm:"type:varchar(255);default:null" json:"image_url"`
	ParentID  *uint      `gorm:"index" json:"parent_id"`
	Children  []Category `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"children,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
