package models

// AnnouncementImage references one picture of an announcement. Only the URL is
// stored; upload and processing happen outside this service.
type AnnouncementImage struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	AnnouncementID uint   `gorm:"not null;index" json:"announcement_id"`
	ImageURL       string `gorm:"type:varchar(255);not null" json:"image_url" validate:"required,max=255"`
}
