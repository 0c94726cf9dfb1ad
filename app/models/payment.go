package models

import "time"

// Payment is one attempt to purchase a plan upgrade for one announcement.
// Amount snapshots the plan price at purchase time and is never repriced.
// ProviderPaymentID is the gateway's identifier, empty for zero-cost plans
// that skip the gateway. Paid flips to true exactly once, irreversibly.
type Payment struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	UserID            uint          `gorm:"not null;index" json:"user_id"`
	User              *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	AnnouncementID    uint          `gorm:"not null;index" json:"announcement_id"`
	Announcement      *Announcement `gorm:"foreignKey:AnnouncementID;constraint:OnDelete:CASCADE" json:"-"`
	PlanID            *uint         `gorm:"index" json:"plan_id"`
	Plan              *Plan         `gorm:"foreignKey:PlanID;constraint:OnDelete:SET NULL" json:"plan,omitempty"`
	Amount            float64       `gorm:"type:numeric(10,2);not null" json:"amount"`
	ProviderPaymentID string        `gorm:"type:varchar(100);index" json:"provider_payment_id"`
	Paid              bool          `gorm:"not null;default:false" json:"paid"`
	CreatedAt         time.Time     `gorm:"autoCreateTime" json:"created_at"`
}
