package models

import "time"

const (
	PlanBasic    = "basic"
	PlanStandard = "standard"
	PlanTop      = "top"
)

// Plan is a paid pricing tier controlling an announcement's ranking weight.
// Exactly one record exists per tier name; plans are edited by administrators
// only. The priority weight is expected to stay positive and monotonic with
// tier rank, this is not enforced here.
type Plan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"name" validate:"required,oneof=basic standard top"`
	Amount    float64   `gorm:"type:numeric(10,2);not null;default:0" json:"amount" validate:"gte=0"`
	Priority  int       `gorm:"not null;default:1" json:"priority"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
