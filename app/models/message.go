package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Message is one chat message, listed oldest-first.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChatID    uint      `gorm:"not null;index" json:"chat_id"`
	Chat      *Chat     `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"-"`
	SenderID  uint      `gorm:"not null;index" json:"sender_id"`
	Sender    *User     `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	Text      string    `gorm:"type:text;not null" json:"text" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (m *Message) Validate() error {
	v := validator.New()

	return v.Struct(m)
}
