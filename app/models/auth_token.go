package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// AuthToken is an opaque login token resolved by direct table lookup.
// Logging in replaces all previous tokens of the user.
type AuthToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Token     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"token"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// NewAuthToken creates a token with a fresh random 32-byte hex value.
func NewAuthToken(userID uint) (*AuthToken, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return &AuthToken{
		UserID: userID,
		Token:  hex.EncodeToString(b),
	}, nil
}
