package repository

import (
	"github.com/adboardhq/adboard/app/models"
	"gorm.io/gorm"
)

// authTokenRepository implements the AuthTokenRepository interface
type authTokenRepository struct {
	db *gorm.DB
}

// NewAuthTokenRepository creates a new auth token repository instance
func NewAuthTokenRepository(db *gorm.DB) AuthTokenRepository {
	return &authTokenRepository{db: db}
}

// Replace deletes all previous tokens of the user and stores the new one in a
// single transaction, so a login invalidates every earlier session.
func (r *authTokenRepository) Replace(token *models.AuthToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).Delete(&models.AuthToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

// GetByToken resolves a raw token value to its record, preloading the user
func (r *authTokenRepository) GetByToken(token string) (*models.AuthToken, error) {
	var t models.AuthToken
	err := r.db.Preload("User").Where("token = ?", token).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteByUser removes all tokens of a user (logout everywhere)
func (r *authTokenRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.AuthToken{}).Error
}
