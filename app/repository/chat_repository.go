package repository

import (
	"errors"

	"github.com/adboardhq/adboard/app/models"
	"gorm.io/gorm"
)

// chatRepository implements the ChatRepository interface
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository instance
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// GetOrCreateForAnnouncement returns the single chat of an announcement,
// creating it on first contact.
func (r *chatRepository) GetOrCreateForAnnouncement(announcementID uint) (*models.Chat, error) {
	var chat models.Chat
	err := r.db.Preload("Participants").Where("announcement_id = ?", announcementID).First(&chat).Error
	if err == nil {
		return &chat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	chat = models.Chat{AnnouncementID: &announcementID}
	if err := r.db.Create(&chat).Error; err != nil {
		return nil, err
	}
	return &chat, nil
}

// AddParticipant joins a user to a chat; re-adding is a no-op
func (r *chatRepository) AddParticipant(chatID, userID uint) error {
	var count int64
	if err := r.db.Table("chat_participants").
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Exec("INSERT INTO chat_participants (chat_id, user_id) VALUES (?, ?)", chatID, userID).Error
}

// GetByIDForParticipant fetches a chat only if the user participates in it
func (r *chatRepository) GetByIDForParticipant(chatID, userID uint) (*models.Chat, error) {
	var chat models.Chat
	err := r.db.Preload("Participants").
		Joins("JOIN chat_participants cp ON cp.chat_id = chats.id").
		Where("chats.id = ? AND cp.user_id = ?", chatID, userID).
		First(&chat).Error
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

// ListByUser lists all chats the user participates in, newest first
func (r *chatRepository) ListByUser(userID uint) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.db.Preload("Participants").Preload("Announcement").
		Joins("JOIN chat_participants cp ON cp.chat_id = chats.id").
		Where("cp.user_id = ?", userID).
		Order("chats.created_at DESC").
		Find(&chats).Error
	return chats, err
}

// CreateMessage stores a new message
func (r *chatRepository) CreateMessage(m *models.Message) error {
	return r.db.Create(m).Error
}

// ListMessages returns a chat's messages oldest-first
func (r *chatRepository) ListMessages(chatID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Sender").
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
