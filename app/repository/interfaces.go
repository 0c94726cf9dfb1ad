package repository

import (
	"github.com/adboardhq/adboard/app/models"
	"gorm.io/gorm"
)

// AnnouncementFilter narrows and orders announcement listings. OrderBy accepts
// priority, created_at or price, optionally prefixed with "-" for descending;
// anything else falls back to the canonical ranking order.
type AnnouncementFilter struct {
	CategoryID *uint
	Condition  string
	Status     string
	PlanID     *uint
	Query      string
	OrderBy    string
	Offset     int
	Limit      int
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	GetOrCreateProfile(userID uint) (*models.UserProfile, error)
	SaveProfile(profile *models.UserProfile) error
}

// AuthTokenRepository defines the interface for opaque login tokens
type AuthTokenRepository interface {
	Replace(token *models.AuthToken) error
	GetByToken(token string) (*models.AuthToken, error)
	DeleteByUser(userID uint) error
}

// PlanRepository defines the interface for pricing tiers
type PlanRepository interface {
	GetByID(id uint) (*models.Plan, error)
	GetAll() ([]models.Plan, error)
}

// CategoryRepository defines the interface for the category tree
type CategoryRepository interface {
	GetByID(id uint) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Search(query string) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
}

// AnnouncementRepository defines the interface for listings
type AnnouncementRepository interface {
	Create(a *models.Announcement) error
	GetByID(id uint) (*models.Announcement, error)
	Update(a *models.Announcement) error
	Delete(id uint) error
	List(filter AnnouncementFilter) ([]models.Announcement, error)
	Count(filter AnnouncementFilter) (int64, error)
	Search(query string) ([]models.Announcement, error)
	RandomInCategory(categoryID uint, excludeID uint, limit int) ([]models.Announcement, error)
	SlugExists(slug string) (bool, error)
	IncrementViews(id uint) error
}

// FavoriteRepository defines the interface for bookmarks
type FavoriteRepository interface {
	Create(f *models.Favorite) error
	GetByIDForUser(id, userID uint) (*models.Favorite, error)
	ListByUser(userID uint) ([]models.Favorite, error)
	Delete(id uint) error
}

// CommentRepository defines the interface for announcement comments
type CommentRepository interface {
	Create(c *models.Comment) error
	List(announcementID uint) ([]models.Comment, error)
}

// NewsRepository defines the interface for news posts
type NewsRepository interface {
	GetAll() ([]models.News, error)
}

// BannerRepository defines the interface for landing page banners
type BannerRepository interface {
	GetAll() ([]models.Banner, error)
}

// ChatRepository defines the interface for announcement chats
type ChatRepository interface {
	GetOrCreateForAnnouncement(announcementID uint) (*models.Chat, error)
	AddParticipant(chatID, userID uint) error
	GetByIDForParticipant(chatID, userID uint) (*models.Chat, error)
	ListByUser(userID uint) ([]models.Chat, error)
	CreateMessage(m *models.Message) error
	ListMessages(chatID uint) ([]models.Message, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	AuthToken    AuthTokenRepository
	Plan         PlanRepository
	Category     CategoryRepository
	Announcement AnnouncementRepository
	Favorite     FavoriteRepository
	Comment      CommentRepository
	News         NewsRepository
	Banner       BannerRepository
	Chat         ChatRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		AuthToken:    NewAuthTokenRepository(db),
		Plan:         NewPlanRepository(db),
		Category:     NewCategoryRepository(db),
		Announcement: NewAnnouncementRepository(db),
		Favorite:     NewFavoriteRepository(db),
		Comment:      NewCommentRepository(db),
		News:         NewNewsRepository(db),
		Banner:       NewBannerRepository(db),
		Chat:         NewChatRepository(db),
	}
}
