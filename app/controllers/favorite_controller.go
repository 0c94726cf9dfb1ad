package controllers

import (
	"github.com/adboardhq/adboard/app/models"
	"github.com/adboardhq/adboard/app/repository"
	"github.com/adboardhq/adboard/internal/pkg/usercontext"
	"github.com/gofiber/fiber/v2"
)

type favoriteCreateRequest struct {
	AnnouncementID uint `json:"announcement_id"`
}

// HandleListFavorites returns the caller's bookmarks
func HandleListFavorites(c *fiber.Ctx) error {
	favorites, err := repository.GetGlobalFactory().GetFavoriteRepository().ListByUser(usercontext.GetUserID(c))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(favorites)
}

// HandleCreateFavorite bookmarks an announcement for the caller
func HandleCreateFavorite(c *fiber.Ctx) error {
	var req favoriteCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.AnnouncementID == 0 {
		return badRequest(c, "announcement_id is required")
	}

	factory := repository.GetGlobalFactory()
	if _, err := factory.GetAnnouncementRepository().GetByID(req.AnnouncementID); err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "announcement not found")
		}
		return internalError(c)
	}

	f := &models.Favorite{
		UserID:         usercontext.GetUserID(c),
		AnnouncementID: req.AnnouncementID,
	}
	if err := factory.GetFavoriteRepository().Create(f); err != nil {
		// unique index on (user, announcement) rejects double bookmarks
		if isUniqueViolation(err) {
			return badRequest(c, "announcement is already bookmarked")
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(f)
}

// HandleDeleteFavorite removes one of the caller's bookmarks
func HandleDeleteFavorite(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	favRepo := repository.GetGlobalFactory().GetFavoriteRepository()
	if _, err := favRepo.GetByIDForUser(id, usercontext.GetUserID(c)); err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "favorite not found")
		}
		return internalError(c)
	}
	if err := favRepo.Delete(id); err != nil {
		return internalError(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
