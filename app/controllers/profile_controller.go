package controllers

import (
	"github.com/go-playground/validator/v10"

	"github.com/adboardhq/adboard/app/repository"
	"github.com/adboardhq/adboard/internal/pkg/usercontext"
	"github.com/gofiber/fiber/v2"
)

type profileUpdateRequest struct {
	AvatarURL     *string `json:"avatar_url" validate:"omitempty,max=255"`
	Bio           *string `json:"bio" validate:"omitempty,max=1000"`
	TelegramLink  *string `json:"telegram_link" validate:"omitempty,url,max=255"`
	InstagramLink *string `json:"instagram_link" validate:"omitempty,url,max=255"`
}

// HandleGetProfile returns the caller's profile, creating it on first access
func HandleGetProfile(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)
	profile, err := repository.GetGlobalFactory().GetUserRepository().GetOrCreateProfile(userID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(profile)
}

// HandleUpdateProfile applies a partial profile update
func HandleUpdateProfile(c *fiber.Ctx) error {
	var req profileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validator.New().Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	profile, err := userRepo.GetOrCreateProfile(usercontext.GetUserID(c))
	if err != nil {
		return internalError(c)
	}

	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.TelegramLink != nil {
		profile.TelegramLink = *req.TelegramLink
	}
	if req.InstagramLink != nil {
		profile.InstagramLink = *req.InstagramLink
	}

	if err := userRepo.SaveProfile(profile); err != nil {
		return internalError(c)
	}
	return c.JSON(profile)
}
