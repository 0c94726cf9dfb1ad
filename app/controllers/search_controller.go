package controllers

import (
	"strings"

	"github.com/adboardhq/adboard/app/repository"
	"github.com/gofiber/fiber/v2"
)

// HandleGlobalSearch searches announcements and categories at once
func HandleGlobalSearch(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return badRequest(c, "query parameter q is required")
	}

	factory := repository.GetGlobalFactory()
	announcements, err := factory.GetAnnouncementRepository().Search(query)
	if err != nil {
		return internalError(c)
	}
	categories, err := factory.GetCategoryRepository().Search(query)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"query":         query,
		"announcements": announcements,
		"categories":    categories,
	})
}
