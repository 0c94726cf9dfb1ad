package controllers

import (
	"strings"

	"github.com/adboardhq/adboard/app/repository"
	"github.com/gofiber/fiber/v2"
)

type categoryUpdateRequest struct {
	Name     *string `json:"name"`
	ParentID *uint   `json:"parent_id"`
}

// HandleListCategories returns the category tree, optionally filtered by a
// name query.
func HandleListCategories(c *fiber.Ctx) error {
	catRepo := repository.GetGlobalFactory().GetCategoryRepository()

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		categories, err := catRepo.Search(q)
		if err != nil {
			return internalError(c)
		}
		return c.JSON(categories)
	}

	categories, err := catRepo.GetAll()
	if err != nil {
		return internalError(c)
	}
	return c.JSON(categories)
}

// HandleGetCategory returns a category with its children
func HandleGetCategory(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	category, err := repository.GetGlobalFactory().GetCategoryRepository().GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "category not found")
		}
		return internalError(c)
	}
	return c.JSON(category)
}

// HandleUpdateCategory renames or reparents a category (admin only)
func HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req categoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	catRepo := repository.GetGlobalFactory().GetCategoryRepository()
	category, err := catRepo.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "category not found")
		}
		return internalError(c)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return badRequest(c, "name must not be empty")
		}
		category.Name = name
	}
	if req.ParentID != nil {
		if *req.ParentID == category.ID {
			return badRequest(c, "category cannot be its own parent")
		}
		if *req.ParentID == 0 {
			category.ParentID = nil
		} else {
			if _, err := catRepo.GetByID(*req.ParentID); err != nil {
				return badRequest(c, "parent category does not exist")
			}
			category.ParentID = req.ParentID
		}
	}

	if err := catRepo.Update(category); err != nil {
		return internalError(c)
	}
	return c.JSON(category)
}

// HandleDeleteCategory removes a category (admin only). Announcements keep
// existing with their category cleared.
func HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	catRepo := repository.GetGlobalFactory().GetCategoryRepository()
	if _, err := catRepo.GetByID(id); err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "category not found")
		}
		return internalError(c)
	}
	if err := catRepo.Delete(id); err != nil {
		return internalError(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
