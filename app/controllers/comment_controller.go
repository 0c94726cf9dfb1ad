package controllers

import (
	"github.com/adboardhq/adboard/app/models"
	"github.com/adboardhq/adboard/app/repository"
	"github.com/adboardhq/adboard/internal/pkg/usercontext"
	"github.com/gofiber/fiber/v2"
)

type commentCreateRequest struct {
	Text   string `json:"text"`
	Rating uint   `json:"rating"`
}

// HandleListComments returns the comments of an announcement, newest first
func HandleListComments(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	comments, err := repository.GetGlobalFactory().GetCommentRepository().List(id)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(comments)
}

// HandleCreateComment posts a rated comment on an announcement
func HandleCreateComment(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req commentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	factory := repository.GetGlobalFactory()
	if _, err := factory.GetAnnouncementRepository().GetByID(id); err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "announcement not found")
		}
		return internalError(c)
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}
	comment := &models.Comment{
		UserID:         usercontext.GetUserID(c),
		AnnouncementID: id,
		Text:           req.Text,
		Rating:         rating,
	}
	if err := comment.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := factory.GetCommentRepository().Create(comment); err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}
