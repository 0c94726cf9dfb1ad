package controllers

import (
	"strings"

	"github.com/adboardhq/adboard/app/models"
	"github.com/adboardhq/adboard/app/repository"
	"github.com/adboardhq/adboard/internal/pkg/usercontext"
	"github.com/gofiber/fiber/v2"
)

type chatCreateRequest struct {
	AnnouncementID uint `json:"announcement_id"`
}

type messageCreateRequest struct {
	Text string `json:"text"`
}

// HandleCreateChat opens (or returns) the chat for an announcement and adds
// the caller and the announcement owner as participants.
func HandleCreateChat(c *fiber.Ctx) error {
	var req chatCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.AnnouncementID == 0 {
		return badRequest(c, "announcement_id is required")
	}

	factory := repository.GetGlobalFactory()
	a, err := factory.GetAnnouncementRepository().GetByID(req.AnnouncementID)
	if err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "announcement not found")
		}
		return internalError(c)
	}

	chatRepo := factory.GetChatRepository()
	chat, err := chatRepo.GetOrCreateForAnnouncement(a.ID)
	if err != nil {
		return internalError(c)
	}
	if err := chatRepo.AddParticipant(chat.ID, usercontext.GetUserID(c)); err != nil {
		return internalError(c)
	}
	if err := chatRepo.AddParticipant(chat.ID, a.UserID); err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(chat)
}

// HandleListChats returns the chats the caller participates in
func HandleListChats(c *fiber.Ctx) error {
	chats, err := repository.GetGlobalFactory().GetChatRepository().ListByUser(usercontext.GetUserID(c))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(chats)
}

// HandleListMessages returns a chat's messages oldest-first; participants only
func HandleListMessages(c *fiber.Ctx) error {
	chatID, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	chatRepo := repository.GetGlobalFactory().GetChatRepository()
	if _, err := chatRepo.GetByIDForParticipant(chatID, usercontext.GetUserID(c)); err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "chat not found")
		}
		return internalError(c)
	}

	messages, err := chatRepo.ListMessages(chatID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(messages)
}

// HandleCreateMessage posts a message into a chat the caller participates in
func HandleCreateMessage(c *fiber.Ctx) error {
	chatID, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req messageCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return badRequest(c, "text is required")
	}

	chatRepo := repository.GetGlobalFactory().GetChatRepository()
	if _, err := chatRepo.GetByIDForParticipant(chatID, usercontext.GetUserID(c)); err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "chat not found")
		}
		return internalError(c)
	}

	msg := &models.Message{
		ChatID:   chatID,
		SenderID: usercontext.GetUserID(c),
		Text:     req.Text,
	}
	if err := chatRepo.CreateMessage(msg); err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}
