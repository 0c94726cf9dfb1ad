package controllers

import (
	"strings"

	"github.com/adboardhq/adboard/app/models"
	"github.com/adboardhq/adboard/app/repository"
	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new user account
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := models.CreateUser(strings.TrimSpace(req.Username), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return badRequest(c, err.Error())
	}

	// The unique index on email is the only duplicate gate; a pre-check
	// would race with concurrent registrations.
	if err := repository.GetGlobalFactory().GetUserRepository().Create(user); err != nil {
		if isUniqueViolation(err) {
			return badRequest(c, "email is already registered")
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "registration successful",
		"user_id": user.ID,
	})
}

// HandleLogin verifies credentials and issues a fresh opaque token. All
// previous tokens of the user are invalidated.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByEmail(strings.TrimSpace(req.Email))
	if err != nil || !user.CheckPassword(req.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_credentials",
			"message": "email or password is incorrect",
		})
	}

	token, err := models.NewAuthToken(user.ID)
	if err != nil {
		return internalError(c)
	}
	if err := repository.GetGlobalFactory().GetAuthTokenRepository().Replace(token); err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token.Token,
	})
}
