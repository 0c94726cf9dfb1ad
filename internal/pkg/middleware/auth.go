package middleware

import (
	"strings"

	"github.com/adboardhq/adboard/app/models"
	"github.com/adboardhq/adboard/app/repository"
	"github.com/adboardhq/adboard/internal/pkg/usercontext"
	"github.com/gofiber/fiber/v2"
)

const authScheme = "Token"

// UserContextMiddleware resolves an opaque "Token <hex>" Authorization header
// to a user by direct table lookup and attaches the user context. Requests
// without a valid token pass through anonymously; protected routes reject
// them in RequireAuth.
func UserContextMiddleware(c *fiber.Ctx) error {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return c.Next()
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != authScheme {
		return c.Next()
	}

	tokenRepo := repository.GetGlobalFactory().GetAuthTokenRepository()
	token, err := tokenRepo.GetByToken(parts[1])
	if err != nil || token.User == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "token is invalid",
		})
	}

	usercontext.SetUserContext(c, usercontext.UserContext{
		UserID:     token.UserID,
		Username:   token.User.Username,
		IsLoggedIn: true,
		IsAdmin:    token.User.Role == models.ROLE_ADMIN,
	})
	return c.Next()
}

// RequireAuth ensures an authenticated user and returns JSON 401 otherwise
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}

// RequireAdmin ensures a logged-in admin
func RequireAdmin(c *fiber.Ctx) error {
	ctx := usercontext.GetUserContext(c)
	if !ctx.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	if !ctx.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "admin role required",
		})
	}
	return c.Next()
}
