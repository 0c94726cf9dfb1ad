package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adboardhq/adboard/internal/pkg/usercontext"
)

func newAuthTestApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(usercontext.GetUserContext(c))
	})
	app.Get("/probe", chain...)
	return app
}

func TestUserContextMiddlewarePassesThroughAnonymously(t *testing.T) {
	app := newAuthTestApp(UserContextMiddleware)

	for _, header := range []string{"", "Bearer abc", "Token", "Token a b"} {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		if header != "" {
			req.Header.Set(fiber.HeaderAuthorization, header)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "header %q", header)
	}
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	app := newAuthTestApp(RequireAuth)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	asUser := func(ctx usercontext.UserContext) fiber.Handler {
		return func(c *fiber.Ctx) error {
			usercontext.SetUserContext(c, ctx)
			return c.Next()
		}
	}

	app := newAuthTestApp(asUser(usercontext.UserContext{UserID: 1, IsLoggedIn: true}), RequireAdmin)
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	app = newAuthTestApp(asUser(usercontext.UserContext{UserID: 1, IsLoggedIn: true, IsAdmin: true}), RequireAdmin)
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
