package router

import (
	"github.com/adboardhq/adboard/app/controllers"
	"github.com/adboardhq/adboard/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	// UserContext middleware resolves tokens globally; routes decide whether
	// a login is required
	app.Use(middleware.UserContextMiddleware)

	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")

	// auth
	v1.Post("/auth/register", controllers.HandleRegister)
	v1.Post("/auth/login", controllers.HandleLogin)

	// profile
	v1.Get("/profile", middleware.RequireAuth, controllers.HandleGetProfile)
	v1.Patch("/profile", middleware.RequireAuth, controllers.HandleUpdateProfile)

	// plans
	v1.Get("/plans", controllers.HandleListPlans)
	v1.Get("/plans/:id", controllers.HandleGetPlan)

	// categories
	v1.Get("/categories", controllers.HandleListCategories)
	v1.Get("/categories/:id", controllers.HandleGetCategory)
	v1.Patch("/categories/:id", middleware.RequireAdmin, controllers.HandleUpdateCategory)
	v1.Delete("/categories/:id", middleware.RequireAdmin, controllers.HandleDeleteCategory)

	// announcements
	v1.Get("/announcements", controllers.HandleListAnnouncements)
	v1.Post("/announcements", middleware.RequireAuth, controllers.HandleCreateAnnouncement)
	v1.Get("/announcements/:id", controllers.HandleGetAnnouncement)
	v1.Patch("/announcements/:id", middleware.RequireAuth, controllers.HandleUpdateAnnouncement)
	v1.Delete("/announcements/:id", middleware.RequireAuth, controllers.HandleDeleteAnnouncement)
	v1.Get("/announcements/:id/recommendations", controllers.HandleRecommendations)

	// comments
	v1.Get("/announcements/:id/comments", controllers.HandleListComments)
	v1.Post("/announcements/:id/comments", middleware.RequireAuth, controllers.HandleCreateComment)

	// search
	v1.Get("/search", controllers.HandleGlobalSearch)

	// payments
	v1.Post("/payments/create", middleware.RequireAuth, controllers.HandleCreatePayment)
	v1.Get("/payments/status/:payment_id", middleware.RequireAuth, controllers.HandleCheckPaymentStatus)

	// favorites
	v1.Get("/favorites", middleware.RequireAuth, controllers.HandleListFavorites)
	v1.Post("/favorites", middleware.RequireAuth, controllers.HandleCreateFavorite)
	v1.Delete("/favorites/:id", middleware.RequireAuth, controllers.HandleDeleteFavorite)

	// news and banners
	v1.Get("/news", controllers.HandleListNews)
	v1.Get("/banners", controllers.HandleListBanners)

	// chats
	v1.Post("/chats", middleware.RequireAuth, controllers.HandleCreateChat)
	v1.Get("/chats", middleware.RequireAuth, controllers.HandleListChats)
	v1.Get("/chats/:id/messages", middleware.RequireAuth, controllers.HandleListMessages)
	v1.Post("/chats/:id/messages", middleware.RequireAuth, controllers.HandleCreateMessage)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
