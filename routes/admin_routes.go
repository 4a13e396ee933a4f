package routes

import (
	"github.com/earnkit/rewards_backend/handlers"
	"github.com/earnkit/rewards_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.AdminKeyRequired())

	packages := admin.Group("/packages")
	packages.Post("/add", handlers.AddPackage)
	packages.Post("/remove", handlers.RemovePackage)
	packages.Get("", handlers.ListPackages)

	admin.Get("/collaboration/export", handlers.ExportCollaborations)

	attempts := app.Group("/api/attempts", middleware.AdminKeyRequired())
	attempts.Post("", handlers.GetDayConfig)
	attempts.Post("/config", handlers.SetAttemptsConfig)
	attempts.Post("/config/get", handlers.GetAttemptsConfig)
}
