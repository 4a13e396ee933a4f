package routes

import (
	"github.com/earnkit/rewards_backend/handlers"
	"github.com/earnkit/rewards_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func CoinRoutes(app *fiber.App) {
	coins := app.Group("/api/coins")

	// Trust for the credit path (token or package) is decided in the
	// handler, so no Protected() here.
	coins.Post("/update", handlers.UpdateCoins)

	coins.Get("/:uid", middleware.Protected(), middleware.SelfOnly(), handlers.GetBalance)
}
