package routes

import (
	"github.com/earnkit/rewards_backend/handlers"
	"github.com/earnkit/rewards_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func TransactionRoutes(app *fiber.App) {
	transactions := app.Group("/api/transactions", middleware.Protected())
	transactions.Get("/:uid", middleware.SelfOnly(), handlers.GetTransactionHistory)
}
