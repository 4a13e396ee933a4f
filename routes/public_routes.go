package routes

import (
	"github.com/earnkit/rewards_backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	reviews := app.Group("/api/reviews")
	reviews.Get("/random", handlers.GetRandomReview)
	reviews.Get("", handlers.ListReviews)

	collaboration := app.Group("/api/collaboration")
	collaboration.Post("/add", handlers.AddCollaboration)
}
