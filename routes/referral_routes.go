package routes

import (
	"github.com/earnkit/rewards_backend/handlers"
	"github.com/earnkit/rewards_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReferralRoutes(app *fiber.App) {
	referral := app.Group("/api/referral", middleware.Protected())
	referral.Post("/generate", handlers.GenerateReferralLink)
	referral.Post("/update", handlers.UpdateReferral)

	// SelfOnly reads the :uid param, so it must sit on the route itself.
	referrals := app.Group("/api/referrals", middleware.Protected())
	referrals.Get("/:uid", middleware.SelfOnly(), handlers.ListReferrals)

	// Public share-link redirect, outside /api.
	app.Get("/r/:referralId", handlers.ReferralRedirect)
}
