package main

import (
	"time"

	config "github.com/earnkit/rewards_backend/configs"
	"github.com/earnkit/rewards_backend/database"
	"github.com/earnkit/rewards_backend/jobs"
	"github.com/earnkit/rewards_backend/routes"
	"github.com/earnkit/rewards_backend/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

func main() {
	database.ConnectDB()
	database.Migrate()

	c := cron.New()
	c.AddFunc("0 3 * * *", jobs.ReconcileLedger)
	c.Start()
	log.Info("ledger reconciliation job scheduled")

	app := fiber.New(fiber.Config{
		AppName:      "Rewards API",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Safety net; handlers normally render their own envelope.
			return utils.Fail(c, err)
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.ConfigOr("CORS_ORIGIN", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	routes.CoinRoutes(app)
	routes.TransactionRoutes(app)
	routes.ReferralRoutes(app)
	routes.AdminRoutes(app)
	routes.PublicRoutes(app)

	addr := ":" + config.ConfigOr("PORT", "3000")
	log.Infof("server listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}
