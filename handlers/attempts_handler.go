package handlers

import (
	"github.com/earnkit/rewards_backend/models"
	"github.com/earnkit/rewards_backend/services"
	"github.com/earnkit/rewards_backend/utils"
	"github.com/gofiber/fiber/v2"
)

type GetDayConfigRequest struct {
	Day int `json:"day"`
}

type SetAttemptsConfigRequest struct {
	DayConfigs    []models.DayConfig `json:"dayConfigs"`
	DefaultConfig *models.DayConfig  `json:"defaultConfig"`
}

// GetDayConfig returns the reward envelope for one day of the schedule.
// POST so the admin key can travel in the body.
func GetDayConfig(c *fiber.Ctx) error {
	var req GetDayConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, utils.ValidationError("VALIDATION_ERROR", "Cannot parse JSON"))
	}
	if req.Day < 1 {
		return utils.Fail(c, utils.ValidationError("INVALID_DAY", "Day must be a positive number"))
	}

	cfg, err := services.GetDayConfig(req.Day)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.Map{
		"day":      req.Day,
		"attempts": cfg.Attempts,
		"minCoins": cfg.MinCoins,
		"maxCoins": cfg.MaxCoins,
	})
}

// SetAttemptsConfig replaces the whole schedule.
func SetAttemptsConfig(c *fiber.Ctx) error {
	var req SetAttemptsConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, utils.ValidationError("VALIDATION_ERROR", "Cannot parse JSON"))
	}
	if req.DayConfigs == nil {
		return utils.Fail(c, utils.ValidationError("INVALID_DAY_CONFIGS", "dayConfigs must be an array"))
	}
	if req.DefaultConfig == nil {
		return utils.Fail(c, utils.ValidationError("INVALID_DEFAULT_CONFIG", "defaultConfig must have attempts, minCoins, and maxCoins"))
	}

	if err := services.SetConfig(req.DayConfigs, *req.DefaultConfig); err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.Map{
		"message":       "Configuration updated successfully",
		"dayConfigs":    req.DayConfigs,
		"defaultConfig": req.DefaultConfig,
	})
}

// GetAttemptsConfig returns the stored schedule, or the defaults when none
// has been configured.
func GetAttemptsConfig(c *fiber.Ctx) error {
	cfg, err := services.GetConfig()
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.Map{
		"dayConfigs":    cfg.DayConfigs,
		"defaultConfig": cfg.Default(),
		"lastUpdated":   cfg.LastUpdated,
	})
}
