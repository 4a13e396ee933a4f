package handlers

import (
	"fmt"

	"github.com/earnkit/rewards_backend/services"
	"github.com/earnkit/rewards_backend/utils"
	"github.com/gofiber/fiber/v2"
)

type AddPackageRequest struct {
	PackageName string `json:"packageName" validate:"required"`
	IsActive    *bool  `json:"isActive" validate:"required"`
}

type RemovePackageRequest struct {
	PackageName string `json:"packageName" validate:"required"`
}

// AddPackage upserts an allow-list entry for a partner application.
func AddPackage(c *fiber.Ctx) error {
	var req AddPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, utils.ValidationError("VALIDATION_ERROR", "Cannot parse JSON"))
	}
	if err := validate.Struct(req); err != nil {
		return utils.Fail(c, utils.ValidationError("MISSING_REQUIRED_FIELDS", "packageName and isActive are required"))
	}

	pkg, err := services.SetPackage(req.PackageName, *req.IsActive)
	if err != nil {
		return utils.Fail(c, err)
	}

	state := "deactivated"
	if pkg.IsActive {
		state = "activated"
	}
	return utils.Success(c, fiber.Map{
		"packageName": req.PackageName,
		"isActive":    pkg.IsActive,
		"message":     fmt.Sprintf("Package %s %s successfully", req.PackageName, state),
	})
}

// RemovePackage deletes an allow-list entry.
func RemovePackage(c *fiber.Ctx) error {
	var req RemovePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, utils.ValidationError("VALIDATION_ERROR", "Cannot parse JSON"))
	}
	if req.PackageName == "" {
		return utils.Fail(c, utils.ValidationError("MISSING_PACKAGE_NAME", "packageName is required"))
	}

	if err := services.RemovePackage(req.PackageName); err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.Map{
		"packageName": req.PackageName,
		"message":     fmt.Sprintf("Package %s removed successfully", req.PackageName),
	})
}

// ListPackages returns the whole allow-list keyed by sanitized key.
func ListPackages(c *fiber.Ctx) error {
	packages, err := services.ListPackages()
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, fiber.Map{
		"packages": packages,
		"total":    len(packages),
	})
}
