package handlers

import (
	"fmt"
	"strings"

	config "github.com/earnkit/rewards_backend/configs"
	"github.com/earnkit/rewards_backend/services"
	"github.com/earnkit/rewards_backend/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

var validate = validator.New()

type UpdateCoinsRequest struct {
	UID         string `json:"uid" validate:"required"`
	Coins       *int64 `json:"coins" validate:"required"`
	AppName     string `json:"appName" validate:"required"`
	Type        string `json:"type" validate:"omitempty,oneof=reward daily referral referralBonus"`
	PackageName string `json:"packageName"`
}

// UpdateCoins credits coins to a user. Trust is established by exactly one
// of two paths: a bearer token from the identity provider, or a registered
// and active partner package.
func UpdateCoins(c *fiber.Ctx) error {
	var req UpdateCoinsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, utils.ValidationError("VALIDATION_ERROR", "Cannot parse JSON"))
	}
	if err := validate.Struct(req); err != nil {
		return utils.Fail(c, utils.ValidationError("MISSING_REQUIRED_FIELDS", "uid, coins, and appName are required"))
	}
	if req.Type == "" {
		req.Type = "reward"
	}

	if err := authorizeCreditCall(c, req.PackageName); err != nil {
		return utils.Fail(c, err)
	}

	result, err := services.CreditCoins(req.UID, *req.Coins, req.AppName, req.Type)
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, result)
}

// GetBalance returns the caller's own balance fields.
func GetBalance(c *fiber.Ctx) error {
	result, err := services.GetBalance(c.Params("uid"))
	if err != nil {
		return utils.Fail(c, err)
	}
	return utils.Success(c, result)
}

// authorizeCreditCall accepts a bearer token or an allow-listed package.
// The route is not behind Protected() because the package path carries no
// token at all.
func authorizeCreditCall(c *fiber.Ctx, packageName string) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		raw := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(config.Config("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			return utils.Unauthorized("INVALID_TOKEN", "Invalid or expired token")
		}
		return nil
	}
	if packageName != "" {
		return services.VerifyPackage(packageName)
	}
	return utils.Unauthorized("AUTHENTICATION_REQUIRED", "Either a bearer token or a valid packageName is required")
}
