package middleware

import (
	"crypto/subtle"

	config "github.com/earnkit/rewards_backend/configs"
	"github.com/earnkit/rewards_backend/utils"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

// Protected validates the bearer token issued by the identity provider.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return utils.Fail(c, utils.Unauthorized("MISSING_TOKEN", "Authorization token is required"))
	}
	return utils.Fail(c, utils.Unauthorized("INVALID_TOKEN", "Invalid or expired token"))
}

// AuthenticatedUID extracts the stable user id from the verified token.
// Only valid behind Protected().
func AuthenticatedUID(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	uid, _ := claims["uid"].(string)
	return uid
}

// SelfOnly restricts a :uid route to the authenticated user's own data.
func SelfOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requested := c.Params("uid")
		if requested != "" && requested != AuthenticatedUID(c) {
			return utils.Fail(c, utils.Forbidden("INSUFFICIENT_PERMISSIONS", "Cannot access other user data"))
		}
		return c.Next()
	}
}

type adminKeyBody struct {
	AdminKey      string `json:"adminKey"`
	AdminKeySnake string `json:"admin_key"`
}

// AdminKeyRequired gates admin endpoints on the shared admin secret,
// accepted in the body or query string and compared in constant time.
func AdminKeyRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body adminKeyBody
		if len(c.Body()) > 0 {
			_ = c.BodyParser(&body)
		}
		key := body.AdminKey
		if key == "" {
			key = body.AdminKeySnake
		}
		if key == "" {
			key = c.Query("adminKey")
		}
		if key == "" {
			return utils.Fail(c, utils.Unauthorized("MISSING_ADMIN_KEY", "Admin key is required"))
		}

		secret := config.Config("ADMIN_SECRET_KEY")
		if secret == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			return utils.Fail(c, utils.Forbidden("INVALID_ADMIN_KEY", "Invalid admin key"))
		}
		return c.Next()
	}
}
