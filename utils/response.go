package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Success writes the {success:true, data:...} envelope.
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// Fail writes the {success:false, error:{code,message}} envelope. Anything
// that is not an APIError is treated as an internal failure: logged in full,
// surfaced as a generic 500.
func Fail(c *fiber.Ctx, err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		log.Errorf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		apiErr = Internal("An unexpected error occurred")
	}
	return c.Status(apiErr.Status).JSON(fiber.Map{
		"success": false,
		"error":   apiErr,
	})
}
