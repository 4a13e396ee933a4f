package utils

import "github.com/gofiber/fiber/v2"

// APIError is a typed failure carried from the core services to the HTTP
// boundary: a fixed status class plus a stable machine-readable code.
// Internal error details never ride on it; they are logged where they occur.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}

func NewAPIError(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

func ValidationError(code, message string) *APIError {
	return NewAPIError(fiber.StatusBadRequest, code, message)
}

func Unauthorized(code, message string) *APIError {
	return NewAPIError(fiber.StatusUnauthorized, code, message)
}

func Forbidden(code, message string) *APIError {
	return NewAPIError(fiber.StatusForbidden, code, message)
}

func NotFound(code, message string) *APIError {
	return NewAPIError(fiber.StatusNotFound, code, message)
}

func Conflict(code, message string) *APIError {
	return NewAPIError(fiber.StatusConflict, code, message)
}

func Internal(message string) *APIError {
	return NewAPIError(fiber.StatusInternalServerError, "INTERNAL_ERROR", message)
}
