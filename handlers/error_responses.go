package handlers

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// handleError logs the failure and sends a generic JSON error response
func handleError(c *fiber.Ctx, err error) error {
	log.Errorf("handler error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

// sendValidationError sends a validation error for a bad request parameter
func sendValidationError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error": message,
	})
}
