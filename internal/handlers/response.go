package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var (
	log        = logrus.New()
	production bool
)

// InitHandlers configures response behavior: in production, internal error
// details are not echoed back to clients.
func InitHandlers(logger *logrus.Logger, isProduction bool) {
	if logger != nil {
		log = logger
	}
	production = isProduction
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func respondValidation(c *fiber.Ctx, errs []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}

func respondInternal(c *fiber.Ctx, message string, err error) error {
	log.WithError(err).Error(message)
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if !production && err != nil {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
