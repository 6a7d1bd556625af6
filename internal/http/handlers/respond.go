package handlers

import "github.com/gofiber/fiber/v2"

// jsonError is the single error surface: {"error": "..."} with a status.
// Internal failures must go through internalError so details stay in logs.
func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func internalError(c *fiber.Ctx) error {
	return jsonError(c, fiber.StatusInternalServerError, "internal server error")
}
