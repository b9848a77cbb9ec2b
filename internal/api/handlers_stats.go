package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetStats(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(handler.entryService.BuildStats(userID))
}
