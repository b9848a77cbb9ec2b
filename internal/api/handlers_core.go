package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/headlog/internal/models"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	sqlDB, err := handler.db.DB()
	if err != nil || sqlDB.PingContext(c.UserContext()) != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) GetOptions(c *fiber.Ctx) error {
	return c.JSON(models.DefaultEntryOptions())
}
