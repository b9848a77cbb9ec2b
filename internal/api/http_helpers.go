package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseBoolValue(raw string) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return strings.EqualFold(strings.TrimSpace(raw), "on")
	}
	return parsed
}

func requireUser(c *fiber.Ctx) (uint, bool) {
	user, ok := currentUser(c)
	if !ok || user == nil {
		return 0, false
	}
	return user.ID, true
}
