package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/headlog/internal/services"
)

func parseExportRange(c *fiber.Ctx) (string, string, string) {
	from, to, err := services.ParseExportRange(c.Query("from"), c.Query("to"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExportFromDateInvalid):
			return "", "", "invalid from date"
		case errors.Is(err, services.ErrExportToDateInvalid):
			return "", "", "invalid to date"
		default:
			return "", "", "invalid range"
		}
	}
	return from, to, ""
}

func (handler *Handler) exportUserAndRange(c *fiber.Ctx) (uint, string, string, int, string) {
	userID, ok := requireUser(c)
	if !ok {
		return 0, "", "", fiber.StatusUnauthorized, "unauthorized"
	}

	from, to, rangeError := parseExportRange(c)
	if rangeError != "" {
		return 0, "", "", fiber.StatusBadRequest, rangeError
	}
	return userID, from, to, 0, ""
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("headlog-export-%s.%s", now.Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
