package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/headlog/internal/services"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	userID, from, to, status, message := handler.exportUserAndRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}
	now := time.Now().In(handler.location)

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	if err := writer.WriteAll(handler.exportService.BuildCSVRows(userID, from, to)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(now, "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	userID, from, to, status, message := handler.exportUserAndRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}
	return c.JSON(handler.exportService.BuildSummary(userID, from, to))
}

// ExportJSON writes a plain array of entries so the file can be fed back to
// the import endpoint.
func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	userID, from, to, status, message := handler.exportUserAndRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}
	now := time.Now().In(handler.location)

	serialized, err := json.MarshalIndent(handler.exportService.LoadEntriesForRange(userID, from, to), "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(now, "json"))
	return c.Send(serialized)
}
