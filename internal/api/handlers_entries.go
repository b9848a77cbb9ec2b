package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/headlog/internal/models"
	"github.com/terraincognita07/headlog/internal/services"
)

type entryPayload struct {
	Date        string              `json:"date"`
	Pain        *int                `json:"pain"`
	Onset       string              `json:"onset"`
	Duration    string              `json:"duration"`
	Location    []string            `json:"location"`
	Triggers    []string            `json:"triggers"`
	Medications []models.Medication `json:"medications"`
	Relief      string              `json:"relief"`
	Notes       string              `json:"notes"`
}

func (payload entryPayload) toInput() services.EntryInput {
	return services.EntryInput{
		Date:        payload.Date,
		Pain:        payload.Pain,
		Onset:       payload.Onset,
		Duration:    payload.Duration,
		Location:    payload.Location,
		Triggers:    payload.Triggers,
		Medications: payload.Medications,
		Relief:      payload.Relief,
		Notes:       payload.Notes,
	}
}

func (handler *Handler) ListEntries(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(handler.entryService.ListEntries(userID))
}

func (handler *Handler) GetEntry(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entry, err := handler.entryService.FindEntry(userID, c.Params("id"))
	if err != nil {
		status, message := mapEntryError(err)
		return apiError(c, status, message)
	}
	return c.JSON(entry)
}

func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := entryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.entryService.CreateEntry(userID, payload.toInput())
	if err != nil {
		status, message := mapEntryError(err)
		return apiError(c, status, message)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateEntry(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := entryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.entryService.UpdateEntry(userID, c.Params("id"), payload.toInput())
	if err != nil {
		status, message := mapEntryError(err)
		return apiError(c, status, message)
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.entryService.DeleteEntry(userID, c.Params("id")); err != nil {
		status, message := mapEntryError(err)
		return apiError(c, status, message)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ImportEntries accepts a raw JSON array in either the current or the old
// browser-storage shape.
func (handler *Handler) ImportEntries(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	result, err := handler.entryService.ImportEntries(userID, c.Body())
	if err != nil {
		status, message := mapEntryError(err)
		return apiError(c, status, message)
	}
	return c.JSON(result)
}

func mapEntryError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrEntryNotFound):
		return fiber.StatusNotFound, "entry not found"
	case errors.Is(err, services.ErrInvalidEntryDate):
		return fiber.StatusBadRequest, "invalid date"
	case errors.Is(err, services.ErrInvalidEntryPain):
		return fiber.StatusBadRequest, "invalid pain"
	case errors.Is(err, services.ErrEntryLoadFailed):
		return fiber.StatusInternalServerError, "failed to load entries"
	case errors.Is(err, services.ErrEntryDeleteFailed):
		return fiber.StatusInternalServerError, "failed to delete entry"
	case errors.Is(err, services.ErrEntryImportInvalid):
		return fiber.StatusBadRequest, "invalid import payload"
	case errors.Is(err, services.ErrEntryImportFailed):
		return fiber.StatusInternalServerError, "failed to import entries"
	default:
		return fiber.StatusInternalServerError, "failed to save entry"
	}
}
