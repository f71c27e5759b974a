package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/nestling/internal/models"
	"github.com/terraincognita07/nestling/internal/services"
)

func (handler *Handler) GetDiapers(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	records, err := handler.recordService.AllRecords(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(services.DiaperEntries(records))
}

func (handler *Handler) AddDiaper(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	entry, err := handler.parseDiaperPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if entry.Date.IsZero() {
		return apiError(c, fiber.StatusBadRequest, errInvalidDate.Error())
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = handler.now()

	records, err := handler.recordService.AddDiaper(profile.ID, entry)
	if err != nil {
		return serviceError(c, err)
	}

	record, _ := services.FindRecordByDate(records, entry.Date)
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) UpdateDiaper(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	entry, err := handler.parseDiaperPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	entry.ID = c.Params("entryID")

	records, err := handler.recordService.UpdateDiaper(profile.ID, entry)
	if err != nil {
		return serviceError(c, err)
	}

	if stored, found := services.FindDiaperEntry(records, entry.ID); found {
		record, _ := services.FindRecordByDate(records, stored.Date)
		return c.JSON(record)
	}
	return c.JSON(fiber.Map{"updated": false})
}

func (handler *Handler) RemoveDiaper(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	if _, err := handler.recordService.RemoveDiaper(profile.ID, c.Params("entryID")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) parseDiaperPayload(c *fiber.Ctx) (models.DiaperEntry, error) {
	var payload diaperPayload
	if err := c.BodyParser(&payload); err != nil {
		return models.DiaperEntry{}, errInvalidBody
	}

	if !models.IsValidDiaperType(payload.Type) {
		return models.DiaperEntry{}, errInvalidDiaperType
	}
	if payload.PoopColor != "" && !models.IsValidPoopColor(payload.PoopColor) {
		return models.DiaperEntry{}, errInvalidPoopColor
	}
	if payload.PoopConsistency != "" && !models.IsValidPoopConsistency(payload.PoopConsistency) {
		return models.DiaperEntry{}, errInvalidPoopConsistency
	}

	entry := models.DiaperEntry{
		Type:            payload.Type,
		PeeCount:        payload.PeeCount,
		PoopCount:       payload.PoopCount,
		PoopColor:       payload.PoopColor,
		PoopConsistency: payload.PoopConsistency,
		Notes:           payload.Notes,
	}
	if payload.Date != "" {
		date, err := parseDayParam(payload.Date, handler.location)
		if err != nil {
			return models.DiaperEntry{}, errInvalidDate
		}
		entry.Date = date
	}
	return entry, nil
}
