package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/nestling/internal/models"
	"github.com/terraincognita07/nestling/internal/services"
)

func (handler *Handler) GetWeights(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	records, err := handler.recordService.AllRecords(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(services.WeightEntries(records))
}

// UpsertWeight writes the single weight entry for the given day; a second
// weight on the same day overwrites the first.
func (handler *Handler) UpsertWeight(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	var payload weightPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidBody.Error())
	}

	date, err := parseDayParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidDate.Error())
	}

	entry := models.WeightEntry{
		ID:        uuid.NewString(),
		Date:      date,
		Weight:    payload.Weight,
		CreatedAt: handler.now(),
	}

	records, err := handler.recordService.UpsertWeight(profile.ID, entry)
	if err != nil {
		return serviceError(c, err)
	}

	record, _ := services.FindRecordByDate(records, date)
	return c.Status(fiber.StatusCreated).JSON(record)
}
