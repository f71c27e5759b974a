package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/nestling/internal/models"
	"github.com/terraincognita07/nestling/internal/services"
)

func (handler *Handler) GetSickEntries(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	records, err := handler.recordService.AllRecords(profile.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(services.SickEntries(records))
}

func (handler *Handler) AddSickEntry(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	entry, err := handler.parseSickPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = handler.now()
	for i := range entry.Symptoms {
		entry.Symptoms[i].ID = uuid.NewString()
	}

	records, err := handler.recordService.AddSick(profile.ID, entry)
	if err != nil {
		return serviceError(c, err)
	}

	record, _ := services.FindRecordByDate(records, entry.StartDate)
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) UpdateSickEntry(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	entry, err := handler.parseSickPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	entry.ID = c.Params("entryID")
	for i := range entry.Symptoms {
		if entry.Symptoms[i].ID == "" {
			entry.Symptoms[i].ID = uuid.NewString()
		}
	}

	records, err := handler.recordService.UpdateSick(profile.ID, entry)
	if err != nil {
		return serviceError(c, err)
	}

	if stored, found := services.FindSickEntry(records, entry.ID); found {
		record, _ := services.FindRecordByDate(records, stored.StartDate)
		return c.JSON(record)
	}
	return c.JSON(fiber.Map{"updated": false})
}

func (handler *Handler) RemoveSickEntry(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	if _, err := handler.recordService.RemoveSick(profile.ID, c.Params("entryID")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) parseSickPayload(c *fiber.Ctx) (models.SickEntry, error) {
	var payload sickPayload
	if err := c.BodyParser(&payload); err != nil {
		return models.SickEntry{}, errInvalidBody
	}

	startDate, err := parseDayParam(payload.StartDate, handler.location)
	if err != nil {
		return models.SickEntry{}, errInvalidDate
	}

	// An open-ended illness is recorded as a single-day range until the
	// end date is known.
	endDate := startDate
	if payload.EndDate != "" {
		endDate, err = parseDayParam(payload.EndDate, handler.location)
		if err != nil {
			return models.SickEntry{}, errInvalidDate
		}
	}

	symptoms := make([]models.SickSymptom, 0, len(payload.Symptoms))
	for _, symptom := range payload.Symptoms {
		if !models.IsValidSymptomType(symptom.Type) {
			return models.SickEntry{}, errInvalidSymptomType
		}
		if !models.IsValidSeverity(symptom.Severity) {
			return models.SickEntry{}, errInvalidSeverity
		}
		symptoms = append(symptoms, models.SickSymptom{
			Type:     symptom.Type,
			Severity: symptom.Severity,
			Notes:    symptom.Notes,
		})
	}

	return models.SickEntry{
		StartDate: startDate,
		EndDate:   endDate,
		Symptoms:  symptoms,
		Notes:     payload.Notes,
	}, nil
}
