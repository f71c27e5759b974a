package api

import (
	"github.com/gofiber/fiber/v2"
)

// GetRecords returns the profile's daily records, optionally limited by the
// from and to query parameters (both inclusive, YYYY-MM-DD).
func (handler *Handler) GetRecords(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	from, err := parseOptionalDayParam(c.Query("from"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidDate.Error())
	}
	to, err := parseOptionalDayParam(c.Query("to"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidDate.Error())
	}

	records, err := handler.recordService.ListRecords(profile.ID, from, to, handler.location)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(records)
}
