package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nestling/internal/services"
)

func (handler *Handler) ListProfiles(c *fiber.Ctx) error {
	profiles, err := handler.profileService.ListProfiles()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profiles")
	}
	return c.JSON(profiles)
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (handler *Handler) CreateProfile(c *fiber.Ctx) error {
	input, err := handler.parseProfilePayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	profile, err := handler.profileService.CreateProfile(input, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	input, err := handler.parseProfilePayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	profile, err := handler.profileService.UpdateProfile(c.Params("id"), input, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(profile)
}

func (handler *Handler) DeleteProfile(c *fiber.Ctx) error {
	if err := handler.profileService.DeleteProfile(c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) parseProfilePayload(c *fiber.Ctx) (services.ProfileInput, error) {
	var payload profilePayload
	if err := c.BodyParser(&payload); err != nil {
		return services.ProfileInput{}, errInvalidBody
	}

	dateOfBirth, err := parseDayParam(payload.DateOfBirth, handler.location)
	if err != nil {
		return services.ProfileInput{}, errInvalidDate
	}

	return services.ProfileInput{
		Name:        payload.Name,
		DateOfBirth: dateOfBirth,
		BirthWeight: payload.BirthWeight,
		Sex:         payload.Sex,
		Picture:     payload.Picture,
	}, nil
}
