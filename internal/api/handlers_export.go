package api

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nestling/internal/services"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	from, to, err := handler.parseExportRange(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidDate.Error())
	}

	rows, err := handler.exportService.BuildRows(profile.ID, from, to, handler.location)
	if err != nil {
		return serviceError(c, err)
	}

	var buffer bytes.Buffer
	if err := services.WriteExportCSV(&buffer, rows); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	filename := fmt.Sprintf("%s-records-%s.csv", profile.ID, handler.now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buffer.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	profile, err := handler.profileService.GetProfile(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	from, to, err := handler.parseExportRange(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidDate.Error())
	}

	bundle, err := handler.exportService.BuildBundle(profile, from, to, handler.now(), handler.location)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(bundle)
}

func (handler *Handler) parseExportRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	from, err := parseOptionalDayParam(c.Query("from"), handler.location)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseOptionalDayParam(c.Query("to"), handler.location)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
