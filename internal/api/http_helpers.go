package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/nestling/internal/services"
)

const dayParamLayout = "2006-01-02"

var (
	errInvalidBody            = errors.New("invalid request body")
	errInvalidDate            = errors.New("invalid date, expected YYYY-MM-DD")
	errInvalidDiaperType      = errors.New("diaper type must be pee, poop or both")
	errInvalidPoopColor       = errors.New("unknown poop color")
	errInvalidPoopConsistency = errors.New("unknown poop consistency")
	errInvalidSymptomType     = errors.New("unknown symptom type")
	errInvalidSeverity        = errors.New("severity must be mild, moderate or severe")
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func serviceError(c *fiber.Ctx, err error) error {
	return apiError(c, statusForServiceError(err), err.Error())
}

func statusForServiceError(err error) int {
	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrProfileNameRequired),
		errors.Is(err, services.ErrDateOfBirthInFuture),
		errors.Is(err, services.ErrInvalidBirthWeight),
		errors.Is(err, services.ErrInvalidSex),
		errors.Is(err, services.ErrInvalidWeight),
		errors.Is(err, services.ErrInvalidAge),
		errors.Is(err, services.ErrInvalidDiaperCounts),
		errors.Is(err, services.ErrInvalidSickRange),
		errors.Is(err, services.ErrDiaperDateImmutable):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayParamLayout, raw, location)
}

func parseOptionalDayParam(raw string, location *time.Location) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	day, err := parseDayParam(raw, location)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
