package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	profiles := api.Group("/profiles")
	profiles.Get("", handler.ListProfiles)
	profiles.Post("", handler.CreateProfile)
	profiles.Get("/:id", handler.GetProfile)
	profiles.Put("/:id", handler.UpdateProfile)
	profiles.Delete("/:id", handler.DeleteProfile)

	profiles.Get("/:id/records", handler.GetRecords)
	profiles.Get("/:id/summary", handler.GetSummary)

	profiles.Get("/:id/weights", handler.GetWeights)
	profiles.Post("/:id/weights", handler.UpsertWeight)

	profiles.Get("/:id/diapers", handler.GetDiapers)
	profiles.Post("/:id/diapers", handler.AddDiaper)
	profiles.Put("/:id/diapers/:entryID", handler.UpdateDiaper)
	profiles.Delete("/:id/diapers/:entryID", handler.RemoveDiaper)

	profiles.Get("/:id/sick", handler.GetSickEntries)
	profiles.Post("/:id/sick", handler.AddSickEntry)
	profiles.Put("/:id/sick/:entryID", handler.UpdateSickEntry)
	profiles.Delete("/:id/sick/:entryID", handler.RemoveSickEntry)

	profiles.Get("/:id/export/csv", handler.ExportCSV)
	profiles.Get("/:id/export/json", handler.ExportJSON)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
