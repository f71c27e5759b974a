package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/nestling/internal/db"
	"github.com/terraincognita07/nestling/internal/i18n"
	"github.com/terraincognita07/nestling/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db       *gorm.DB
	location *time.Location
	i18n     *i18n.Manager
	now      func() time.Time

	repositories   *db.Repositories
	profileService *services.ProfileService
	recordService  *services.RecordService
	summaryService *services.SummaryService
	exportService  *services.ExportService
}

type profilePayload struct {
	Name        string `json:"name" form:"name"`
	DateOfBirth string `json:"date_of_birth" form:"date_of_birth"`
	BirthWeight int    `json:"birth_weight" form:"birth_weight"`
	Sex         string `json:"sex" form:"sex"`
	Picture     string `json:"picture" form:"picture"`
}

type weightPayload struct {
	Date   string `json:"date" form:"date"`
	Weight int    `json:"weight" form:"weight"`
}

type diaperPayload struct {
	Date            string `json:"date" form:"date"`
	Type            string `json:"type" form:"type"`
	PeeCount        int    `json:"pee_count" form:"pee_count"`
	PoopCount       int    `json:"poop_count" form:"poop_count"`
	PoopColor       string `json:"poop_color" form:"poop_color"`
	PoopConsistency string `json:"poop_consistency" form:"poop_consistency"`
	Notes           string `json:"notes" form:"notes"`
}

type sickSymptomPayload struct {
	Type     string `json:"type" form:"type"`
	Severity string `json:"severity" form:"severity"`
	Notes    string `json:"notes" form:"notes"`
}

type sickPayload struct {
	StartDate string               `json:"start_date" form:"start_date"`
	EndDate   string               `json:"end_date" form:"end_date"`
	Symptoms  []sickSymptomPayload `json:"symptoms"`
	Notes     string               `json:"notes" form:"notes"`
}

func NewHandler(database *gorm.DB, location *time.Location, i18nManager *i18n.Manager) (*Handler, error) {
	if location == nil {
		location = time.Local
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}

	handler := &Handler{
		db:       database,
		location: location,
		i18n:     i18nManager,
		now:      time.Now,
	}
	handler.repositories = db.NewRepositories(database)
	handler.profileService = services.NewProfileService(handler.repositories.Profiles, handler.repositories.DailyRecords)
	handler.recordService = services.NewRecordService(handler.repositories.DailyRecords)
	handler.summaryService = services.NewSummaryService(handler.repositories.DailyRecords)
	handler.exportService = services.NewExportService(handler.repositories.DailyRecords)
	return handler, nil
}
