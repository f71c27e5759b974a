package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/nestling/internal/models"
)

const exportDateLayout = "2006-01-02"

var ExportCSVHeaders = []string{
	"Date",
	"Weight (g)",
	"Pee count",
	"Poop count",
	"Diaper changes",
	"Sick",
	"Symptoms",
	"Notes",
}

type ExportRecordReader interface {
	ListByProfileRange(profileID string, fromStart *time.Time, toEnd *time.Time) ([]models.DailyRecord, error)
}

type ExportService struct {
	records ExportRecordReader
}

func NewExportService(records ExportRecordReader) *ExportService {
	return &ExportService{records: records}
}

type ExportRow struct {
	Date          string   `json:"date"`
	WeightGrams   int      `json:"weight_grams,omitempty"`
	PeeCount      int      `json:"pee_count"`
	PoopCount     int      `json:"poop_count"`
	DiaperChanges int      `json:"diaper_changes"`
	Sick          bool     `json:"sick"`
	Symptoms      []string `json:"symptoms,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

type ExportBundle struct {
	Profile     models.Profile `json:"profile"`
	Records     []ExportRow    `json:"records"`
	GeneratedAt time.Time      `json:"generated_at"`
}

func (service *ExportService) BuildRows(profileID string, from *time.Time, to *time.Time, location *time.Location) ([]ExportRow, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from, location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, location)
		toEnd = &end
	}

	records, err := service.records.ListByProfileRange(profileID, fromStart, toEnd)
	if err != nil {
		return nil, ErrRecordsLoadFailed
	}

	rows := make([]ExportRow, 0, len(records))
	for _, record := range records {
		row := ExportRow{
			Date:          record.Date.Format(exportDateLayout),
			PeeCount:      record.PeeCount,
			PoopCount:     record.PoopCount,
			DiaperChanges: len(record.DiaperEntries),
			Sick:          SickOnDay(records, record.Date),
			Symptoms:      symptomTypesOnDay(records, record.Date),
			Notes:         collectNotes(record),
		}
		if record.Weight != nil {
			row.WeightGrams = record.Weight.Weight
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (service *ExportService) BuildBundle(profile models.Profile, from *time.Time, to *time.Time, now time.Time, location *time.Location) (ExportBundle, error) {
	rows, err := service.BuildRows(profile.ID, from, to, location)
	if err != nil {
		return ExportBundle{}, err
	}
	return ExportBundle{
		Profile:     profile,
		Records:     rows,
		GeneratedAt: now,
	}, nil
}

func WriteExportCSV(writer io.Writer, rows []ExportRow) error {
	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.Write(ExportCSVHeaders); err != nil {
		return err
	}
	for _, row := range rows {
		weight := ""
		if row.WeightGrams > 0 {
			weight = strconv.Itoa(row.WeightGrams)
		}
		record := []string{
			row.Date,
			weight,
			strconv.Itoa(row.PeeCount),
			strconv.Itoa(row.PoopCount),
			strconv.Itoa(row.DiaperChanges),
			strconv.FormatBool(row.Sick),
			strings.Join(row.Symptoms, "; "),
			row.Notes,
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func symptomTypesOnDay(records []models.DailyRecord, day time.Time) []string {
	seen := make(map[string]bool)
	types := make([]string, 0)
	for _, entry := range ActiveSickEntries(records, day) {
		for _, symptom := range entry.Symptoms {
			if seen[symptom.Type] {
				continue
			}
			seen[symptom.Type] = true
			types = append(types, symptom.Type)
		}
	}
	return types
}

func collectNotes(record models.DailyRecord) string {
	notes := make([]string, 0)
	for _, entry := range record.DiaperEntries {
		if strings.TrimSpace(entry.Notes) != "" {
			notes = append(notes, strings.TrimSpace(entry.Notes))
		}
	}
	for _, entry := range record.SickEntries {
		if strings.TrimSpace(entry.Notes) != "" {
			notes = append(notes, strings.TrimSpace(entry.Notes))
		}
	}
	return strings.Join(notes, "; ")
}
