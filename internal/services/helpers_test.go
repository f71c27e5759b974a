package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/nestling/internal/models"
)

func mustParseDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

func makeWeight(t *testing.T, id string, day string, grams int) models.WeightEntry {
	t.Helper()
	return models.WeightEntry{
		ID:     id,
		Date:   mustParseDay(t, day),
		Weight: grams,
	}
}

func makeDiaper(t *testing.T, id string, day string, pee int, poop int) models.DiaperEntry {
	t.Helper()
	entryType := models.DiaperTypeBoth
	if poop == 0 {
		entryType = models.DiaperTypePee
	} else if pee == 0 {
		entryType = models.DiaperTypePoop
	}
	return models.DiaperEntry{
		ID:        id,
		Date:      mustParseDay(t, day),
		Type:      entryType,
		PeeCount:  pee,
		PoopCount: poop,
	}
}

func makeSick(t *testing.T, id string, startDay string, endDay string, symptomTypes ...string) models.SickEntry {
	t.Helper()
	symptoms := make([]models.SickSymptom, 0, len(symptomTypes))
	for i, symptomType := range symptomTypes {
		symptoms = append(symptoms, models.SickSymptom{
			ID:       id + "-s" + string(rune('a'+i)),
			Type:     symptomType,
			Severity: models.SeverityMild,
		})
	}
	return models.SickEntry{
		ID:        id,
		StartDate: mustParseDay(t, startDay),
		EndDate:   mustParseDay(t, endDay),
		Symptoms:  symptoms,
	}
}

func totalDiaperEntries(records []models.DailyRecord) int {
	total := 0
	for _, record := range records {
		total += len(record.DiaperEntries)
	}
	return total
}

func assertCountInvariant(t *testing.T, records []models.DailyRecord) {
	t.Helper()
	for _, record := range records {
		pee := 0
		poop := 0
		for _, entry := range record.DiaperEntries {
			pee += entry.PeeCount
			poop += entry.PoopCount
		}
		if record.PeeCount != pee {
			t.Fatalf("record %s: pee count %d does not match entry sum %d", DayKey(record.Date), record.PeeCount, pee)
		}
		if record.PoopCount != poop {
			t.Fatalf("record %s: poop count %d does not match entry sum %d", DayKey(record.Date), record.PoopCount, poop)
		}
	}
}
