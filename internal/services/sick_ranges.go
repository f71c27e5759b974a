package services

import (
	"time"

	"github.com/terraincognita07/nestling/internal/models"
)

// SickEntryCoversDay reports whether the day falls inside the entry's
// inclusive start/end range.
func SickEntryCoversDay(entry models.SickEntry, day time.Time) bool {
	target := dateOnly(day)
	start := dateOnly(entry.StartDate)
	end := dateOnly(entry.EndDate)
	if end.Before(start) {
		end = start
	}
	return !target.Before(start) && !target.After(end)
}

// SickOnDay reports whether any entry in the collection overlaps the day.
// Entries live on the record of their start date, so the whole collection is
// scanned.
func SickOnDay(records []models.DailyRecord, day time.Time) bool {
	for _, record := range records {
		for _, entry := range record.SickEntries {
			if SickEntryCoversDay(entry, day) {
				return true
			}
		}
	}
	return false
}

// ActiveSickEntries returns the entries whose range overlaps the day.
func ActiveSickEntries(records []models.DailyRecord, day time.Time) []models.SickEntry {
	active := make([]models.SickEntry, 0)
	for _, record := range records {
		for _, entry := range record.SickEntries {
			if SickEntryCoversDay(entry, day) {
				active = append(active, entry)
			}
		}
	}
	return active
}

// SickDurationDays is the inclusive length of the entry's range in days.
// Degenerate ranges count as a single day. Entries without symptoms are
// tolerated; duration does not depend on them.
func SickDurationDays(entry models.SickEntry) int {
	days := DaysBetween(entry.StartDate, entry.EndDate) + 1
	if days < 1 {
		return 1
	}
	return days
}

// SickDayCount counts the distinct calendar days inside [from, to] covered
// by at least one entry.
func SickDayCount(records []models.DailyRecord, from, to time.Time) int {
	start := dateOnly(from)
	end := dateOnly(to)
	if end.Before(start) {
		return 0
	}

	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if SickOnDay(records, day) {
			count++
		}
	}
	return count
}

// WorstSeverity returns the most severe symptom grade carried by the entry,
// or an empty string for a symptomless entry.
func WorstSeverity(entry models.SickEntry) string {
	worst := ""
	for _, symptom := range entry.Symptoms {
		if severityRank(symptom.Severity) > severityRank(worst) {
			worst = symptom.Severity
		}
	}
	return worst
}

func severityRank(severity string) int {
	switch severity {
	case models.SeverityMild:
		return 1
	case models.SeverityModerate:
		return 2
	case models.SeveritySevere:
		return 3
	default:
		return 0
	}
}
