package services

import (
	"fmt"
	"sort"

	"github.com/terraincognita07/nestling/internal/models"
)

type WeeklyTotals struct {
	Week          string `json:"week"`
	PeeCount      int    `json:"pee_count"`
	PoopCount     int    `json:"poop_count"`
	AverageWeight int    `json:"average_weight"`
}

func WeekKey(record models.DailyRecord) string {
	year, week := record.Date.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func MonthKey(record models.DailyRecord) string {
	return record.Date.Format("2006-01")
}

func GroupRecordsByWeek(records []models.DailyRecord) map[string][]models.DailyRecord {
	groups := make(map[string][]models.DailyRecord)
	for _, record := range records {
		key := WeekKey(record)
		groups[key] = append(groups[key], record)
	}
	return groups
}

func GroupRecordsByMonth(records []models.DailyRecord) map[string][]models.DailyRecord {
	groups := make(map[string][]models.DailyRecord)
	for _, record := range records {
		key := MonthKey(record)
		groups[key] = append(groups[key], record)
	}
	return groups
}

// BuildWeeklyTotals rolls the records up per ISO week, ordered by week key.
func BuildWeeklyTotals(records []models.DailyRecord) []WeeklyTotals {
	groups := GroupRecordsByWeek(records)

	weeks := make([]string, 0, len(groups))
	for week := range groups {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)

	totals := make([]WeeklyTotals, 0, len(weeks))
	for _, week := range weeks {
		entry := WeeklyTotals{Week: week}
		weightSum := 0
		weightCount := 0
		for _, record := range groups[week] {
			entry.PeeCount += record.PeeCount
			entry.PoopCount += record.PoopCount
			if record.Weight != nil {
				weightSum += record.Weight.Weight
				weightCount++
			}
		}
		if weightCount > 0 {
			entry.AverageWeight = weightSum / weightCount
		}
		totals = append(totals, entry)
	}
	return totals
}
