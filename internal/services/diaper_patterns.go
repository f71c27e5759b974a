package services

import (
	"sort"

	"github.com/terraincognita07/nestling/internal/models"
)

const (
	PeeFrequencyNormal = "normal"
	PeeFrequencyLow    = "low"
	PeeFrequencyHigh   = "high"
)

const (
	PoopFrequencyNormal       = "normal"
	PoopFrequencyDiarrhea     = "diarrhea"
	PoopFrequencyConstipation = "constipation"
)

const diaperWindowDays = 7

type DiaperAnalysis struct {
	PeeFrequency    string `json:"pee_frequency"`
	PoopFrequency   string `json:"poop_frequency"`
	DehydrationRisk bool   `json:"dehydration_risk"`
	DiarrheaRisk    bool   `json:"diarrhea_risk"`
}

// AnalyzeDiaperPatterns classifies pee/poop frequency over the most recent
// seven distinct dates with data. Sparse histories shrink the window rather
// than padding it with empty days. An empty history is the neutral default,
// not an error.
func AnalyzeDiaperPatterns(entries []models.DiaperEntry) DiaperAnalysis {
	analysis := DiaperAnalysis{
		PeeFrequency:  PeeFrequencyNormal,
		PoopFrequency: PoopFrequencyNormal,
	}
	if len(entries) == 0 {
		return analysis
	}

	entriesByDay := make(map[string][]models.DiaperEntry, len(entries))
	for _, entry := range entries {
		key := DayKey(entry.Date)
		entriesByDay[key] = append(entriesByDay[key], entry)
	}

	days := make([]string, 0, len(entriesByDay))
	for day := range entriesByDay {
		days = append(days, day)
	}
	sort.Strings(days)
	if len(days) > diaperWindowDays {
		days = days[len(days)-diaperWindowDays:]
	}

	totalPee := 0
	totalPoop := 0
	hasStoolIndicators := false
	for _, day := range days {
		for _, entry := range entriesByDay[day] {
			totalPee += entry.PeeCount
			totalPoop += entry.PoopCount
			if hasDiarrheaIndicators(entry) {
				hasStoolIndicators = true
			}
		}
	}

	avgPee := float64(totalPee) / float64(len(days))
	avgPoop := float64(totalPoop) / float64(len(days))

	switch {
	case avgPee < 4:
		analysis.PeeFrequency = PeeFrequencyLow
	case avgPee > 12:
		analysis.PeeFrequency = PeeFrequencyHigh
	}

	switch {
	case avgPoop < 1:
		analysis.PoopFrequency = PoopFrequencyConstipation
	case avgPoop > 5:
		analysis.PoopFrequency = PoopFrequencyDiarrhea
	}

	// The avgPee < 3 clause is currently implied by the low classification;
	// both conditions are kept so the thresholds can be tuned independently.
	analysis.DehydrationRisk = analysis.PeeFrequency == PeeFrequencyLow || avgPee < 3
	analysis.DiarrheaRisk = analysis.PoopFrequency == PoopFrequencyDiarrhea || hasStoolIndicators

	return analysis
}

func hasDiarrheaIndicators(entry models.DiaperEntry) bool {
	if entry.PoopConsistency == models.PoopConsistencyMucus || entry.PoopConsistency == models.PoopConsistencyBlood {
		return true
	}
	switch entry.PoopColor {
	case models.PoopColorRed, models.PoopColorWhite, models.PoopColorBlack:
		return true
	}
	return false
}
