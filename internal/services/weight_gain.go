package services

import (
	"math"
	"sort"

	"github.com/terraincognita07/nestling/internal/models"
)

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

type WeightGainAnalysis struct {
	Daily   int    `json:"daily"`
	Weekly  int    `json:"weekly"`
	Monthly int    `json:"monthly"`
	Status  string `json:"status"`
}

type ExpectedWeightGain struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
}

// ExpectedGainForAge returns the typical gain for the age band, in grams.
func ExpectedGainForAge(ageInMonths int) ExpectedWeightGain {
	switch {
	case ageInMonths < 3:
		return ExpectedWeightGain{Daily: 20, Weekly: 140, Monthly: 600}
	case ageInMonths < 6:
		return ExpectedWeightGain{Daily: 15, Weekly: 105, Monthly: 450}
	case ageInMonths < 12:
		return ExpectedWeightGain{Daily: 10, Weekly: 70, Monthly: 300}
	default:
		return ExpectedWeightGain{Daily: 5, Weekly: 35, Monthly: 150}
	}
}

// AnalyzeWeightGain derives the gain rate from the two most recent entries.
// Weekly and monthly figures are linear extrapolations of the daily rate,
// not true calendar averages. Fewer than two entries is a legitimate
// "insufficient data" state, not an error.
func AnalyzeWeightGain(entries []models.WeightEntry, ageInMonths int) WeightGainAnalysis {
	if len(entries) < 2 {
		return WeightGainAnalysis{Status: GrowthNeedsAttention}
	}

	sorted := sortWeightEntries(entries)
	latest := sorted[len(sorted)-1]
	previous := sorted[len(sorted)-2]

	daysBetween := DaysBetween(previous.Date, latest.Date)
	if daysBetween < 1 {
		daysBetween = 1
	}

	dailyGain := float64(latest.Weight-previous.Weight) / float64(daysBetween)
	expected := ExpectedGainForAge(ageInMonths)

	status := GrowthNeedsAttention
	if dailyGain >= float64(expected.Daily)*0.8 {
		if dailyGain >= float64(expected.Daily)*1.2 {
			status = GrowthExcellent
		} else {
			status = GrowthGood
		}
	}

	return WeightGainAnalysis{
		Daily:   int(math.Round(dailyGain)),
		Weekly:  int(math.Round(dailyGain * 7)),
		Monthly: int(math.Round(dailyGain * 30)),
		Status:  status,
	}
}

// WeightTrend reports the direction over the three most recent entries, with
// a 100 g dead band so measurement noise reads as stable.
func WeightTrend(entries []models.WeightEntry) string {
	if len(entries) < 3 {
		return TrendStable
	}

	sorted := sortWeightEntries(entries)
	recent := sorted[len(sorted)-3:]
	diff := recent[len(recent)-1].Weight - recent[0].Weight

	switch {
	case diff > 100:
		return TrendIncreasing
	case diff < -100:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

func sortWeightEntries(entries []models.WeightEntry) []models.WeightEntry {
	sorted := make([]models.WeightEntry, 0, len(entries))
	sorted = append(sorted, entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
