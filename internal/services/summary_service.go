package services

import (
	"time"

	"github.com/terraincognita07/nestling/internal/models"
)

const sickLookbackDays = 30

type SummaryRecordReader interface {
	ListByProfile(profileID string) ([]models.DailyRecord, error)
}

type SummaryService struct {
	records SummaryRecordReader
}

func NewSummaryService(records SummaryRecordReader) *SummaryService {
	return &SummaryService{records: records}
}

type TodaySnapshot struct {
	Weight    *models.WeightEntry `json:"weight,omitempty"`
	PeeCount  int                 `json:"pee_count"`
	PoopCount int                 `json:"poop_count"`
	Sick      bool                `json:"sick"`
}

// ProfileSummary is recomputed on demand from the record collection; nothing
// in it is cached anywhere.
type ProfileSummary struct {
	ProfileID      string              `json:"profile_id"`
	AgeInMonths    int                 `json:"age_in_months"`
	Age            DetailedAge         `json:"age"`
	LatestWeight   *models.WeightEntry `json:"latest_weight,omitempty"`
	WeightStatus   *WeightStatus       `json:"weight_status,omitempty"`
	WeightGain     WeightGainAnalysis  `json:"weight_gain"`
	WeightTrend    string              `json:"weight_trend"`
	Diaper         DiaperAnalysis      `json:"diaper"`
	Today          TodaySnapshot       `json:"today"`
	SickDaysLast30 int                 `json:"sick_days_last_30"`
	Weekly         []WeeklyTotals      `json:"weekly"`
	HasAlerts      bool                `json:"has_alerts"`
}

func (service *SummaryService) BuildSummary(profile models.Profile, now time.Time, location *time.Location) (ProfileSummary, error) {
	records, err := service.records.ListByProfile(profile.ID)
	if err != nil {
		return ProfileSummary{}, ErrRecordsLoadFailed
	}

	ageInMonths := AgeInMonths(profile.DateOfBirth, now)
	weights := WeightEntries(records)

	summary := ProfileSummary{
		ProfileID:   profile.ID,
		AgeInMonths: ageInMonths,
		Age:         CalculateDetailedAge(profile.DateOfBirth, now),
		WeightGain:  AnalyzeWeightGain(weights, ageInMonths),
		WeightTrend: WeightTrend(weights),
		Diaper:      AnalyzeDiaperPatterns(DiaperEntries(records)),
		Weekly:      BuildWeeklyTotals(records),
	}

	if len(weights) > 0 {
		latest := weights[len(weights)-1]
		summary.LatestWeight = &latest

		status, err := ClassifyWeight(latest.Weight, ageInMonths, profile.Sex, profile.BirthWeight)
		if err != nil {
			return ProfileSummary{}, err
		}
		summary.WeightStatus = &status
	}

	today := DateAtLocation(now, location)
	if record, found := FindRecordByDate(records, today); found {
		summary.Today.Weight = record.Weight
		summary.Today.PeeCount = record.PeeCount
		summary.Today.PoopCount = record.PoopCount
	}
	summary.Today.Sick = SickOnDay(records, today)
	summary.SickDaysLast30 = SickDayCount(records, today.AddDate(0, 0, -(sickLookbackDays-1)), today)

	summary.HasAlerts = summary.Diaper.DehydrationRisk || summary.Diaper.DiarrheaRisk ||
		(summary.WeightStatus != nil && summary.WeightStatus.Status != WeightStatusNormal)

	return summary, nil
}
