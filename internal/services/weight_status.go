package services

import "errors"

var (
	ErrInvalidWeight = errors.New("weight must be positive")
	ErrInvalidAge    = errors.New("age must not be negative")
)

const (
	WeightStatusNormal        = "normal"
	WeightStatusUnderweight   = "underweight"
	WeightStatusOverweight    = "overweight"
	WeightStatusBelowStandard = "belowStandard"
)

const (
	CategoryKurangGizi = "kurang_gizi"
	CategoryBatasBawah = "batas_bawah"
	CategoryIdeal      = "ideal"
	CategoryBatasAtas  = "batas_atas"
	CategoryOverweight = "overweight"
)

const (
	GrowthExcellent      = "excellent"
	GrowthGood           = "good"
	GrowthNeedsAttention = "needsAttention"
	GrowthConcerning     = "concerning"
)

const (
	TrajectoryBelowExpected = "belowExpected"
	TrajectoryOnTrack       = "onTrack"
	TrajectoryAboveExpected = "aboveExpected"
)

// Flat heuristic for the expected weight curve from birth weight.
const expectedMonthlyGainGrams = 600

const minimumWeeklyTargetGrams = 100

var categoryRecommendations = map[string][]string{
	CategoryKurangGizi: {"rec.consult_pediatrician", "rec.increase_feeding", "rec.monitor_weekly"},
	CategoryBatasBawah: {"rec.increase_feeding", "rec.monitor_weekly"},
	CategoryIdeal:      {"rec.maintain_feeding", "rec.routine_checkup"},
	CategoryBatasAtas:  {"rec.monitor_monthly", "rec.routine_checkup"},
	CategoryOverweight: {"rec.consult_pediatrician", "rec.review_feeding"},
}

// WeightStatus carries semantic codes only; display text is an i18n concern.
// GrowthStatus is derived from the percentile band, TrajectoryStatus from the
// birth-weight heuristic. The two signals are kept separate on purpose so a
// caller can decide precedence.
type WeightStatus struct {
	Percentile        int      `json:"percentile"`
	Status            string   `json:"status"`
	Category          string   `json:"category"`
	GrowthStatus      string   `json:"growth_status"`
	TrajectoryStatus  string   `json:"trajectory_status,omitempty"`
	WeeklyTargetGrams int      `json:"weekly_target_grams,omitempty"`
	WeeksToTarget     int      `json:"weeks_to_target,omitempty"`
	Recommendations   []string `json:"recommendations"`
}

// WeightPercentile bands the weight into {3,15,50,85,97} for the given age and
// sex. Ages without a standards row report the median band.
func WeightPercentile(weightGrams, ageInMonths int, sex string) int {
	row, ok := LookupWeightStandards(sex, ageInMonths)
	if !ok {
		return 50
	}

	switch {
	case weightGrams <= row.P3:
		return 3
	case weightGrams <= row.P15:
		return 15
	case weightGrams <= row.P50:
		return 50
	case weightGrams <= row.P85:
		return 85
	default:
		return 97
	}
}

// ClassifyWeight maps a weight measurement to its percentile band, status
// category and growth verdicts. birthWeightGrams may be zero when unknown;
// the trajectory signal is then omitted.
func ClassifyWeight(weightGrams, ageInMonths int, sex string, birthWeightGrams int) (WeightStatus, error) {
	if weightGrams <= 0 {
		return WeightStatus{}, ErrInvalidWeight
	}
	if ageInMonths < 0 {
		return WeightStatus{}, ErrInvalidAge
	}

	status := WeightStatus{
		Percentile:   50,
		Status:       WeightStatusNormal,
		Category:     CategoryIdeal,
		GrowthStatus: GrowthExcellent,
	}

	row, ok := LookupWeightStandards(sex, ageInMonths)
	if ok {
		switch {
		case weightGrams <= row.P3:
			status.Percentile = 3
			status.Status = WeightStatusBelowStandard
			status.Category = CategoryKurangGizi
			status.GrowthStatus = GrowthConcerning
		case weightGrams <= row.P15:
			status.Percentile = 15
			status.Status = WeightStatusUnderweight
			status.Category = CategoryBatasBawah
			status.GrowthStatus = GrowthNeedsAttention
			status.WeeklyTargetGrams, status.WeeksToTarget = underweightTarget(weightGrams, row)
		case weightGrams <= row.P50:
			status.Percentile = 50
		case weightGrams <= row.P85:
			status.Percentile = 85
		case weightGrams <= row.P97:
			status.Percentile = 97
			status.Category = CategoryBatasAtas
			status.GrowthStatus = GrowthGood
		default:
			// Above the 97th band is reported as the 97th percentile.
			status.Percentile = 97
			status.Status = WeightStatusOverweight
			status.Category = CategoryOverweight
			status.GrowthStatus = GrowthConcerning
		}
	}

	if birthWeightGrams > 0 && ageInMonths > 0 {
		status.TrajectoryStatus = trajectoryStatus(weightGrams, birthWeightGrams, ageInMonths)
	}

	status.Recommendations = recommendationsForCategory(status.Category)
	return status, nil
}

func underweightTarget(weightGrams int, row WeightStandardsRow) (int, int) {
	targetWeight := row.P15 + int(0.3*float64(row.P50-row.P15))
	deficit := targetWeight - weightGrams
	if deficit <= 0 {
		return 0, 0
	}

	weeklyTarget := deficit / 4
	if weeklyTarget < minimumWeeklyTargetGrams {
		weeklyTarget = minimumWeeklyTargetGrams
	}
	weeksToTarget := (deficit + weeklyTarget - 1) / weeklyTarget
	return weeklyTarget, weeksToTarget
}

func trajectoryStatus(weightGrams, birthWeightGrams, ageInMonths int) string {
	expectedWeight := birthWeightGrams + ageInMonths*expectedMonthlyGainGrams
	ratio := float64(weightGrams-birthWeightGrams) / float64(expectedWeight-birthWeightGrams)
	switch {
	case ratio < 0.8:
		return TrajectoryBelowExpected
	case ratio > 1.2:
		return TrajectoryAboveExpected
	default:
		return TrajectoryOnTrack
	}
}

func recommendationsForCategory(category string) []string {
	codes, ok := categoryRecommendations[category]
	if !ok {
		return []string{}
	}
	result := make([]string, len(codes))
	copy(result, codes)
	return result
}
