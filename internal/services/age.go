package services

import "time"

type DetailedAge struct {
	Months    int `json:"months"`
	Days      int `json:"days"`
	TotalDays int `json:"total_days"`
}

// AgeInMonths returns the age in whole calendar months, never negative.
// The month counter is decremented when the day of month has not been
// reached yet, so a child born on the 20th turns one month old on the 20th.
func AgeInMonths(dateOfBirth, now time.Time) int {
	birth := dateOnly(dateOfBirth)
	today := dateOnly(now)

	months := (today.Year()-birth.Year())*12 + int(today.Month()) - int(birth.Month())
	if today.Day() < birth.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func CalculateDetailedAge(dateOfBirth, now time.Time) DetailedAge {
	months := AgeInMonths(dateOfBirth, now)
	anchor := dateOnly(dateOfBirth).AddDate(0, months, 0)

	days := DaysBetween(anchor, now)
	if days < 0 {
		days = 0
	}
	totalDays := DaysBetween(dateOfBirth, now)
	if totalDays < 0 {
		totalDays = 0
	}

	return DetailedAge{
		Months:    months,
		Days:      days,
		TotalDays: totalDays,
	}
}
