package services

import (
	"math"
	"time"
)

const dayLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

func SameDay(a, b time.Time) bool {
	return a.Format(dayLayout) == b.Format(dayLayout)
}

func DayKey(value time.Time) string {
	return value.Format(dayLayout)
}

func dateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

// DaysBetween counts whole calendar days from a to b, negative when b is
// before a.
func DaysBetween(a, b time.Time) int {
	from := dateOnly(a)
	to := dateOnly(b)
	return int(math.Round(to.Sub(from).Hours() / 24))
}
