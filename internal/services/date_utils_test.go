package services

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	t.Parallel()

	morning := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, evening) {
		t.Fatal("expected times on the same calendar day to match")
	}
	if SameDay(evening, nextDay) {
		t.Fatal("expected midnight rollover to be a different day")
	}
}

func TestDayRange(t *testing.T) {
	t.Parallel()

	value := time.Date(2026, 3, 10, 15, 45, 0, 0, time.UTC)
	start, end := DayRange(value, time.UTC)

	if got := start.Format(time.RFC3339); got != "2026-03-10T00:00:00Z" {
		t.Fatalf("unexpected day start %s", got)
	}
	if got := end.Format(time.RFC3339); got != "2026-03-11T00:00:00Z" {
		t.Fatalf("unexpected day end %s", got)
	}
}

func TestDateAtLocation_NilLocationDefaultsToUTC(t *testing.T) {
	t.Parallel()

	value := time.Date(2026, 3, 10, 15, 45, 0, 0, time.UTC)
	got := DateAtLocation(value, nil)
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC, got %s", got.Location())
	}
	if got.Hour() != 0 || got.Day() != 10 {
		t.Fatalf("expected truncation to midnight of the same day, got %s", got)
	}
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "same day", from: "2026-03-10", to: "2026-03-10", want: 0},
		{name: "forward", from: "2026-03-10", to: "2026-03-15", want: 5},
		{name: "backward", from: "2026-03-15", to: "2026-03-10", want: -5},
		{name: "across month boundary", from: "2026-02-27", to: "2026-03-02", want: 3},
	}

	for _, testCase := range cases {
		got := DaysBetween(mustParseDay(t, testCase.from), mustParseDay(t, testCase.to))
		if got != testCase.want {
			t.Fatalf("%s: expected %d, got %d", testCase.name, testCase.want, got)
		}
	}
}
