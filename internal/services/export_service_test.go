package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/terraincognita07/nestling/internal/models"
)

func exportTestRecords(t *testing.T) []models.DailyRecord {
	t.Helper()

	records := UpsertWeightEntry(nil, testProfileID, makeWeight(t, "w1", "2026-03-10", 7900))
	diaper := makeDiaper(t, "d1", "2026-03-10", 6, 2)
	diaper.Notes = "greenish"
	records = AddDiaperEntry(records, testProfileID, diaper)
	records = AddSickEntry(records, testProfileID, makeSick(t, "s1", "2026-03-10", "2026-03-12", models.SymptomFever, models.SymptomCough))
	records = AddDiaperEntry(records, testProfileID, makeDiaper(t, "d2", "2026-03-12", 5, 1))
	return records
}

func TestBuildRows(t *testing.T) {
	t.Parallel()

	stub := newDailyRecordRepositoryStub()
	stub.records[testProfileID] = exportTestRecords(t)
	service := NewExportService(stub)

	rows, err := service.BuildRows(testProfileID, nil, nil, time.UTC)
	if err != nil {
		t.Fatalf("build rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Date != "2026-03-10" {
		t.Fatalf("unexpected first row date %s", first.Date)
	}
	if first.WeightGrams != 7900 {
		t.Fatalf("expected weight 7900, got %d", first.WeightGrams)
	}
	if first.PeeCount != 6 || first.PoopCount != 2 {
		t.Fatalf("expected counts 6/2, got %d/%d", first.PeeCount, first.PoopCount)
	}
	if first.DiaperChanges != 1 {
		t.Fatalf("expected 1 diaper change, got %d", first.DiaperChanges)
	}
	if !first.Sick {
		t.Fatal("expected the first day to be sick")
	}
	if len(first.Symptoms) != 2 {
		t.Fatalf("expected 2 symptom types, got %v", first.Symptoms)
	}
	if first.Notes != "greenish" {
		t.Fatalf("expected diaper notes collected, got %q", first.Notes)
	}

	// The 2026-03-12 record has no sick entry of its own but falls inside
	// the s1 range.
	second := rows[1]
	if second.Date != "2026-03-12" {
		t.Fatalf("unexpected second row date %s", second.Date)
	}
	if !second.Sick {
		t.Fatal("expected overlap to mark the second day sick")
	}
	if second.WeightGrams != 0 {
		t.Fatalf("expected no weight on the second day, got %d", second.WeightGrams)
	}
}

func TestBuildRows_RangeFilter(t *testing.T) {
	t.Parallel()

	stub := newDailyRecordRepositoryStub()
	stub.records[testProfileID] = exportTestRecords(t)
	service := NewExportService(stub)

	from := mustParseDay(t, "2026-03-11")
	rows, err := service.BuildRows(testProfileID, &from, nil, time.UTC)
	if err != nil {
		t.Fatalf("build rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row from 2026-03-11 on, got %d", len(rows))
	}
	if rows[0].Date != "2026-03-12" {
		t.Fatalf("unexpected row date %s", rows[0].Date)
	}
}

func TestBuildBundle(t *testing.T) {
	t.Parallel()

	stub := newDailyRecordRepositoryStub()
	stub.records[testProfileID] = exportTestRecords(t)
	service := NewExportService(stub)

	profile := summaryTestProfile(t)
	now := mustParseDay(t, "2026-03-15")
	bundle, err := service.BuildBundle(profile, nil, nil, now, time.UTC)
	if err != nil {
		t.Fatalf("build bundle: %v", err)
	}
	if bundle.Profile.ID != profile.ID {
		t.Fatalf("expected profile embedded, got %q", bundle.Profile.ID)
	}
	if len(bundle.Records) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(bundle.Records))
	}
	if !bundle.GeneratedAt.Equal(now) {
		t.Fatalf("expected generated at %s, got %s", now, bundle.GeneratedAt)
	}
}

func TestWriteExportCSV(t *testing.T) {
	t.Parallel()

	rows := []ExportRow{
		{Date: "2026-03-10", WeightGrams: 7900, PeeCount: 6, PoopCount: 2, DiaperChanges: 1, Sick: true, Symptoms: []string{"fever"}, Notes: "greenish"},
		{Date: "2026-03-12", PeeCount: 5, PoopCount: 1, DiaperChanges: 1},
	}

	var buffer bytes.Buffer
	if err := WriteExportCSV(&buffer, rows); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	parsed, err := csv.NewReader(&buffer).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(parsed) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(parsed))
	}
	if parsed[0][0] != "Date" || parsed[0][1] != "Weight (g)" {
		t.Fatalf("unexpected header %v", parsed[0])
	}
	if parsed[1][1] != "7900" {
		t.Fatalf("expected weight column 7900, got %q", parsed[1][1])
	}
	if parsed[2][1] != "" {
		t.Fatalf("expected empty weight column for a day without weight, got %q", parsed[2][1])
	}
	if parsed[1][5] != "true" {
		t.Fatalf("expected sick column true, got %q", parsed[1][5])
	}
}
