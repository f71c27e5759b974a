package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/nestling/internal/models"
)

type dailyRecordRepositoryStub struct {
	records    map[string][]models.DailyRecord
	listErr    error
	replaceErr error
	replaces   int
}

func newDailyRecordRepositoryStub() *dailyRecordRepositoryStub {
	return &dailyRecordRepositoryStub{records: make(map[string][]models.DailyRecord)}
}

func (stub *dailyRecordRepositoryStub) ListByProfile(profileID string) ([]models.DailyRecord, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	stored := stub.records[profileID]
	result := make([]models.DailyRecord, len(stored))
	copy(result, stored)
	return result, nil
}

func (stub *dailyRecordRepositoryStub) ListByProfileRange(profileID string, fromStart *time.Time, toEnd *time.Time) ([]models.DailyRecord, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.DailyRecord, 0)
	for _, record := range stub.records[profileID] {
		if fromStart != nil && record.Date.Before(*fromStart) {
			continue
		}
		if toEnd != nil && !record.Date.Before(*toEnd) {
			continue
		}
		result = append(result, record)
	}
	return result, nil
}

func (stub *dailyRecordRepositoryStub) ReplaceForProfile(profileID string, records []models.DailyRecord) error {
	if stub.replaceErr != nil {
		return stub.replaceErr
	}
	stub.replaces++
	stored := make([]models.DailyRecord, len(records))
	copy(stored, records)
	stub.records[profileID] = stored
	return nil
}

func (stub *dailyRecordRepositoryStub) DeleteByProfile(profileID string) error {
	delete(stub.records, profileID)
	return nil
}

func TestRecordService_UpsertWeightValidation(t *testing.T) {
	t.Parallel()

	service := NewRecordService(newDailyRecordRepositoryStub())
	if _, err := service.UpsertWeight(testProfileID, makeWeight(t, "w1", "2026-03-10", 0)); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
}

func TestRecordService_UpsertWeightPersistsSnapshot(t *testing.T) {
	t.Parallel()

	stub := newDailyRecordRepositoryStub()
	service := NewRecordService(stub)

	records, err := service.UpsertWeight(testProfileID, makeWeight(t, "w1", "2026-03-10", 5000))
	if err != nil {
		t.Fatalf("upsert weight: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if stub.replaces != 1 {
		t.Fatalf("expected one snapshot write, got %d", stub.replaces)
	}
	if len(stub.records[testProfileID]) != 1 {
		t.Fatalf("expected the snapshot stored, got %d records", len(stub.records[testProfileID]))
	}
}

func TestRecordService_AddDiaperValidation(t *testing.T) {
	t.Parallel()

	service := NewRecordService(newDailyRecordRepositoryStub())

	entry := makeDiaper(t, "d1", "2026-03-10", -1, 0)
	if _, err := service.AddDiaper(testProfileID, entry); !errors.Is(err, ErrInvalidDiaperCounts) {
		t.Fatalf("expected ErrInvalidDiaperCounts, got %v", err)
	}
}

func TestRecordService_UpdateDiaperDateImmutable(t *testing.T) {
	t.Parallel()

	stub := newDailyRecordRepositoryStub()
	service := NewRecordService(stub)

	if _, err := service.AddDiaper(testProfileID, makeDiaper(t, "d1", "2026-03-10", 3, 1)); err != nil {
		t.Fatalf("add diaper: %v", err)
	}

	moved := makeDiaper(t, "d1", "2026-03-11", 3, 1)
	if _, err := service.UpdateDiaper(testProfileID, moved); !errors.Is(err, ErrDiaperDateImmutable) {
		t.Fatalf("expected ErrDiaperDateImmutable, got %v", err)
	}
}

func TestRecordService_UpdateDiaperZeroDateKeepsStored(t *testing.T) {
	t.Parallel()

	stub := newDailyRecordRepositoryStub()
	service := NewRecordService(stub)

	if _, err := service.AddDiaper(testProfileID, makeDiaper(t, "d1", "2026-03-10", 3, 1)); err != nil {
		t.Fatalf("add diaper: %v", err)
	}

	replacement := models.DiaperEntry{ID: "d1", Type: models.DiaperTypePee, PeeCount: 5}
	records, err := service.UpdateDiaper(testProfileID, replacement)
	if err != nil {
		t.Fatalf("update diaper: %v", err)
	}

	entry, found := FindDiaperEntry(records, "d1")
	if !found {
		t.Fatal("expected entry d1")
	}
	if DayKey(entry.Date) != "2026-03-10" {
		t.Fatalf("expected stored date kept, got %s", DayKey(entry.Date))
	}
	if entry.PeeCount != 5 {
		t.Fatalf("expected updated pee count 5, got %d", entry.PeeCount)
	}
}

func TestRecordService_UpdateDiaperUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	stub := newDailyRecordRepositoryStub()
	service := NewRecordService(stub)

	if _, err := service.AddDiaper(testProfileID, makeDiaper(t, "d1", "2026-03-10", 3, 1)); err != nil {
		t.Fatalf("add diaper: %v", err)
	}
	writesBefore := stub.replaces

	records, err := service.UpdateDiaper(testProfileID, makeDiaper(t, "missing", "2026-03-10", 9, 9))
	if err != nil {
		t.Fatalf("update diaper: %v", err)
	}
	if stub.replaces != writesBefore {
		t.Fatal("expected no snapshot write for an unknown id")
	}
	if totalDiaperEntries(records) != 1 {
		t.Fatalf("expected the collection unchanged, got %d entries", totalDiaperEntries(records))
	}
}

func TestRecordService_AddSickValidatesRange(t *testing.T) {
	t.Parallel()

	service := NewRecordService(newDailyRecordRepositoryStub())

	entry := makeSick(t, "s1", "2026-03-10", "2026-03-05", models.SymptomFever)
	if _, err := service.AddSick(testProfileID, entry); !errors.Is(err, ErrInvalidSickRange) {
		t.Fatalf("expected ErrInvalidSickRange, got %v", err)
	}
}

func TestRecordService_RemoveDiaperPersistsPrunedSnapshot(t *testing.T) {
	t.Parallel()

	stub := newDailyRecordRepositoryStub()
	service := NewRecordService(stub)

	if _, err := service.AddDiaper(testProfileID, makeDiaper(t, "d1", "2026-03-10", 3, 1)); err != nil {
		t.Fatalf("add diaper: %v", err)
	}
	records, err := service.RemoveDiaper(testProfileID, "d1")
	if err != nil {
		t.Fatalf("remove diaper: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty collection after pruning, got %d", len(records))
	}
	if len(stub.records[testProfileID]) != 0 {
		t.Fatalf("expected the pruned snapshot stored, got %d records", len(stub.records[testProfileID]))
	}
}

func TestRecordService_LoadFailureWrapsError(t *testing.T) {
	t.Parallel()

	stub := newDailyRecordRepositoryStub()
	stub.listErr = errors.New("disk on fire")
	service := NewRecordService(stub)

	if _, err := service.AddDiaper(testProfileID, makeDiaper(t, "d1", "2026-03-10", 3, 1)); !errors.Is(err, ErrRecordsLoadFailed) {
		t.Fatalf("expected ErrRecordsLoadFailed, got %v", err)
	}
}

func TestRecordService_SaveFailureWrapsError(t *testing.T) {
	t.Parallel()

	stub := newDailyRecordRepositoryStub()
	stub.replaceErr = errors.New("disk full")
	service := NewRecordService(stub)

	if _, err := service.AddDiaper(testProfileID, makeDiaper(t, "d1", "2026-03-10", 3, 1)); !errors.Is(err, ErrRecordsSaveFailed) {
		t.Fatalf("expected ErrRecordsSaveFailed, got %v", err)
	}
}

func TestRecordService_ListRecordsAppliesRange(t *testing.T) {
	t.Parallel()

	stub := newDailyRecordRepositoryStub()
	service := NewRecordService(stub)

	for _, day := range []string{"2026-03-08", "2026-03-10", "2026-03-12"} {
		if _, err := service.AddDiaper(testProfileID, makeDiaper(t, "d-"+day, day, 3, 1)); err != nil {
			t.Fatalf("add diaper: %v", err)
		}
	}

	from := mustParseDay(t, "2026-03-09")
	to := mustParseDay(t, "2026-03-10")
	records, err := service.ListRecords(testProfileID, &from, &to, time.UTC)
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record inside the inclusive range, got %d", len(records))
	}
	if DayKey(records[0].Date) != "2026-03-10" {
		t.Fatalf("unexpected record %s", DayKey(records[0].Date))
	}
}
