package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/nestling/internal/models"
)

var (
	ErrRecordsLoadFailed   = errors.New("load daily records failed")
	ErrRecordsSaveFailed   = errors.New("save daily records failed")
	ErrInvalidDiaperCounts = errors.New("diaper counts must not be negative")
	ErrInvalidSickRange    = errors.New("sick entry end date must not precede start date")
	ErrDiaperDateImmutable = errors.New("diaper entry date cannot change on update")
)

type DailyRecordRepository interface {
	ListByProfile(profileID string) ([]models.DailyRecord, error)
	ListByProfileRange(profileID string, fromStart *time.Time, toEnd *time.Time) ([]models.DailyRecord, error)
	ReplaceForProfile(profileID string, records []models.DailyRecord) error
}

// RecordService is the single mutation path for a profile's daily records:
// load the collection, apply a pure aggregator function, write the full
// per-profile snapshot back. Mutations for one profile are expected to be
// serialized by the caller; the read-modify-write here is not safe under
// interleaved writers.
type RecordService struct {
	records DailyRecordRepository
}

func NewRecordService(records DailyRecordRepository) *RecordService {
	return &RecordService{records: records}
}

func (service *RecordService) ListRecords(profileID string, from *time.Time, to *time.Time, location *time.Location) ([]models.DailyRecord, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from, location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, location)
		toEnd = &end
	}
	return service.records.ListByProfileRange(profileID, fromStart, toEnd)
}

func (service *RecordService) AllRecords(profileID string) ([]models.DailyRecord, error) {
	return service.records.ListByProfile(profileID)
}

func (service *RecordService) UpsertWeight(profileID string, entry models.WeightEntry) ([]models.DailyRecord, error) {
	if entry.Weight <= 0 {
		return nil, ErrInvalidWeight
	}
	return service.apply(profileID, func(records []models.DailyRecord) []models.DailyRecord {
		return UpsertWeightEntry(records, profileID, entry)
	})
}

func (service *RecordService) AddDiaper(profileID string, entry models.DiaperEntry) ([]models.DailyRecord, error) {
	if entry.PeeCount < 0 || entry.PoopCount < 0 {
		return nil, ErrInvalidDiaperCounts
	}
	return service.apply(profileID, func(records []models.DailyRecord) []models.DailyRecord {
		return AddDiaperEntry(records, profileID, entry)
	})
}

// UpdateDiaper replaces the stored entry with the same id. Moving an entry to
// another date is not an update; callers remove and re-add instead.
func (service *RecordService) UpdateDiaper(profileID string, entry models.DiaperEntry) ([]models.DailyRecord, error) {
	if entry.PeeCount < 0 || entry.PoopCount < 0 {
		return nil, ErrInvalidDiaperCounts
	}

	current, err := service.records.ListByProfile(profileID)
	if err != nil {
		return nil, ErrRecordsLoadFailed
	}

	existing, found := FindDiaperEntry(current, entry.ID)
	if !found {
		// Tolerated: the caller may race with a prior removal.
		return current, nil
	}
	if !entry.Date.IsZero() && !SameDay(existing.Date, entry.Date) {
		return nil, ErrDiaperDateImmutable
	}

	updated := UpdateDiaperEntry(current, entry)
	if err := service.records.ReplaceForProfile(profileID, updated); err != nil {
		return nil, ErrRecordsSaveFailed
	}
	return updated, nil
}

func (service *RecordService) RemoveDiaper(profileID string, entryID string) ([]models.DailyRecord, error) {
	return service.apply(profileID, func(records []models.DailyRecord) []models.DailyRecord {
		return RemoveDiaperEntry(records, entryID)
	})
}

func (service *RecordService) AddSick(profileID string, entry models.SickEntry) ([]models.DailyRecord, error) {
	if dateOnly(entry.EndDate).Before(dateOnly(entry.StartDate)) {
		return nil, ErrInvalidSickRange
	}
	return service.apply(profileID, func(records []models.DailyRecord) []models.DailyRecord {
		return AddSickEntry(records, profileID, entry)
	})
}

func (service *RecordService) UpdateSick(profileID string, entry models.SickEntry) ([]models.DailyRecord, error) {
	if dateOnly(entry.EndDate).Before(dateOnly(entry.StartDate)) {
		return nil, ErrInvalidSickRange
	}
	return service.apply(profileID, func(records []models.DailyRecord) []models.DailyRecord {
		return UpdateSickEntry(records, profileID, entry)
	})
}

func (service *RecordService) RemoveSick(profileID string, entryID string) ([]models.DailyRecord, error) {
	return service.apply(profileID, func(records []models.DailyRecord) []models.DailyRecord {
		return RemoveSickEntry(records, entryID)
	})
}

func (service *RecordService) apply(profileID string, mutate func([]models.DailyRecord) []models.DailyRecord) ([]models.DailyRecord, error) {
	current, err := service.records.ListByProfile(profileID)
	if err != nil {
		return nil, ErrRecordsLoadFailed
	}

	updated := mutate(current)
	if err := service.records.ReplaceForProfile(profileID, updated); err != nil {
		return nil, ErrRecordsSaveFailed
	}
	return updated, nil
}
