package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/nestling/internal/models"
)

// The aggregator keeps one DailyRecord per (profile, date). All functions are
// pure over the explicitly passed collection and return the updated
// collection; callers own the container and must not reuse the input slice.
// Counts are recomputed from the entry lists on every mutation so the
// peeCount/poopCount invariant holds after any sequence of operations.

// UpsertWeightEntry sets the weight for the entry's date, last write wins.
// A missing record for that date is created.
func UpsertWeightEntry(records []models.DailyRecord, profileID string, entry models.WeightEntry) []models.DailyRecord {
	updated := copyRecords(records)
	for i := range updated {
		if SameDay(updated[i].Date, entry.Date) {
			weight := entry
			updated[i].Weight = &weight
			return updated
		}
	}

	weight := entry
	return appendSorted(updated, models.DailyRecord{
		ProfileID:     profileID,
		Date:          dateOnly(entry.Date),
		Weight:        &weight,
		DiaperEntries: []models.DiaperEntry{},
		SickEntries:   []models.SickEntry{},
	})
}

// AddDiaperEntry appends the entry to its date's record, creating the record
// when absent, and recomputes the rollup counts.
func AddDiaperEntry(records []models.DailyRecord, profileID string, entry models.DiaperEntry) []models.DailyRecord {
	updated := copyRecords(records)
	for i := range updated {
		if SameDay(updated[i].Date, entry.Date) {
			entries := make([]models.DiaperEntry, 0, len(updated[i].DiaperEntries)+1)
			entries = append(entries, updated[i].DiaperEntries...)
			entries = append(entries, entry)
			updated[i].DiaperEntries = entries
			recountDiapers(&updated[i])
			return updated
		}
	}

	return appendSorted(updated, models.DailyRecord{
		ProfileID:     profileID,
		Date:          dateOnly(entry.Date),
		DiaperEntries: []models.DiaperEntry{entry},
		PeeCount:      entry.PeeCount,
		PoopCount:     entry.PoopCount,
		SickEntries:   []models.SickEntry{},
	})
}

// UpdateDiaperEntry replaces the entry with the matching id wherever it
// lives. The stored date is kept: an update never moves an entry between
// records, moving is modeled as remove+add by the caller. Unknown ids are a
// no-op.
func UpdateDiaperEntry(records []models.DailyRecord, entry models.DiaperEntry) []models.DailyRecord {
	updated := copyRecords(records)
	for i := range updated {
		for j := range updated[i].DiaperEntries {
			if updated[i].DiaperEntries[j].ID != entry.ID {
				continue
			}
			replacement := entry
			replacement.Date = updated[i].DiaperEntries[j].Date
			entries := make([]models.DiaperEntry, len(updated[i].DiaperEntries))
			copy(entries, updated[i].DiaperEntries)
			entries[j] = replacement
			updated[i].DiaperEntries = entries
			recountDiapers(&updated[i])
			return updated
		}
	}
	return updated
}

// RemoveDiaperEntry deletes the entry with the matching id and prunes the
// owning record when nothing else remains on that date. Unknown ids are a
// no-op.
func RemoveDiaperEntry(records []models.DailyRecord, entryID string) []models.DailyRecord {
	updated := copyRecords(records)
	for i := range updated {
		filtered := make([]models.DiaperEntry, 0, len(updated[i].DiaperEntries))
		for _, existing := range updated[i].DiaperEntries {
			if existing.ID != entryID {
				filtered = append(filtered, existing)
			}
		}
		if len(filtered) == len(updated[i].DiaperEntries) {
			continue
		}
		updated[i].DiaperEntries = filtered
		recountDiapers(&updated[i])
		return pruneEmptyRecords(updated)
	}
	return updated
}

// AddSickEntry attaches the entry to the record of its start date only;
// multi-day ranges are resolved by overlap queries, never by duplicating the
// entry across records.
func AddSickEntry(records []models.DailyRecord, profileID string, entry models.SickEntry) []models.DailyRecord {
	updated := copyRecords(records)
	for i := range updated {
		if SameDay(updated[i].Date, entry.StartDate) {
			entries := make([]models.SickEntry, 0, len(updated[i].SickEntries)+1)
			entries = append(entries, updated[i].SickEntries...)
			entries = append(entries, entry)
			updated[i].SickEntries = entries
			return updated
		}
	}

	return appendSorted(updated, models.DailyRecord{
		ProfileID:     profileID,
		Date:          dateOnly(entry.StartDate),
		DiaperEntries: []models.DiaperEntry{},
		SickEntries:   []models.SickEntry{entry},
	})
}

// UpdateSickEntry replaces the entry with the matching id. When the start
// date moved, the entry is reattached to the record of the new start date
// (remove+add), keeping the attachment policy canonical.
func UpdateSickEntry(records []models.DailyRecord, profileID string, entry models.SickEntry) []models.DailyRecord {
	existing, found := FindSickEntry(records, entry.ID)
	if !found {
		return copyRecords(records)
	}

	if SameDay(existing.StartDate, entry.StartDate) {
		updated := copyRecords(records)
		for i := range updated {
			for j := range updated[i].SickEntries {
				if updated[i].SickEntries[j].ID != entry.ID {
					continue
				}
				entries := make([]models.SickEntry, len(updated[i].SickEntries))
				copy(entries, updated[i].SickEntries)
				entries[j] = entry
				updated[i].SickEntries = entries
				return updated
			}
		}
		return updated
	}

	return AddSickEntry(RemoveSickEntry(records, entry.ID), profileID, entry)
}

// RemoveSickEntry deletes the entry with the matching id and prunes the
// owning record when it carries no other data. Unknown ids are a no-op.
func RemoveSickEntry(records []models.DailyRecord, entryID string) []models.DailyRecord {
	updated := copyRecords(records)
	for i := range updated {
		filtered := make([]models.SickEntry, 0, len(updated[i].SickEntries))
		for _, existing := range updated[i].SickEntries {
			if existing.ID != entryID {
				filtered = append(filtered, existing)
			}
		}
		if len(filtered) == len(updated[i].SickEntries) {
			continue
		}
		updated[i].SickEntries = filtered
		return pruneEmptyRecords(updated)
	}
	return updated
}

// RecordHasData reports whether the record still holds anything worth
// keeping. Records failing this check are pruned after removals; a record
// with only a weight entry is retained.
func RecordHasData(record models.DailyRecord) bool {
	if record.Weight != nil {
		return true
	}
	if len(record.DiaperEntries) > 0 {
		return true
	}
	return len(record.SickEntries) > 0
}

func FindRecordByDate(records []models.DailyRecord, day time.Time) (models.DailyRecord, bool) {
	for _, record := range records {
		if SameDay(record.Date, day) {
			return record, true
		}
	}
	return models.DailyRecord{}, false
}

func FindDiaperEntry(records []models.DailyRecord, entryID string) (models.DiaperEntry, bool) {
	for _, record := range records {
		for _, entry := range record.DiaperEntries {
			if entry.ID == entryID {
				return entry, true
			}
		}
	}
	return models.DiaperEntry{}, false
}

func FindSickEntry(records []models.DailyRecord, entryID string) (models.SickEntry, bool) {
	for _, record := range records {
		for _, entry := range record.SickEntries {
			if entry.ID == entryID {
				return entry, true
			}
		}
	}
	return models.SickEntry{}, false
}

// WeightEntries extracts the recorded weights in date order.
func WeightEntries(records []models.DailyRecord) []models.WeightEntry {
	entries := make([]models.WeightEntry, 0, len(records))
	for _, record := range records {
		if record.Weight != nil {
			entries = append(entries, *record.Weight)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

// DiaperEntries flattens all diaper entries across the collection.
func DiaperEntries(records []models.DailyRecord) []models.DiaperEntry {
	entries := make([]models.DiaperEntry, 0)
	for _, record := range records {
		entries = append(entries, record.DiaperEntries...)
	}
	return entries
}

// SickEntries flattens all sick entries across the collection.
func SickEntries(records []models.DailyRecord) []models.SickEntry {
	entries := make([]models.SickEntry, 0)
	for _, record := range records {
		entries = append(entries, record.SickEntries...)
	}
	return entries
}

func recountDiapers(record *models.DailyRecord) {
	pee := 0
	poop := 0
	for _, entry := range record.DiaperEntries {
		pee += entry.PeeCount
		poop += entry.PoopCount
	}
	record.PeeCount = pee
	record.PoopCount = poop
}

func pruneEmptyRecords(records []models.DailyRecord) []models.DailyRecord {
	kept := make([]models.DailyRecord, 0, len(records))
	for _, record := range records {
		if RecordHasData(record) {
			kept = append(kept, record)
		}
	}
	return kept
}

func copyRecords(records []models.DailyRecord) []models.DailyRecord {
	copied := make([]models.DailyRecord, len(records))
	copy(copied, records)
	return copied
}

func appendSorted(records []models.DailyRecord, record models.DailyRecord) []models.DailyRecord {
	result := append(records, record)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}
