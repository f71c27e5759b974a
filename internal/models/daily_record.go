package models

import "time"

// DailyRecord is the per-(profile, date) rollup. PeeCount and PoopCount are
// always the sums over DiaperEntries; the aggregator recomputes them on every
// mutation. A sick entry lives on the record of its start date; range overlap
// is computed on demand, never duplicated across records.
type DailyRecord struct {
	ID            uint          `gorm:"primaryKey" json:"-"`
	ProfileID     string        `gorm:"not null;uniqueIndex:uidx_profile_date" json:"profile_id"`
	Date          time.Time     `gorm:"type:date;not null;uniqueIndex:uidx_profile_date" json:"date"`
	Weight        *WeightEntry  `gorm:"serializer:json" json:"weight,omitempty"`
	DiaperEntries []DiaperEntry `gorm:"serializer:json" json:"diaper_entries"`
	PeeCount      int           `gorm:"not null;default:0" json:"pee_count"`
	PoopCount     int           `gorm:"not null;default:0" json:"poop_count"`
	SickEntries   []SickEntry   `gorm:"serializer:json" json:"sick_entries"`
	CreatedAt     time.Time     `json:"-"`
	UpdatedAt     time.Time     `json:"-"`
}
