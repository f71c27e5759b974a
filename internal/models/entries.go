package models

import "time"

const (
	DiaperTypePee  = "pee"
	DiaperTypePoop = "poop"
	DiaperTypeBoth = "both"
)

const (
	PoopColorYellow = "yellow"
	PoopColorGreen  = "green"
	PoopColorBrown  = "brown"
	PoopColorRed    = "red"
	PoopColorWhite  = "white"
	PoopColorBlack  = "black"
)

const (
	PoopConsistencyNormal = "normal"
	PoopConsistencyMucus  = "mucus"
	PoopConsistencyBlood  = "blood"
)

const (
	SymptomFever        = "fever"
	SymptomVomit        = "vomit"
	SymptomWeak         = "weak"
	SymptomDizzy        = "dizzy"
	SymptomCough        = "cough"
	SymptomRunnyNose    = "runny_nose"
	SymptomRash         = "rash"
	SymptomDiarrhea     = "diarrhea"
	SymptomConstipation = "constipation"
	SymptomOther        = "other"
)

const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

type WeightEntry struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Weight    int       `json:"weight"`
	CreatedAt time.Time `json:"created_at"`
}

type DiaperEntry struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	Type            string    `json:"type"`
	PeeCount        int       `json:"pee_count"`
	PoopCount       int       `json:"poop_count"`
	PoopColor       string    `json:"poop_color,omitempty"`
	PoopConsistency string    `json:"poop_consistency,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type SickSymptom struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Notes    string `json:"notes,omitempty"`
}

type SickEntry struct {
	ID        string        `json:"id"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Symptoms  []SickSymptom `json:"symptoms"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

func IsValidDiaperType(value string) bool {
	return value == DiaperTypePee || value == DiaperTypePoop || value == DiaperTypeBoth
}

func IsValidPoopColor(value string) bool {
	switch value {
	case PoopColorYellow, PoopColorGreen, PoopColorBrown, PoopColorRed, PoopColorWhite, PoopColorBlack:
		return true
	}
	return false
}

func IsValidPoopConsistency(value string) bool {
	switch value {
	case PoopConsistencyNormal, PoopConsistencyMucus, PoopConsistencyBlood:
		return true
	}
	return false
}

func IsValidSymptomType(value string) bool {
	switch value {
	case SymptomFever, SymptomVomit, SymptomWeak, SymptomDizzy, SymptomCough,
		SymptomRunnyNose, SymptomRash, SymptomDiarrhea, SymptomConstipation, SymptomOther:
		return true
	}
	return false
}

func IsValidSeverity(value string) bool {
	return value == SeverityMild || value == SeverityModerate || value == SeveritySevere
}
