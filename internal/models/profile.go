package models

import "time"

const (
	SexMale   = "male"
	SexFemale = "female"
)

type Profile struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	BirthWeight int       `gorm:"not null" json:"birth_weight"`
	Sex         string    `gorm:"not null" json:"sex"`
	Picture     string    `json:"picture,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

func IsValidSex(sex string) bool {
	return sex == SexMale || sex == SexFemale
}
