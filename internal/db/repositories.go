package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles     *ProfileRepository
	DailyRecords *DailyRecordRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles:     NewProfileRepository(database),
		DailyRecords: NewDailyRecordRepository(database),
	}
}
