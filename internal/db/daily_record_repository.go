package db

import (
	"time"

	"github.com/terraincognita07/nestling/internal/models"
	"gorm.io/gorm"
)

type DailyRecordRepository struct {
	database *gorm.DB
}

func NewDailyRecordRepository(database *gorm.DB) *DailyRecordRepository {
	return &DailyRecordRepository{database: database}
}

func (repo *DailyRecordRepository) ListByProfile(profileID string) ([]models.DailyRecord, error) {
	records := make([]models.DailyRecord, 0)
	if err := repo.database.Where("profile_id = ?", profileID).Order("date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DailyRecordRepository) ListByProfileRange(profileID string, fromStart *time.Time, toEnd *time.Time) ([]models.DailyRecord, error) {
	query := repo.database.Model(&models.DailyRecord{}).Where("profile_id = ?", profileID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	records := make([]models.DailyRecord, 0)
	if err := query.Order("date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ReplaceForProfile writes the profile's full record collection through to
// storage: the snapshot is the contract, no delta format exists.
func (repo *DailyRecordRepository) ReplaceForProfile(profileID string, records []models.DailyRecord) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", profileID).Delete(&models.DailyRecord{}).Error; err != nil {
			return err
		}
		for i := range records {
			records[i].ID = 0
			records[i].ProfileID = profileID
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (repo *DailyRecordRepository) DeleteByProfile(profileID string) error {
	return repo.database.Where("profile_id = ?", profileID).Delete(&models.DailyRecord{}).Error
}
