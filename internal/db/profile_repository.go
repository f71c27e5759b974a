package db

import (
	"github.com/terraincognita07/nestling/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) List() ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := repo.database.Order("created_at ASC, id ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (repo *ProfileRepository) FindByID(id string) (models.Profile, bool, error) {
	profile := models.Profile{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.Profile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Profile{}, false, nil
	}
	return profile, true, nil
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) Save(profile *models.Profile) error {
	return repo.database.Save(profile).Error
}

func (repo *ProfileRepository) DeleteByID(id string) error {
	return repo.database.Where("id = ?", id).Delete(&models.Profile{}).Error
}
