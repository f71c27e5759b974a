package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/nestling/internal/models"
)

var (
	ErrProfileNameRequired = errors.New("profile name is required")
	ErrDateOfBirthInFuture = errors.New("date of birth must not be in the future")
	ErrInvalidBirthWeight  = errors.New("birth weight must be positive")
	ErrInvalidSex          = errors.New("sex must be male or female")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileSaveFailed   = errors.New("save profile failed")
	ErrProfileDeleteFailed = errors.New("delete profile failed")
)

type ProfileInput struct {
	Name        string
	DateOfBirth time.Time
	BirthWeight int
	Sex         string
	Picture     string
}

type ProfileRepository interface {
	List() ([]models.Profile, error)
	FindByID(id string) (models.Profile, bool, error)
	Create(profile *models.Profile) error
	Save(profile *models.Profile) error
	DeleteByID(id string) error
}

type ProfileRecordPurger interface {
	DeleteByProfile(profileID string) error
}

type ProfileService struct {
	profiles ProfileRepository
	records  ProfileRecordPurger
}

func NewProfileService(profiles ProfileRepository, records ProfileRecordPurger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		records:  records,
	}
}

func (service *ProfileService) ListProfiles() ([]models.Profile, error) {
	return service.profiles.List()
}

func (service *ProfileService) GetProfile(id string) (models.Profile, error) {
	profile, found, err := service.profiles.FindByID(id)
	if err != nil {
		return models.Profile{}, err
	}
	if !found {
		return models.Profile{}, ErrProfileNotFound
	}
	return profile, nil
}

func (service *ProfileService) CreateProfile(input ProfileInput, now time.Time) (models.Profile, error) {
	if err := validateProfileInput(input, now); err != nil {
		return models.Profile{}, err
	}

	profile := models.Profile{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(input.Name),
		DateOfBirth: dateOnly(input.DateOfBirth),
		BirthWeight: input.BirthWeight,
		Sex:         input.Sex,
		Picture:     input.Picture,
		CreatedAt:   now,
	}
	if err := service.profiles.Create(&profile); err != nil {
		return models.Profile{}, ErrProfileSaveFailed
	}
	return profile, nil
}

func (service *ProfileService) UpdateProfile(id string, input ProfileInput, now time.Time) (models.Profile, error) {
	if err := validateProfileInput(input, now); err != nil {
		return models.Profile{}, err
	}

	profile, err := service.GetProfile(id)
	if err != nil {
		return models.Profile{}, err
	}

	profile.Name = strings.TrimSpace(input.Name)
	profile.DateOfBirth = dateOnly(input.DateOfBirth)
	profile.BirthWeight = input.BirthWeight
	profile.Sex = input.Sex
	profile.Picture = input.Picture
	if err := service.profiles.Save(&profile); err != nil {
		return models.Profile{}, ErrProfileSaveFailed
	}
	return profile, nil
}

// DeleteProfile removes the profile and cascades to its daily records; no
// record survives its profile.
func (service *ProfileService) DeleteProfile(id string) error {
	if _, err := service.GetProfile(id); err != nil {
		return err
	}
	if err := service.records.DeleteByProfile(id); err != nil {
		return ErrProfileDeleteFailed
	}
	if err := service.profiles.DeleteByID(id); err != nil {
		return ErrProfileDeleteFailed
	}
	return nil
}

func validateProfileInput(input ProfileInput, now time.Time) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrProfileNameRequired
	}
	if dateOnly(input.DateOfBirth).After(dateOnly(now)) {
		return ErrDateOfBirthInFuture
	}
	if input.BirthWeight <= 0 {
		return ErrInvalidBirthWeight
	}
	if !models.IsValidSex(input.Sex) {
		return ErrInvalidSex
	}
	return nil
}
