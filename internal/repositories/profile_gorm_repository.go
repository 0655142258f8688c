package repositories

import (
	"fmt"

	"portfolio/internal/apperr"
	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProfileRepository is a GORM implementation of ProfileRepository.
type GORMProfileRepository struct {
	db *gorm.DB
}

// NewGORMProfileRepository creates a new instance of GORMProfileRepository.
func NewGORMProfileRepository(db *gorm.DB) *GORMProfileRepository {
	return &GORMProfileRepository{db: db}
}

// First retrieves the first profile row.
func (r *GORMProfileRepository) First() (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Order("created_at ASC").First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.E(apperr.CodeNotFound, "ProfileRepository.First", "profile not found", err)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// Create creates a new profile in the database.
func (r *GORMProfileRepository) Create(profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if err := r.db.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// Update updates an existing profile in the database.
func (r *GORMProfileRepository) Update(profile *models.Profile) error {
	res := r.db.Save(profile) // Save updates all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(apperr.CodeNotFound, "ProfileRepository.Update", "profile not found", nil)
	}
	return nil
}
