package repositories

import "portfolio/internal/models"

// ProfileRepository defines the interface for profile data access. The site
// is single-operator, so the first row is the profile.
type ProfileRepository interface {
	First() (*models.Profile, error)
	Create(profile *models.Profile) error
	Update(profile *models.Profile) error
}
