package service

import (
	"askadam/fitness-assistant/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrProfileNotFound = errors.New("profile not found")

// defaultPreferences mirrors the settings screen: every known field present
// so the UI always has something to render. Stored values win on merge.
var defaultPreferences = map[string]any{
	"height":                  "",
	"weight":                  "",
	"age":                     "",
	"gender":                  "",
	"goals":                   "",
	"medicalConditions":       "",
	"injuries":                "",
	"dietaryPreferences":      "",
	"fitnessLevel":            "beginner",
	"timeConstraints":         "",
	"availableSpaceEquipment": "",
}

// ProfileService reads and merge-updates the user's profile preferences.
type ProfileService interface {
	GetPreferences(ctx context.Context, userID string) (map[string]any, error)
	UpdatePreferences(ctx context.Context, userID string, patch map[string]any) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// GetPreferences returns the stored preferences merged over the defaults.
func (s *profileService) GetPreferences(ctx context.Context, userID string) (map[string]any, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	stored, err := s.profileRepo.GetPreferences(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	merged := make(map[string]any, len(defaultPreferences)+len(stored))
	for k, v := range defaultPreferences {
		merged[k] = v
	}
	for k, v := range stored {
		merged[k] = v
	}
	return merged, nil
}

// UpdatePreferences shallow-merges the patch into the stored preferences.
// No fixed schema is enforced; unknown fields are written through as-is.
func (s *profileService) UpdatePreferences(ctx context.Context, userID string, patch map[string]any) error {
	if len(patch) == 0 {
		return nil
	}
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrProfileNotFound
	}

	err = s.profileRepo.MergePreferences(ctx, oid, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProfileNotFound
	}
	return err
}
