package professional

import (
	"context"
	"fmt"
	"strings"

	"beautybook/models"
)

// GetProfile fetches a professional by id.
func (s *DefaultProfessionalService) GetProfile(id string) (*models.Professional, error) {
	return s.Repo.GetByID(id)
}

// ListProfessionals returns all professionals with credentials stripped.
func (s *DefaultProfessionalService) ListProfessionals() ([]models.Professional, error) {
	profs, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.Professional, 0, len(profs))
	for _, p := range profs {
		out = append(out, p.PublicView())
	}
	return out, nil
}

// UpdateProfile applies the non-nil fields of the update and returns the
// refreshed document.
func (s *DefaultProfessionalService) UpdateProfile(id string, update ProfileUpdate) (*models.Professional, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("name must not be empty")
		}
		fields["name"] = name
	}
	if update.Specialty != nil {
		fields["specialty"] = strings.TrimSpace(*update.Specialty)
	}
	if update.Bio != nil {
		fields["bio"] = strings.TrimSpace(*update.Bio)
	}
	if update.SlotIntervalMinutes != nil {
		if *update.SlotIntervalMinutes <= 0 {
			return nil, fmt.Errorf("slot interval must be positive")
		}
		fields["slotIntervalMinutes"] = *update.SlotIntervalMinutes
	}
	if update.FCMToken != nil {
		fields["security.fcmToken"] = *update.FCMToken
	}
	if len(fields) == 0 {
		return s.Repo.GetByID(id)
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// UploadPhoto stores a new profile photo and records its URL.
func (s *DefaultProfessionalService) UploadPhoto(ctx context.Context, id, localFilePath string) (string, error) {
	if s.Storage == nil {
		return "", fmt.Errorf("photo storage is not configured")
	}
	url, err := s.Storage.UploadPhoto(ctx, localFilePath, "professionals")
	if err != nil {
		return "", err
	}
	if err := s.Repo.UpdateFields(id, map[string]interface{}{"photoUrl": url}); err != nil {
		return "", err
	}
	return url, nil
}
