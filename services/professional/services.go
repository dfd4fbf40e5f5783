package professional

import (
	"fmt"
	"strings"
	"time"

	"beautybook/models"

	"github.com/google/uuid"
)

func validateService(svc models.Service) error {
	if strings.TrimSpace(svc.Name) == "" {
		return fmt.Errorf("service name must not be empty")
	}
	if svc.DurationMinutes <= 0 {
		return fmt.Errorf("service duration must be positive")
	}
	if svc.Price < 0 {
		return fmt.Errorf("service price must not be negative")
	}
	return nil
}

// AddService creates a catalog entry and appends its id to the
// professional's offering list.
func (s *DefaultProfessionalService) AddService(professionalID string, svc models.Service) (*models.Service, error) {
	if err := validateService(svc); err != nil {
		return nil, err
	}
	prof, err := s.Repo.GetByID(professionalID)
	if err != nil {
		return nil, err
	}

	svc.ID = uuid.New().String()
	svc.Name = strings.TrimSpace(svc.Name)
	svc.CreatedAt = time.Now()
	if err := s.ServiceRepo.Create(&svc); err != nil {
		return nil, err
	}

	ids := append(prof.ServiceIDs, svc.ID)
	if err := s.Repo.UpdateFields(professionalID, map[string]interface{}{"serviceIds": ids}); err != nil {
		return nil, err
	}
	return &svc, nil
}

// UpdateService replaces a catalog entry the professional offers.
func (s *DefaultProfessionalService) UpdateService(professionalID string, svc models.Service) error {
	if err := validateService(svc); err != nil {
		return err
	}
	prof, err := s.Repo.GetByID(professionalID)
	if err != nil {
		return err
	}
	if !containsID(prof.ServiceIDs, svc.ID) {
		return fmt.Errorf("professional %s does not offer service %s", professionalID, svc.ID)
	}
	return s.ServiceRepo.Update(&svc)
}

// DeleteService removes the id from the professional's offering list, then
// deletes the catalog entry.
func (s *DefaultProfessionalService) DeleteService(professionalID, serviceID string) error {
	prof, err := s.Repo.GetByID(professionalID)
	if err != nil {
		return err
	}
	if !containsID(prof.ServiceIDs, serviceID) {
		return fmt.Errorf("professional %s does not offer service %s", professionalID, serviceID)
	}

	ids := make([]string, 0, len(prof.ServiceIDs)-1)
	for _, id := range prof.ServiceIDs {
		if id != serviceID {
			ids = append(ids, id)
		}
	}
	if err := s.Repo.UpdateFields(professionalID, map[string]interface{}{"serviceIds": ids}); err != nil {
		return err
	}
	return s.ServiceRepo.Delete(serviceID)
}

// ListServices returns the professional's catalog entries.
func (s *DefaultProfessionalService) ListServices(professionalID string) ([]models.Service, error) {
	prof, err := s.Repo.GetByID(professionalID)
	if err != nil {
		return nil, err
	}
	if len(prof.ServiceIDs) == 0 {
		return []models.Service{}, nil
	}
	return s.ServiceRepo.GetByIDs(prof.ServiceIDs)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
