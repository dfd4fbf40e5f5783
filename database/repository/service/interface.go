package serviceRepo

import "beautybook/models"

// ServiceRepository abstracts persistence for the service catalog.
type ServiceRepository interface {
	Create(svc *models.Service) error
	Update(svc *models.Service) error
	Delete(id string) error
	GetByID(id string) (*models.Service, error)
	GetByIDs(ids []string) ([]models.Service, error)
	GetAll() ([]models.Service, error)
}
