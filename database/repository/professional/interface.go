package professionalRepo

import "beautybook/models"

// ProfessionalRepository abstracts persistence for professional accounts.
type ProfessionalRepository interface {
	Create(prof *models.Professional) error
	Update(prof *models.Professional) error
	UpdateFields(id string, fields map[string]interface{}) error
	GetByID(id string) (*models.Professional, error)
	GetByEmail(email string) (*models.Professional, error)
	GetAll() ([]models.Professional, error)
	Delete(id string) error
}
