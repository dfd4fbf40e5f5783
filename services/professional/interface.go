package professional

import (
	"context"
	"time"

	"beautybook/models"
)

// RegisterRequest carries the fields needed to create an account.
type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Specialty string `json:"specialty"`
}

// ProfileUpdate carries optional profile fields; nil pointers are left
// untouched.
type ProfileUpdate struct {
	Name                *string `json:"name,omitempty"`
	Specialty           *string `json:"specialty,omitempty"`
	Bio                 *string `json:"bio,omitempty"`
	SlotIntervalMinutes *int    `json:"slotIntervalMinutes,omitempty"`
	FCMToken            *string `json:"fcmToken,omitempty"`
}

// ProfessionalService manages professional accounts, their service catalog
// and their weekly availability.
type ProfessionalService interface {
	Register(req RegisterRequest) (*models.Professional, string, error)
	Authenticate(email, password string) (*models.Professional, string, error)

	GetProfile(id string) (*models.Professional, error)
	ListProfessionals() ([]models.Professional, error)
	UpdateProfile(id string, update ProfileUpdate) (*models.Professional, error)
	UploadPhoto(ctx context.Context, id, localFilePath string) (string, error)

	AddService(professionalID string, svc models.Service) (*models.Service, error)
	UpdateService(professionalID string, svc models.Service) error
	DeleteService(professionalID, serviceID string) error
	ListServices(professionalID string) ([]models.Service, error)

	SaveAvailability(professionalID string, av models.WeeklyAvailability) error

	Appointments(professionalID string) ([]models.Appointment, error)
	Clients(professionalID string) ([]models.ClientSummary, error)
	Statistics(professionalID string, now time.Time) (*models.Statistics, error)
}
