package professional

import (
	appointmentRepo "beautybook/database/repository/appointment"
	professionalRepo "beautybook/database/repository/professional"
	serviceRepo "beautybook/database/repository/service"
	"beautybook/services/storage"
)

// DefaultProfessionalService is the production implementation of
// ProfessionalService.
type DefaultProfessionalService struct {
	Repo            professionalRepo.ProfessionalRepository
	ServiceRepo     serviceRepo.ServiceRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Storage         storage.StorageService
}

func NewDefaultProfessionalService(
	repo professionalRepo.ProfessionalRepository,
	services serviceRepo.ServiceRepository,
	appointments appointmentRepo.AppointmentRepository,
	store storage.StorageService,
) *DefaultProfessionalService {
	return &DefaultProfessionalService{
		Repo:            repo,
		ServiceRepo:     services,
		AppointmentRepo: appointments,
		Storage:         store,
	}
}
