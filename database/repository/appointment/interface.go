package appointmentRepo

import (
	"errors"
	"time"

	"beautybook/models"
)

// ErrSlotConflict is returned by Create when the requested window overlaps an
// existing appointment for the same professional. Write-time re-validation is
// deliberate: two bookers can pass the client-side overlap check before
// either write lands, and the store is the last line of defense.
var ErrSlotConflict = errors.New("requested time overlaps an existing appointment")

// AppointmentRepository is the persistence boundary for appointments. Reads
// return every appointment for a professional regardless of date; date
// filtering is the scheduling engine's job.
type AppointmentRepository interface {
	Create(draft models.AppointmentDraft) (*models.Appointment, error)
	GetByProfessional(professionalID string) ([]models.Appointment, error)
	GetStartingBetween(from, to time.Time) ([]models.Appointment, error)
	GetByID(id string) (*models.Appointment, error)
}
