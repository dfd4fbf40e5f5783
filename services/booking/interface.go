package booking

import (
	"context"
	"time"

	"beautybook/models"
)

// BookingRequest carries the client-supplied fields of a booking attempt.
type BookingRequest struct {
	ProfessionalID string    `json:"professionalId"`
	ServiceID      string    `json:"serviceId"`
	ClientName     string    `json:"clientName"`
	ClientContact  string    `json:"clientContact"`
	Start          time.Time `json:"start"`
}

// ReminderScheduler enqueues an appointment reminder to fire ahead of the
// appointment start.
type ReminderScheduler interface {
	ScheduleReminder(appt models.Appointment) error
}

// BookingService validates and submits bookings and resolves availability
// into bookable slots.
type BookingService interface {
	Submit(ctx context.Context, req BookingRequest) (*models.Appointment, error)
	DaySlots(professionalID, serviceID string, date time.Time) ([]models.CandidateSlot, error)
	MonthAvailability(professionalID, serviceID string, year int, month time.Month, loc *time.Location) ([]models.DayAvailability, error)
}
