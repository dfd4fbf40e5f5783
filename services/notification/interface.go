package notification

import (
	"context"

	"beautybook/models"
)

// NotificationService sends FCM pushes to professionals. Booking success does
// not depend on it: callers treat every error as log-and-continue.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, prof models.Professional, appt models.Appointment, svc models.Service) error
	SendAppointmentReminder(ctx context.Context, prof models.Professional, appt models.Appointment) error
}
