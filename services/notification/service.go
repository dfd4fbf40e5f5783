package notification

import (
	"context"
	"fmt"

	"beautybook/models"
	"beautybook/utils"

	"firebase.google.com/go/v4/messaging"
)

// DefaultNotificationService is the production FCM implementation.
type DefaultNotificationService struct{}

func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{}
}

// SendBookingConfirmation pushes a "new booking" notice to the professional's
// registered device.
func (s *DefaultNotificationService) SendBookingConfirmation(
	ctx context.Context,
	prof models.Professional,
	appt models.Appointment,
	svc models.Service,
) error {
	title := fmt.Sprintf("Novo agendamento: %s", svc.Name)
	body := fmt.Sprintf("%s agendou %s para %s.",
		appt.ClientName, svc.Name, appt.Start.Format("02/01 15:04"))
	return s.send(ctx, prof, title, body, map[string]string{
		"type":          "bookingConfirmed",
		"appointmentId": appt.ID,
	})
}

// SendAppointmentReminder pushes an upcoming-appointment reminder.
func (s *DefaultNotificationService) SendAppointmentReminder(
	ctx context.Context,
	prof models.Professional,
	appt models.Appointment,
) error {
	title := "Lembrete de agendamento"
	body := fmt.Sprintf("%s chega às %s.", appt.ClientName, appt.Start.Format("15:04"))
	return s.send(ctx, prof, title, body, map[string]string{
		"type":          "appointmentReminder",
		"appointmentId": appt.ID,
	})
}

func (s *DefaultNotificationService) send(
	ctx context.Context,
	prof models.Professional,
	title, body string,
	data map[string]string,
) error {
	token := prof.Security.FCMToken
	if token == "" {
		return fmt.Errorf("professional %s has no FCM token", prof.ID)
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message to professional %s: %w", prof.ID, err)
	}
	return nil
}
