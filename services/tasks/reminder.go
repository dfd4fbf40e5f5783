package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"beautybook/config"
	"beautybook/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderPayload is the task body for a scheduled appointment reminder.
type ReminderPayload struct {
	AppointmentID  string `json:"appointmentId"`
	ProfessionalID string `json:"professionalId"`
}

// NewReminderTask builds a reminder task scheduled for fireAt.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues reminder tasks ahead of appointment start.
type AsynqReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewAsynqReminderScheduler connects a scheduler to the reminder queue using
// the configured lead time.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{
		client: client,
		lead:   time.Duration(config.AppConfig.ReminderLeadMin) * time.Minute,
	}
}

// ScheduleReminder enqueues a reminder to fire ahead of the appointment.
// Appointments starting sooner than the lead time get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(appt models.Appointment) error {
	fireAt := appt.Start.Add(-s.lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	task, opts, err := NewReminderTask(ReminderPayload{
		AppointmentID:  appt.ID,
		ProfessionalID: appt.ProfessionalID,
	}, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
