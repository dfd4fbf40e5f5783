package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"beautybook/config"
	appointmentRepo "beautybook/database/repository/appointment"
	professionalRepo "beautybook/database/repository/professional"
	"beautybook/services/notification"
	"beautybook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(
	notifSvc notification.NotificationService,
	appointments appointmentRepo.AppointmentRepository,
	professionals professionalRepo.ProfessionalRepository,
) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(notifSvc, appointments, professionals))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(
	notifSvc notification.NotificationService,
	appointments appointmentRepo.AppointmentRepository,
	professionals professionalRepo.ProfessionalRepository,
) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		appt, err := appointments.GetByID(p.AppointmentID)
		if err != nil {
			// Appointment may have been removed since scheduling.
			log.Printf("[ReminderHandler] appointment %s unavailable: %v", p.AppointmentID, err)
			return nil
		}
		prof, err := professionals.GetByID(p.ProfessionalID)
		if err != nil {
			log.Printf("[ReminderHandler] professional %s unavailable: %v", p.ProfessionalID, err)
			return nil
		}

		if err := notifSvc.SendAppointmentReminder(ctx, *prof, *appt); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for %s: %v", p.AppointmentID, err)
			return err
		}
		return nil
	}
}
