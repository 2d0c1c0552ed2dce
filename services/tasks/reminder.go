package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"roomly/config"
	"roomly/models"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(reminderTaskID(payload.AppointmentID)),
	}

	return task, opts, nil
}

// ReminderScheduler enqueues and withdraws appointment reminders. One
// reminder exists per appointment at most; rescheduling replaces it.
type ReminderScheduler interface {
	Schedule(payload models.ReminderPayload, fireAt time.Time) error
	Drop(appointmentID string) error
}

// AsynqReminderScheduler is the production scheduler backed by the reminder
// queue in Redis.
type AsynqReminderScheduler struct {
	client    *asynq.Client
	inspector *asynq.Inspector
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
	return &AsynqReminderScheduler{
		client:    asynq.NewClient(redisOpts),
		inspector: asynq.NewInspector(redisOpts),
	}
}

func (s *AsynqReminderScheduler) Schedule(payload models.ReminderPayload, fireAt time.Time) error {
	// Replace any reminder already queued for this appointment.
	_ = s.Drop(payload.AppointmentID)

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("could not build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("could not enqueue reminder: %w", err)
	}
	return nil
}

func (s *AsynqReminderScheduler) Drop(appointmentID string) error {
	err := s.inspector.DeleteTask("default", reminderTaskID(appointmentID))
	if err != nil && !errors.Is(err, asynq.ErrTaskNotFound) {
		return fmt.Errorf("could not drop reminder for appointment %s: %w", appointmentID, err)
	}
	return nil
}

func reminderTaskID(appointmentID string) string {
	return "reminder:" + appointmentID
}
