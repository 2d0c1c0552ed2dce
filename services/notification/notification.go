package notification

import (
	"context"

	"go.uber.org/zap"

	"roomly/utils"
)

// NotificationService delivers appointment reminders. Push and chat delivery
// belong to the conversational layer in front of this engine, so the default
// implementation records reminders in the structured log where that layer
// picks them up.
type NotificationService interface {
	SendAppointmentReminder(ctx context.Context, appointmentID, title, body string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct{}

func (s *DefaultNotificationService) SendAppointmentReminder(ctx context.Context, appointmentID, title, body string) error {
	utils.GetLogger().Info("appointment reminder",
		zap.String("appointment_id", appointmentID),
		zap.String("title", title),
		zap.String("body", body),
	)
	return nil
}
