package models

// ReminderPayload is the queued reminder for an upcoming appointment.
type ReminderPayload struct {
	AppointmentID string `json:"appointment_id"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fire_date"` // RFC3339 instant the reminder targets
}
