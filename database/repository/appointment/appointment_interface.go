package appointmentRepo

import "roomly/models"

// AppointmentRepository defines the interface for appointment data access.
type AppointmentRepository interface {
	// GetByID returns nil without error when the appointment does not exist.
	GetByID(appointmentID string) (*models.Appointment, error)
	// List returns all appointments ordered by date.
	List() ([]models.Appointment, error)
	Create(appointment *models.Appointment) error
	// Update applies a partial update; nil fields are left unchanged.
	Update(appointmentID string, update models.AppointmentUpdate) error
	Delete(appointmentID string) error
}
