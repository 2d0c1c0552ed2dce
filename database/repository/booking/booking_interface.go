package bookingRepo

import (
	"context"

	"roomly/models"
)

// BookingRepository defines the booking ledger: confirmed reservations keyed
// by room and by owning appointment.
type BookingRepository interface {
	GetByID(bookingID string) (*models.Booking, error)
	// GetByAppointment returns the live booking owned by an appointment, or
	// nil when none exists. An appointment owns at most one booking.
	GetByAppointment(appointmentID string) (*models.Booking, error)
	// FindOverlapping returns live bookings on a room for a date that overlap
	// [start, end) under the canonical interval test.
	FindOverlapping(roomID, date string, start, end int) ([]models.Booking, error)
	// ListByRoom returns a room's bookings for a date, ordered by start time.
	ListByRoom(roomID, date string) ([]models.Booking, error)
	Create(booking *models.Booking) error
	// DeleteByAppointment removes any booking owned by the appointment. It is
	// idempotent: deleting a missing booking is not an error.
	DeleteByAppointment(appointmentID string) error
	DeleteByID(bookingID string) error
	// UpdateAttendees changes the attendee count of an appointment's booking
	// in place, without reassigning the room.
	UpdateAttendees(appointmentID string, attendees int) error

	// CreateIfFree re-checks the room for conflicts and inserts the booking as
	// one atomic unit, closing the race between two concurrent callers that
	// both observed the room as available.
	CreateIfFree(ctx context.Context, booking *models.Booking) error
	// ReplaceForAppointment deletes the appointment's current booking and
	// inserts the replacement as one atomic unit, so no reader ever observes
	// the appointment without a booking mid-resize.
	ReplaceForAppointment(ctx context.Context, appointmentID string, replacement *models.Booking) error
}

// ErrRoomBusy is returned by CreateIfFree and ReplaceForAppointment when the
// transactional re-check finds a conflicting booking.
type ErrRoomBusy struct {
	RoomID string
	Date   string
}

func (e *ErrRoomBusy) Error() string {
	return "room " + e.RoomID + " has a conflicting booking on " + e.Date
}
