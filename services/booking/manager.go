package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roomly/database/repository"
	bookingRepo "roomly/database/repository/booking"
	"roomly/models"
)

// Manager orchestrates create/cancel/resize of the single booking an
// appointment may own. Every mutation re-validates availability and commits
// through the ledger's transactional methods.
type Manager interface {
	// Create books a specific room after re-validating that it exists and is
	// still free and large enough for the window.
	Create(appointmentID, roomID, date string, start, end, attendees int) (*models.BookingSummary, error)
	// Cancel removes any booking owned by the appointment. Idempotent.
	Cancel(appointmentID string) error
	// Resize adjusts an appointment's booking to a new attendee count and/or
	// window, reassigning the room only when the current one no longer fits.
	Resize(req ResizeRequest) (*models.BookingSummary, error)
}

// ResizeRequest describes the desired end state of an appointment's booking.
// Attendees is nil when the caller did not supply a count.
type ResizeRequest struct {
	AppointmentID string
	Attendees     *int
	Date          string
	Start         int
	End           int
	Site          models.Site
}

// DefaultManager is the production Manager implementation.
type DefaultManager struct {
	RoomRepo     repository.RoomRepository
	BookingRepo  repository.BookingRepository
	Availability AvailabilityEngine
}

const mutationTimeout = 5 * time.Second

func (m *DefaultManager) Create(appointmentID, roomID, date string, start, end, attendees int) (*models.BookingSummary, error) {
	room, err := m.RoomRepo.GetByID(roomID)
	if err != nil {
		return nil, fmt.Errorf("error fetching room %s: %w", roomID, err)
	}
	if room == nil {
		return nil, NewError(CodeRoomNotFound, fmt.Sprintf("room %s does not exist", roomID))
	}

	// Distinguishes "room does not exist" (above) from "room is busy or too
	// small" (here): the room must still appear in the availability set.
	available, err := m.Availability.FindAvailable(date, start, end, room.Location, attendees)
	if err != nil {
		return nil, err
	}
	if !containsRoom(available, roomID) {
		return nil, NewError(CodeRoomUnavailable, fmt.Sprintf("room %s is not available on %s %s-%s for %d attendees",
			roomID, date, models.FormatClock(start), models.FormatClock(end), attendees))
	}

	booking := &models.Booking{
		ID:            models.NewBookingID(),
		RoomID:        room.ID,
		AppointmentID: appointmentID,
		Date:          date,
		Start:         start,
		End:           end,
		Attendees:     attendees,
		Status:        models.BookingStatusConfirmed,
		CreatedAt:     time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
	defer cancel()
	if err := m.BookingRepo.CreateIfFree(ctx, booking); err != nil {
		var busy *bookingRepo.ErrRoomBusy
		if errors.As(err, &busy) {
			// A concurrent caller won the window between our check and commit.
			return nil, NewError(CodeRoomUnavailable, fmt.Sprintf("room %s was booked concurrently", roomID))
		}
		return nil, fmt.Errorf("error creating booking: %w", err)
	}

	summary := models.Summarize(*booking, *room)
	return &summary, nil
}

func (m *DefaultManager) Cancel(appointmentID string) error {
	if err := m.BookingRepo.DeleteByAppointment(appointmentID); err != nil {
		return fmt.Errorf("error cancelling booking for appointment %s: %w", appointmentID, err)
	}
	return nil
}

func (m *DefaultManager) Resize(req ResizeRequest) (*models.BookingSummary, error) {
	existing, err := m.BookingRepo.GetByAppointment(req.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching booking for appointment %s: %w", req.AppointmentID, err)
	}

	if existing == nil {
		return m.createFresh(req)
	}

	room, err := m.RoomRepo.GetByID(existing.RoomID)
	if err != nil {
		return nil, fmt.Errorf("error fetching room %s: %w", existing.RoomID, err)
	}
	if room == nil {
		return nil, NewError(CodeRoomNotFound, fmt.Sprintf("room %s does not exist", existing.RoomID))
	}

	attendees := existing.Attendees
	if req.Attendees != nil {
		attendees = *req.Attendees
	}
	windowChanged := req.Date != existing.Date || req.Start != existing.Start || req.End != existing.End

	// Same window, still fits: adjust the count in place, no room change.
	if !windowChanged && attendees <= room.Capacity {
		if attendees != existing.Attendees {
			if err := m.BookingRepo.UpdateAttendees(req.AppointmentID, attendees); err != nil {
				return nil, fmt.Errorf("error updating attendee count: %w", err)
			}
		}
		updated := *existing
		updated.Attendees = attendees
		summary := models.Summarize(updated, *room)
		return &summary, nil
	}

	// The window moved but the current room still fits: keeping the same room
	// is preferred, and the transactional replace ignores the appointment's
	// own old booking when checking for conflicts.
	if attendees <= room.Capacity {
		summary, err := m.replace(req.AppointmentID, *room, req.Date, req.Start, req.End, attendees)
		if err == nil {
			return summary, nil
		}
		if !HasCode(err, CodeRoomUnavailable) {
			return nil, err
		}
	}

	// Search for another room meeting the (possibly larger) requirement.
	candidates, err := m.Availability.FindAvailable(req.Date, req.Start, req.End, req.Site, attendees)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		if attendees > room.Capacity {
			// Old booking stays untouched.
			return nil, NewError(CodeNoLargerRoom, fmt.Sprintf("no room at %s holds %d attendees for %s %s-%s",
				req.Site, attendees, req.Date, models.FormatClock(req.Start), models.FormatClock(req.End)))
		}
		return nil, NewError(CodeRoomUnavailable, fmt.Sprintf("no room at %s is free on %s %s-%s",
			req.Site, req.Date, models.FormatClock(req.Start), models.FormatClock(req.End)))
	}
	return m.replace(req.AppointmentID, candidates[0], req.Date, req.Start, req.End, attendees)
}

// createFresh handles a resize for an appointment with no live booking, which
// behaves like a best-fit create.
func (m *DefaultManager) createFresh(req ResizeRequest) (*models.BookingSummary, error) {
	if req.Attendees == nil {
		return nil, NewError(CodeMissingAttendees, "attendee count is required to book a room")
	}
	candidates, err := m.Availability.FindAvailable(req.Date, req.Start, req.End, req.Site, *req.Attendees)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, NewError(CodeRoomUnavailable, fmt.Sprintf("no room at %s is free on %s %s-%s for %d attendees",
			req.Site, req.Date, models.FormatClock(req.Start), models.FormatClock(req.End), *req.Attendees))
	}
	return m.Create(req.AppointmentID, candidates[0].ID, req.Date, req.Start, req.End, *req.Attendees)
}

// replace commits a delete-old-insert-new as one atomic unit.
func (m *DefaultManager) replace(appointmentID string, room models.Room, date string, start, end, attendees int) (*models.BookingSummary, error) {
	replacement := &models.Booking{
		ID:            models.NewBookingID(),
		RoomID:        room.ID,
		AppointmentID: appointmentID,
		Date:          date,
		Start:         start,
		End:           end,
		Attendees:     attendees,
		Status:        models.BookingStatusConfirmed,
		CreatedAt:     time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
	defer cancel()
	if err := m.BookingRepo.ReplaceForAppointment(ctx, appointmentID, replacement); err != nil {
		var busy *bookingRepo.ErrRoomBusy
		if errors.As(err, &busy) {
			return nil, NewError(CodeRoomUnavailable, fmt.Sprintf("room %s was booked concurrently", room.ID))
		}
		return nil, fmt.Errorf("error replacing booking: %w", err)
	}
	summary := models.Summarize(*replacement, room)
	return &summary, nil
}

func containsRoom(rooms []models.Room, roomID string) bool {
	for _, room := range rooms {
		if room.ID == roomID {
			return true
		}
	}
	return false
}
