package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingStatusConfirmed is the only status the engine currently produces.
const BookingStatusConfirmed = "confirmed"

// NewBookingID returns a ledger id in the caller-visible "BOOK-" format.
func NewBookingID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "BOOK-" + hex[:12]
}

// Booking represents a confirmed reservation of one room for one appointment
// over a same-day time window.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	RoomID        string    `bson:"room_id" json:"room_id"`
	AppointmentID string    `bson:"appointment_id" json:"appointment_id"`
	Date          string    `bson:"date" json:"date"`     // "YYYY-MM-DD"
	Start         int       `bson:"start" json:"start"`   // minutes from midnight
	End           int       `bson:"end" json:"end"`       // minutes from midnight, Start < End
	Attendees     int       `bson:"attendees" json:"attendees"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// Overlaps reports whether the booking conflicts with the [start, end) window
// on the given date. Touching intervals do not conflict.
func (b Booking) Overlaps(date string, start, end int) bool {
	return b.Date == date && b.Start < end && start < b.End
}

// BookingSummary is the caller-facing view of a booking with its room
// resolved, as embedded in appointment listings and booking confirmations.
type BookingSummary struct {
	BookingID string `json:"booking_id"`
	RoomID    string `json:"room_id"`
	RoomName  string `json:"room_name"`
	Capacity  int    `json:"capacity"`
	Attendees int    `json:"attendees"`
	Date      string `json:"date"`
	Time      string `json:"time"` // "HH:MM-HH:MM"
}

// Summarize resolves a booking against its room for presentation.
func Summarize(b Booking, room Room) BookingSummary {
	return BookingSummary{
		BookingID: b.ID,
		RoomID:    room.ID,
		RoomName:  room.Name,
		Capacity:  room.Capacity,
		Attendees: b.Attendees,
		Date:      b.Date,
		Time:      FormatClock(b.Start) + "-" + FormatClock(b.End),
	}
}
