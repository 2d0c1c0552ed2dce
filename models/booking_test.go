package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingID(t *testing.T) {
	id := NewBookingID()
	assert.True(t, strings.HasPrefix(id, "BOOK-"))
	assert.Len(t, id, len("BOOK-")+12)

	// IDs are unique across calls.
	assert.NotEqual(t, id, NewBookingID())
}

func TestBookingOverlaps(t *testing.T) {
	booking := Booking{Date: "2026-04-01", Start: 600, End: 660} // 10:00-11:00

	assert.True(t, booking.Overlaps("2026-04-01", 600, 660), "identical window")
	assert.True(t, booking.Overlaps("2026-04-01", 630, 690), "partial overlap")
	assert.True(t, booking.Overlaps("2026-04-01", 540, 720), "containing window")
	assert.True(t, booking.Overlaps("2026-04-01", 610, 650), "contained window")

	// Touching intervals do not conflict.
	assert.False(t, booking.Overlaps("2026-04-01", 660, 720), "starts at our end")
	assert.False(t, booking.Overlaps("2026-04-01", 540, 600), "ends at our start")

	assert.False(t, booking.Overlaps("2026-04-02", 600, 660), "different date")
}

func TestSummarize(t *testing.T) {
	booking := Booking{
		ID:        "BOOK-abc123def456",
		RoomID:    "BJ-01",
		Date:      "2026-04-01",
		Start:     600,
		End:       660,
		Attendees: 4,
	}
	room := Room{ID: "BJ-01", Name: "Beijing Room 1", Location: SiteBeijing, Capacity: 5}

	summary := Summarize(booking, room)
	assert.Equal(t, "BOOK-abc123def456", summary.BookingID)
	assert.Equal(t, "Beijing Room 1", summary.RoomName)
	assert.Equal(t, 5, summary.Capacity)
	assert.Equal(t, "10:00-11:00", summary.Time)
}
