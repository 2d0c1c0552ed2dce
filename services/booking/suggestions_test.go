package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomly/models"
)

func newTestSuggestions(rooms *fakeRoomRepo, bookings *fakeBookingRepo) *DefaultSuggestionEngine {
	return &DefaultSuggestionEngine{
		Availability: newTestAvailability(rooms, bookings),
		RoomRepo:     rooms,
		DayStart:     8 * 60,
		DayEnd:       20 * 60,
		Limit:        3,
	}
}

func TestAlternativesSkipsRequestedSlotAndCapsLimit(t *testing.T) {
	engine := newTestSuggestions(testCatalog(), &fakeBookingRepo{})

	alts := engine.Alternatives("2026-04-01", 600, 660, models.SiteBeijing, 4)

	require.Len(t, alts.Times, 3)
	assert.Equal(t, "08:00-09:00", alts.Times[0].Label)
	assert.Equal(t, "09:00-10:00", alts.Times[1].Label)
	// 10:00 is the window that failed, so the scan jumps to 11:00.
	assert.Equal(t, "11:00-12:00", alts.Times[2].Label)
}

func TestAlternativesPreservesDuration(t *testing.T) {
	engine := newTestSuggestions(testCatalog(), &fakeBookingRepo{})

	// A two-hour request proposes two-hour windows.
	alts := engine.Alternatives("2026-04-01", 600, 720, models.SiteBeijing, 4)
	require.NotEmpty(t, alts.Times)
	for _, window := range alts.Times {
		assert.Equal(t, 120, window.End-window.Start)
	}
}

func TestAlternativesOtherSiteInventory(t *testing.T) {
	engine := newTestSuggestions(testCatalog(), &fakeBookingRepo{})

	alts := engine.Alternatives("2026-04-01", 600, 660, models.SiteBeijing, 9)

	// Beijing tops out at 8 seats; Shanghai has one 10-seat room.
	require.Len(t, alts.Locations, 1)
	assert.Equal(t, models.SiteShanghai, alts.Locations[0].Location)
	assert.Equal(t, 1, alts.Locations[0].Count)
}

func TestAlternativesEmptyWhenNothingFits(t *testing.T) {
	engine := newTestSuggestions(testCatalog(), &fakeBookingRepo{})

	alts := engine.Alternatives("2026-04-01", 600, 660, models.SiteBeijing, 50)
	assert.True(t, alts.IsEmpty())
}

func TestAlternativesSkipsBusySlots(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []models.Room{
		{ID: "BJ-01", Name: "Beijing Room 1", Location: models.SiteBeijing, Capacity: 5},
	}}
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "b1", RoomID: "BJ-01", AppointmentID: "a1", Date: "2026-04-01", Start: 8 * 60, End: 9 * 60},
		{ID: "b2", RoomID: "BJ-01", AppointmentID: "a2", Date: "2026-04-01", Start: 9 * 60, End: 10 * 60},
	}}
	engine := newTestSuggestions(rooms, bookings)

	alts := engine.Alternatives("2026-04-01", 600, 660, models.SiteBeijing, 4)
	require.NotEmpty(t, alts.Times)
	assert.Equal(t, "11:00-12:00", alts.Times[0].Label)
}
