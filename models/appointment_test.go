package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeetingMode(t *testing.T) {
	mode, err := ParseMeetingMode("Offline")
	require.NoError(t, err)
	assert.Equal(t, ModeOffline, mode)

	mode, err = ParseMeetingMode(" online ")
	require.NoError(t, err)
	assert.Equal(t, ModeOnline, mode)

	_, err = ParseMeetingMode("hybrid")
	assert.Error(t, err)
}

func TestAppointmentUpdateApply(t *testing.T) {
	base := Appointment{
		ID:        "a1",
		DateTime:  "2026-04-01 10:00",
		Title:     "Planning",
		Location:  "Beijing",
		Mode:      ModeOffline,
		Attendees: 4,
	}

	assert.True(t, AppointmentUpdate{}.Empty())

	newTitle := "Replanning"
	newAttendees := 8
	update := AppointmentUpdate{Title: &newTitle, Attendees: &newAttendees}
	assert.False(t, update.Empty())

	merged := update.Apply(base)
	assert.Equal(t, "Replanning", merged.Title)
	assert.Equal(t, 8, merged.Attendees)
	// Untouched fields carry over.
	assert.Equal(t, base.DateTime, merged.DateTime)
	assert.Equal(t, base.Mode, merged.Mode)

	// The base is not mutated.
	assert.Equal(t, "Planning", base.Title)
	assert.Equal(t, 4, base.Attendees)
}
