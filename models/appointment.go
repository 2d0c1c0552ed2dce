package models

import (
	"fmt"
	"strings"
)

// MeetingMode distinguishes appointments that need a physical room.
type MeetingMode string

const (
	ModeOnline  MeetingMode = "online"
	ModeOffline MeetingMode = "offline"
)

// ParseMeetingMode normalizes a free-text mode to the closed enumeration.
func ParseMeetingMode(raw string) (MeetingMode, error) {
	switch MeetingMode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeOnline:
		return ModeOnline, nil
	case ModeOffline:
		return ModeOffline, nil
	}
	return "", fmt.Errorf("invalid meeting mode %q: expected online or offline", raw)
}

// Appointment is a scheduled event. Offline appointments own zero or one room
// booking; deleting the appointment cascades to the booking.
type Appointment struct {
	ID          string      `bson:"id" json:"id"`
	DateTime    string      `bson:"date_time" json:"date_time"` // "YYYY-MM-DD HH:MM"
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description" json:"description"`
	Location    string      `bson:"location" json:"location"` // free text as supplied by the caller
	Mode        MeetingMode `bson:"meeting_mode" json:"meeting_mode"`
	Attendees   int         `bson:"attendees,omitempty" json:"attendees,omitempty"`
}

// AppointmentUpdate is an explicit partial update: nil fields are left
// unchanged, so "unset" is never conflated with an explicit zero value.
type AppointmentUpdate struct {
	DateTime    *string      `json:"date_time,omitempty"`
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Location    *string      `json:"location,omitempty"`
	Mode        *MeetingMode `json:"meeting_mode,omitempty"`
	Attendees   *int         `json:"attendees,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u AppointmentUpdate) Empty() bool {
	return u.DateTime == nil && u.Title == nil && u.Description == nil &&
		u.Location == nil && u.Mode == nil && u.Attendees == nil
}

// Apply overlays the update onto an appointment and returns the result.
func (u AppointmentUpdate) Apply(a Appointment) Appointment {
	if u.DateTime != nil {
		a.DateTime = *u.DateTime
	}
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.Description != nil {
		a.Description = *u.Description
	}
	if u.Location != nil {
		a.Location = *u.Location
	}
	if u.Mode != nil {
		a.Mode = *u.Mode
	}
	if u.Attendees != nil {
		a.Attendees = *u.Attendees
	}
	return a
}

// AppointmentView is an appointment with its room booking resolved for
// listing, mirroring what the assistant surfaces to the end user.
type AppointmentView struct {
	Appointment `json:",inline" bson:",inline"`
	RoomBooking *BookingSummary `json:"room_booking,omitempty" bson:"-"`
}
