package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	bookingRepoPkg "roomly/database/repository/booking"
	"roomly/models"
)

// fakeAppointmentRepo is an in-memory appointment store.
type fakeAppointmentRepo struct {
	appointments map[string]models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]models.Appointment)}
}

func (f *fakeAppointmentRepo) GetByID(appointmentID string) (*models.Appointment, error) {
	appt, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	return &appt, nil
}

func (f *fakeAppointmentRepo) List() ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range f.appointments {
		out = append(out, appt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime < out[j].DateTime })
	return out, nil
}

func (f *fakeAppointmentRepo) Create(appointment *models.Appointment) error {
	f.appointments[appointment.ID] = *appointment
	return nil
}

func (f *fakeAppointmentRepo) Update(appointmentID string, update models.AppointmentUpdate) error {
	appt := f.appointments[appointmentID]
	f.appointments[appointmentID] = update.Apply(appt)
	return nil
}

func (f *fakeAppointmentRepo) Delete(appointmentID string) error {
	delete(f.appointments, appointmentID)
	return nil
}

// fakeRoomRepo is an in-memory room catalog.
type fakeRoomRepo struct {
	rooms []models.Room
}

func (f *fakeRoomRepo) GetByID(roomID string) (*models.Room, error) {
	for _, room := range f.rooms {
		if room.ID == roomID {
			r := room
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) List(site models.Site) ([]models.Room, error) {
	var out []models.Room
	for _, room := range f.rooms {
		if site == "" || room.Location == site {
			out = append(out, room)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) ListWithCapacity(site models.Site, minCapacity int) ([]models.Room, error) {
	var out []models.Room
	for _, room := range f.rooms {
		if room.Location == site && room.Capacity >= minCapacity {
			out = append(out, room)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) CountWithCapacity(site models.Site, minCapacity int) (int, error) {
	count := 0
	for _, room := range f.rooms {
		if room.Location == site && room.Capacity >= minCapacity {
			count++
		}
	}
	return count, nil
}

func (f *fakeRoomRepo) Count() (int, error) { return len(f.rooms), nil }

func (f *fakeRoomRepo) InsertMany(rooms []models.Room) error {
	f.rooms = append(f.rooms, rooms...)
	return nil
}

// fakeBookingRepo is an in-memory booking ledger.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (f *fakeBookingRepo) GetByID(bookingID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == bookingID {
			booking := b
			return &booking, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetByAppointment(appointmentID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.AppointmentID == appointmentID {
			booking := b
			return &booking, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindOverlapping(roomID, date string, start, end int) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.overlapping(roomID, date, start, end, ""), nil
}

func (f *fakeBookingRepo) overlapping(roomID, date string, start, end int, excludeAppointment string) []models.Booking {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.RoomID != roomID {
			continue
		}
		if excludeAppointment != "" && b.AppointmentID == excludeAppointment {
			continue
		}
		if b.Overlaps(date, start, end) {
			out = append(out, b)
		}
	}
	return out
}

func (f *fakeBookingRepo) ListByRoom(roomID, date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) DeleteByAppointment(appointmentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dropAppointment(appointmentID)
	return nil
}

func (f *fakeBookingRepo) dropAppointment(appointmentID string) {
	kept := f.bookings[:0]
	for _, b := range f.bookings {
		if b.AppointmentID != appointmentID {
			kept = append(kept, b)
		}
	}
	f.bookings = kept
}

func (f *fakeBookingRepo) DeleteByID(bookingID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.bookings[:0]
	for _, b := range f.bookings {
		if b.ID != bookingID {
			kept = append(kept, b)
		}
	}
	f.bookings = kept
	return nil
}

func (f *fakeBookingRepo) UpdateAttendees(appointmentID string, attendees int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].AppointmentID == appointmentID {
			f.bookings[i].Attendees = attendees
		}
	}
	return nil
}

func (f *fakeBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.overlapping(booking.RoomID, booking.Date, booking.Start, booking.End, "")) > 0 {
		return &bookingRepoPkg.ErrRoomBusy{RoomID: booking.RoomID, Date: booking.Date}
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) ReplaceForAppointment(ctx context.Context, appointmentID string, replacement *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.overlapping(replacement.RoomID, replacement.Date, replacement.Start, replacement.End, appointmentID)) > 0 {
		return &bookingRepoPkg.ErrRoomBusy{RoomID: replacement.RoomID, Date: replacement.Date}
	}
	f.dropAppointment(appointmentID)
	f.bookings = append(f.bookings, *replacement)
	return nil
}

// fakeReminderScheduler records schedule and drop calls.
type fakeReminderScheduler struct {
	scheduled map[string]time.Time
	dropped   []string
}

func newFakeReminderScheduler() *fakeReminderScheduler {
	return &fakeReminderScheduler{scheduled: make(map[string]time.Time)}
}

func (f *fakeReminderScheduler) Schedule(payload models.ReminderPayload, fireAt time.Time) error {
	f.scheduled[payload.AppointmentID] = fireAt
	return nil
}

func (f *fakeReminderScheduler) Drop(appointmentID string) error {
	f.dropped = append(f.dropped, appointmentID)
	return nil
}
