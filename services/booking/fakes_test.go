package booking

import (
	"context"
	"sort"
	"sync"

	bookingRepo "roomly/database/repository/booking"
	"roomly/models"
)

// fakeRoomRepo is an in-memory room catalog for tests.
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
	sort.Slice(out, func(i, j int) bool {
		if out[i].Capacity != out[j].Capacity {
			return out[i].Capacity < out[j].Capacity
		}
		return out[i].ID < out[j].ID
	})
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

func (f *fakeRoomRepo) Count() (int, error) {
	return len(f.rooms), nil
}

func (f *fakeRoomRepo) InsertMany(rooms []models.Room) error {
	f.rooms = append(f.rooms, rooms...)
	return nil
}

// fakeBookingRepo is an in-memory ledger. The mutex makes CreateIfFree and
// ReplaceForAppointment atomic, mirroring the transactional contract.
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
	return f.findOverlappingLocked(roomID, date, start, end, ""), nil
}

func (f *fakeBookingRepo) findOverlappingLocked(roomID, date string, start, end int, excludeAppointment string) []models.Booking {
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
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
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
	f.deleteByAppointmentLocked(appointmentID)
	return nil
}

func (f *fakeBookingRepo) deleteByAppointmentLocked(appointmentID string) {
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
	if len(f.findOverlappingLocked(booking.RoomID, booking.Date, booking.Start, booking.End, "")) > 0 {
		return &bookingRepo.ErrRoomBusy{RoomID: booking.RoomID, Date: booking.Date}
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) ReplaceForAppointment(ctx context.Context, appointmentID string, replacement *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.findOverlappingLocked(replacement.RoomID, replacement.Date, replacement.Start, replacement.End, appointmentID)) > 0 {
		return &bookingRepo.ErrRoomBusy{RoomID: replacement.RoomID, Date: replacement.Date}
	}
	f.deleteByAppointmentLocked(appointmentID)
	f.bookings = append(f.bookings, *replacement)
	return nil
}
