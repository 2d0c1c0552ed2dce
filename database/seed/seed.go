// Package seed provisions the room catalog on first start. Seeding is
// idempotent: a non-empty catalog is left untouched.
package seed

import (
	"fmt"
	"time"

	"roomly/database/repository"
	"roomly/models"
)

// sitePrefixes drive room ids and display names per site.
var sitePrefixes = map[models.Site]string{
	models.SiteBeijing:  "BJ",
	models.SiteShanghai: "SH",
}

// Rooms seeds 20 rooms per site with a spread of capacities. It returns the
// number of rooms inserted, or 0 when the catalog already has inventory.
func Rooms(repo repository.RoomRepository) (int, error) {
	count, err := repo.Count()
	if err != nil {
		return 0, fmt.Errorf("seed: could not inspect room catalog: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	var rooms []models.Room
	for _, site := range models.KnownSites() {
		prefix := sitePrefixes[site]
		for i := 1; i <= 20; i++ {
			rooms = append(rooms, models.Room{
				ID:       fmt.Sprintf("%s-%02d", prefix, i),
				Name:     fmt.Sprintf("%s %s-%02d", site, prefix, i),
				Location: site,
				Capacity: capacityFor(i),
			})
		}
	}

	if err := repo.InsertMany(rooms); err != nil {
		return 0, fmt.Errorf("seed: could not insert rooms: %w", err)
	}
	return len(rooms), nil
}

// capacityFor spreads capacities across the 20 rooms of a site: a handful of
// small huddle rooms up to a pair of ten-seaters.
func capacityFor(i int) int {
	switch {
	case i <= 4:
		return 2
	case i <= 10:
		return 3 + (i % 2)
	case i <= 15:
		return 5 + (i % 2)
	case i <= 18:
		return 7 + (i % 2)
	default:
		return 9 + (i % 2)
	}
}

// SampleBookings inserts demo reservations over the next few days so a fresh
// environment has visible conflicts to exercise availability against.
func SampleBookings(repo repository.BookingRepository) error {
	today := time.Now()

	insert := func(roomID string, dayOffset, start, end, attendees int) error {
		booking := &models.Booking{
			ID:            models.NewBookingID(),
			RoomID:        roomID,
			AppointmentID: "sample-appointment-id",
			Date:          today.AddDate(0, 0, dayOffset).Format(models.DateLayout),
			Start:         start,
			End:           end,
			Attendees:     attendees,
			Status:        models.BookingStatusConfirmed,
			CreatedAt:     time.Now(),
		}
		return repo.Create(booking)
	}

	for i := 1; i <= 5; i++ {
		roomID := fmt.Sprintf("BJ-%02d", i*2)
		if err := insert(roomID, i, 9*60, 11*60, i+2); err != nil {
			return fmt.Errorf("seed: sample booking failed: %w", err)
		}
		if err := insert(roomID, i, 14*60, 16*60, i+2); err != nil {
			return fmt.Errorf("seed: sample booking failed: %w", err)
		}
	}
	for i := 1; i <= 5; i++ {
		roomID := fmt.Sprintf("SH-%02d", i*3)
		if err := insert(roomID, i+1, 10*60, 12*60, i+3); err != nil {
			return fmt.Errorf("seed: sample booking failed: %w", err)
		}
	}
	return nil
}
