package booking

import (
	"fmt"
	"sort"

	"roomly/database/repository"
	"roomly/models"
)

// AvailabilityEngine computes which rooms can satisfy a request window.
type AvailabilityEngine interface {
	// FindAvailable returns the rooms at site free over [start, end) on date
	// with capacity >= minCapacity, smallest sufficient room first. An unknown
	// site yields an empty result, not an error.
	FindAvailable(date string, start, end int, site models.Site, minCapacity int) ([]models.Room, error)
}

// DefaultAvailabilityEngine is the production implementation, reading the
// room catalog and the booking ledger.
type DefaultAvailabilityEngine struct {
	RoomRepo    repository.RoomRepository
	BookingRepo repository.BookingRepository
}

func (ae *DefaultAvailabilityEngine) FindAvailable(date string, start, end int, site models.Site, minCapacity int) ([]models.Room, error) {
	if start >= end {
		return nil, NewError(CodeValidation, fmt.Sprintf("start %s is not before end %s",
			models.FormatClock(start), models.FormatClock(end)))
	}
	if minCapacity < 1 {
		return nil, NewError(CodeValidation, "required capacity must be at least 1")
	}
	if !models.IsKnownSite(site) {
		// No inventory outside the known sites.
		return nil, nil
	}

	candidates, err := ae.RoomRepo.ListWithCapacity(site, minCapacity)
	if err != nil {
		return nil, fmt.Errorf("error listing candidate rooms: %w", err)
	}

	var available []models.Room
	for _, room := range candidates {
		conflicts, err := ae.BookingRepo.FindOverlapping(room.ID, date, start, end)
		if err != nil {
			return nil, fmt.Errorf("error checking conflicts for room %s: %w", room.ID, err)
		}
		if len(conflicts) == 0 {
			available = append(available, room)
		}
	}

	// Greedy best-fit: smallest sufficient capacity first, ties by id. The
	// ordering contract lives here rather than in the repository so every
	// RoomRepository implementation behaves identically.
	sort.SliceStable(available, func(i, j int) bool {
		if available[i].Capacity != available[j].Capacity {
			return available[i].Capacity < available[j].Capacity
		}
		return available[i].ID < available[j].ID
	})
	return available, nil
}
