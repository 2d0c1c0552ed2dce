package roomRepo

import "roomly/models"

// RoomRepository defines read access to the seeded room catalog. The catalog
// is immutable after seeding, so there are no update or delete methods.
type RoomRepository interface {
	GetByID(roomID string) (*models.Room, error)
	// List returns every room, ordered by location then capacity. When site is
	// non-empty only that location's rooms are returned, ordered by capacity.
	List(site models.Site) ([]models.Room, error)
	// ListWithCapacity returns rooms at a site with capacity >= minCapacity,
	// ordered by capacity ascending with ties broken by room id.
	ListWithCapacity(site models.Site, minCapacity int) ([]models.Room, error)
	// CountWithCapacity counts rooms at a site with capacity >= minCapacity.
	CountWithCapacity(site models.Site, minCapacity int) (int, error)
	Count() (int, error)
	InsertMany(rooms []models.Room) error
}
