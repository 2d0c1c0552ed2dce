package models

// Room represents a bookable meeting room. Rooms are seeded once at startup
// and are never mutated or deleted by the engine.
type Room struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Location Site   `bson:"location" json:"location"`
	Capacity int    `bson:"capacity" json:"capacity"` // maximum attendees
}
