package roomRepo

import (
	"context"
	"fmt"
	"time"

	"roomly/database"
	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	roomColl *mongo.Collection
}

// NewMongoRoomRepo constructs a new instance of MongoRoomRepo.
func NewMongoRoomRepo() RoomRepository {
	return &MongoRoomRepo{
		roomColl: database.DB().Collection("rooms"),
	}
}

func (repo *MongoRoomRepo) GetByID(roomID string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var room models.Room
	if err := repo.roomColl.FindOne(ctx, bson.M{"id": roomID}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching room with id %s: %w", roomID, err)
	}
	return &room, nil
}

func (repo *MongoRoomRepo) List(site models.Site) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	sort := bson.D{{Key: "location", Value: 1}, {Key: "capacity", Value: 1}, {Key: "id", Value: 1}}
	if site != "" {
		filter["location"] = site
		sort = bson.D{{Key: "capacity", Value: 1}, {Key: "id", Value: 1}}
	}
	return repo.findRooms(ctx, filter, sort)
}

func (repo *MongoRoomRepo) ListWithCapacity(site models.Site, minCapacity int) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"location": site,
		"capacity": bson.M{"$gte": minCapacity},
	}
	// Smallest sufficient room first; ties broken by id for determinism.
	sort := bson.D{{Key: "capacity", Value: 1}, {Key: "id", Value: 1}}
	return repo.findRooms(ctx, filter, sort)
}

func (repo *MongoRoomRepo) CountWithCapacity(site models.Site, minCapacity int) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"location": site,
		"capacity": bson.M{"$gte": minCapacity},
	}
	count, err := repo.roomColl.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting rooms at %s: %w", site, err)
	}
	return int(count), nil
}

func (repo *MongoRoomRepo) Count() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := repo.roomColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting rooms: %w", err)
	}
	return int(count), nil
}

func (repo *MongoRoomRepo) InsertMany(rooms []models.Room) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(rooms))
	for _, room := range rooms {
		docs = append(docs, room)
	}
	if _, err := repo.roomColl.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error inserting rooms: %w", err)
	}
	return nil
}

func (repo *MongoRoomRepo) findRooms(ctx context.Context, filter bson.M, sort bson.D) ([]models.Room, error) {
	cursor, err := repo.roomColl.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("error fetching rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	for cursor.Next(ctx) {
		var room models.Room
		if err := cursor.Decode(&room); err != nil {
			return nil, fmt.Errorf("error decoding room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return rooms, nil
}
