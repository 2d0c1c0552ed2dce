package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	appointmentColl *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &MongoAppointmentRepo{
		appointmentColl: database.DB().Collection("appointments"),
	}
}

func (repo *MongoAppointmentRepo) GetByID(appointmentID string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var appointment models.Appointment
	if err := repo.appointmentColl.FindOne(ctx, bson.M{"id": appointmentID}).Decode(&appointment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching appointment with id %s: %w", appointmentID, err)
	}
	return &appointment, nil
}

func (repo *MongoAppointmentRepo) List() ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "date_time", Value: 1}})
	cursor, err := repo.appointmentColl.Find(ctx, bson.M{}, sort)
	if err != nil {
		return nil, fmt.Errorf("error fetching appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	for cursor.Next(ctx) {
		var appointment models.Appointment
		if err := cursor.Decode(&appointment); err != nil {
			return nil, fmt.Errorf("error decoding appointment: %w", err)
		}
		appointments = append(appointments, appointment)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return appointments, nil
}

func (repo *MongoAppointmentRepo) Create(appointment *models.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.appointmentColl.InsertOne(ctx, appointment); err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

func (repo *MongoAppointmentRepo) Update(appointmentID string, update models.AppointmentUpdate) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	set := bson.M{}
	if update.DateTime != nil {
		set["date_time"] = *update.DateTime
	}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Mode != nil {
		set["meeting_mode"] = *update.Mode
	}
	if update.Attendees != nil {
		set["attendees"] = *update.Attendees
	}
	if len(set) == 0 {
		return nil
	}

	res, err := repo.appointmentColl.UpdateOne(ctx, bson.M{"id": appointmentID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating appointment %s: %w", appointmentID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", appointmentID)
	}
	return nil
}

func (repo *MongoAppointmentRepo) Delete(appointmentID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.appointmentColl.DeleteOne(ctx, bson.M{"id": appointmentID}); err != nil {
		return fmt.Errorf("error deleting appointment %s: %w", appointmentID, err)
	}
	return nil
}
