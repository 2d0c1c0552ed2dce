package bookingRepo

import (
	"context"
	"fmt"

	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfFree wraps the availability re-check and the ledger insert in one
// mongo transaction. Two concurrent requests for the same room and window
// serialize here: exactly one commits, the other sees ErrRoomBusy.
func (repo *MongoBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	return repo.withTransaction(ctx, func(sc mongo.SessionContext) error {
		conflicts, err := repo.findOverlapping(sc, booking.RoomID, booking.Date, booking.Start, booking.End)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &ErrRoomBusy{RoomID: booking.RoomID, Date: booking.Date}
		}
		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	})
}

// ReplaceForAppointment deletes the appointment's current booking and inserts
// the replacement in one transaction, so resizing never exposes a transient
// "appointment without booking" state and never double-books the new room.
func (repo *MongoBookingRepo) ReplaceForAppointment(ctx context.Context, appointmentID string, replacement *models.Booking) error {
	return repo.withTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := repo.bookingColl.DeleteMany(sc, bson.M{"appointment_id": appointmentID}); err != nil {
			return fmt.Errorf("delete old booking failed: %w", err)
		}
		conflicts, err := repo.findOverlapping(sc, replacement.RoomID, replacement.Date, replacement.Start, replacement.End)
		if err != nil {
			return err
		}
		for _, c := range conflicts {
			if c.AppointmentID != appointmentID {
				return &ErrRoomBusy{RoomID: replacement.RoomID, Date: replacement.Date}
			}
		}
		if _, err := repo.bookingColl.InsertOne(sc, replacement); err != nil {
			return fmt.Errorf("insert replacement booking failed: %w", err)
		}
		return nil
	})
}

func (repo *MongoBookingRepo) withTransaction(ctx context.Context, txnFn func(sc mongo.SessionContext) error) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}
	return nil
}
