package repository

import (
	appointmentRepo "roomly/database/repository/appointment"
	bookingRepo "roomly/database/repository/booking"
	roomRepo "roomly/database/repository/room"
)

// Re-export the RoomRepository interface and constructor.
type RoomRepository = roomRepo.RoomRepository

var NewMongoRoomRepo = roomRepo.NewMongoRoomRepo

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the AppointmentRepository interface and constructor.
type AppointmentRepository = appointmentRepo.AppointmentRepository

var NewMongoAppointmentRepo = appointmentRepo.NewMongoAppointmentRepo
