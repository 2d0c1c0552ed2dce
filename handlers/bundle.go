package handlers

import (
	bookingRepoPkg "roomly/database/repository/booking"
	roomRepoPkg "roomly/database/repository/room"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	RoomRepo    roomRepoPkg.RoomRepository
	BookingRepo bookingRepoPkg.BookingRepository

	// Room catalog endpoints
	ListRoomsHandler     gin.HandlerFunc
	FindAvailableHandler gin.HandlerFunc

	// Booking ledger endpoints
	BookRoomHandler            gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc
	ListBookingsForRoomHandler gin.HandlerFunc
	SuggestAlternativesHandler gin.HandlerFunc

	// Appointment endpoints
	CreateAppointmentHandler gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc
	UpdateAppointmentHandler gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc
}
