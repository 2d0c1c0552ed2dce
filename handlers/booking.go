package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepoPkg "roomly/database/repository/booking"
	roomRepoPkg "roomly/database/repository/room"
	"roomly/models"
	bookingSvc "roomly/services/booking"
)

// BookingHandler exposes the booking ledger directly: booking a specific
// room, inspecting, and releasing a booking, without going through the
// appointment lifecycle.
type BookingHandler struct {
	Manager     bookingSvc.Manager
	Suggestions bookingSvc.SuggestionEngine
	Bookings    bookingRepoPkg.BookingRepository
	Rooms       roomRepoPkg.RoomRepository
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(manager bookingSvc.Manager, suggestions bookingSvc.SuggestionEngine, bookings bookingRepoPkg.BookingRepository, rooms roomRepoPkg.RoomRepository) *BookingHandler {
	return &BookingHandler{Manager: manager, Suggestions: suggestions, Bookings: bookings, Rooms: rooms}
}

type bookRoomInput struct {
	RoomID        string `json:"room_id" binding:"required"`
	AppointmentID string `json:"appointment_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Start         string `json:"start" binding:"required"`
	End           string `json:"end" binding:"required"`
	Attendees     int    `json:"attendees" binding:"required"`
}

// BookRoomHandler handles POST /api/bookings.
func (h *BookingHandler) BookRoomHandler(c *gin.Context) {
	logger := getLogger(c)

	var input bookRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	start, err := models.ParseClock(input.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start: " + err.Error()})
		return
	}
	end, err := models.ParseClock(input.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end: " + err.Error()})
		return
	}

	summary, err := h.Manager.Create(input.AppointmentID, input.RoomID, input.Date, start, end, input.Attendees)
	if err != nil {
		if bookingSvc.HasCode(err, bookingSvc.CodeRoomUnavailable) {
			// Enrich the conflict with alternatives, same as the
			// appointment flow does.
			room, roomErr := h.Rooms.GetByID(input.RoomID)
			if roomErr == nil && room != nil {
				alts := h.Suggestions.Alternatives(input.Date, start, end, room.Location, input.Attendees)
				c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "alternatives": alts})
				return
			}
		}
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": summary})
}

// GetBookingHandler handles GET /api/bookings/appointment/:appointmentID.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	appointmentID := c.Param("appointmentID")

	booking, err := h.Bookings.GetByAppointment(appointmentID)
	if err != nil {
		logger.Error("Failed to fetch booking", zap.String("appointmentID", appointmentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if booking == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no booking for appointment " + appointmentID})
		return
	}

	room, err := h.Rooms.GetByID(booking.RoomID)
	if err != nil || room == nil {
		c.JSON(http.StatusOK, gin.H{"booking": booking})
		return
	}
	summary := models.Summarize(*booking, *room)
	c.JSON(http.StatusOK, gin.H{"booking": summary})
}

// CancelBookingHandler handles DELETE /api/bookings/appointment/:appointmentID.
// Releasing an appointment without a booking is a no-op.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	appointmentID := c.Param("appointmentID")

	if err := h.Manager.Cancel(appointmentID); err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking released"})
}

// ListBookingsForRoomHandler handles GET /api/rooms/:roomID/bookings?date=.
func (h *BookingHandler) ListBookingsForRoomHandler(c *gin.Context) {
	logger := getLogger(c)
	roomID := c.Param("roomID")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing date"})
		return
	}

	bookings, err := h.Bookings.ListByRoom(roomID, date)
	if err != nil {
		logger.Error("Failed to list bookings", zap.String("roomID", roomID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// SuggestAlternativesHandler handles GET /api/bookings/alternatives.
// Query: date, start, end, site, capacity.
func (h *BookingHandler) SuggestAlternativesHandler(c *gin.Context) {
	start, err := models.ParseClock(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start: " + err.Error()})
		return
	}
	end, err := models.ParseClock(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end: " + err.Error()})
		return
	}
	site, ok := models.NormalizeSite(c.Query("site"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown site: " + c.Query("site")})
		return
	}
	capacity := 1
	if raw := c.Query("capacity"); raw != "" {
		capacity, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid capacity: " + raw})
			return
		}
	}

	alts := h.Suggestions.Alternatives(c.Query("date"), start, end, site, capacity)
	c.JSON(http.StatusOK, gin.H{"alternatives": alts})
}
