package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roomly/models"
	appointmentSvc "roomly/services/appointment"
)

// AppointmentHandler exposes the appointment lifecycle.
type AppointmentHandler struct {
	Service appointmentSvc.Service
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(service appointmentSvc.Service) *AppointmentHandler {
	return &AppointmentHandler{Service: service}
}

// CreateAppointmentHandler handles POST /api/appointments. The response is
// 201 even when the room booking half degraded; the outcome message says
// what happened.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	var req appointmentSvc.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.Create(req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListAppointmentsHandler handles GET /api/appointments.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c)

	views, err := h.Service.List()
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": views})
}

// UpdateAppointmentHandler handles PATCH /api/appointments/:id.
func (h *AppointmentHandler) UpdateAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var update models.AppointmentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.Update(id, update)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelAppointmentHandler handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	result, err := h.Service.Cancel(id)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
