package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomly/models"
	appointmentSvc "roomly/services/appointment"
	bookingSvc "roomly/services/booking"
)

// stubAppointmentService returns canned results per call.
type stubAppointmentService struct {
	createResult *appointmentSvc.CreateResult
	createErr    error
	updateResult *appointmentSvc.UpdateResult
	updateErr    error
	cancelResult *appointmentSvc.CancelResult
	cancelErr    error
	views        []models.AppointmentView
}

func (s *stubAppointmentService) Create(appointmentSvc.CreateRequest) (*appointmentSvc.CreateResult, error) {
	return s.createResult, s.createErr
}

func (s *stubAppointmentService) Update(string, models.AppointmentUpdate) (*appointmentSvc.UpdateResult, error) {
	return s.updateResult, s.updateErr
}

func (s *stubAppointmentService) Cancel(string) (*appointmentSvc.CancelResult, error) {
	return s.cancelResult, s.cancelErr
}

func (s *stubAppointmentService) List() ([]models.AppointmentView, error) {
	return s.views, nil
}

func newAppointmentRouter(service appointmentSvc.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAppointmentHandler(service)
	router.POST("/api/appointments", handler.CreateAppointmentHandler)
	router.GET("/api/appointments", handler.ListAppointmentsHandler)
	router.PATCH("/api/appointments/:id", handler.UpdateAppointmentHandler)
	router.DELETE("/api/appointments/:id", handler.CancelAppointmentHandler)
	return router
}

func TestCreateAppointmentHandler(t *testing.T) {
	service := &stubAppointmentService{
		createResult: &appointmentSvc.CreateResult{
			AppointmentID: "a1",
			Persisted:     true,
			Message:       "Appointment created, ID: a1",
		},
	}
	router := newAppointmentRouter(service)

	body := `{"date_time":"2026-09-01 10:00","title":"Sync"}`
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Appointment created, ID: a1")
}

func TestCreateAppointmentHandlerMissingFields(t *testing.T) {
	router := newAppointmentRouter(&stubAppointmentService{})

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(`{"title":"No date"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAppointmentHandlerValidationError(t *testing.T) {
	service := &stubAppointmentService{
		createErr: bookingSvc.NewError(bookingSvc.CodeValidation, "invalid date"),
	}
	router := newAppointmentRouter(service)

	body := `{"date_time":"garbage","title":"Sync"}`
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAppointmentHandlerNotFound(t *testing.T) {
	service := &stubAppointmentService{
		updateErr: &appointmentSvc.NotFoundError{ID: "missing"},
	}
	router := newAppointmentRouter(service)

	req := httptest.NewRequest(http.MethodPatch, "/api/appointments/missing", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelAppointmentHandler(t *testing.T) {
	service := &stubAppointmentService{
		cancelResult: &appointmentSvc.CancelResult{
			AppointmentID:    "a1",
			BookingCancelled: true,
			Message:          `Appointment "Sync" (ID: a1) cancelled`,
		},
	}
	router := newAppointmentRouter(service)

	req := httptest.NewRequest(http.MethodDelete, "/api/appointments/a1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled")
}
