package appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roomly/database/repository"
	"roomly/models"
	"roomly/services/booking"
	"roomly/services/tasks"
	"roomly/utils"
)

// Service coordinates the appointment lifecycle with its dependent room
// booking. The appointment write always succeeds or fails on its own; the
// booking is a best-effort side effect reported in the result.
type Service interface {
	Create(req CreateRequest) (*CreateResult, error)
	Update(appointmentID string, update models.AppointmentUpdate) (*UpdateResult, error)
	Cancel(appointmentID string) (*CancelResult, error)
	List() ([]models.AppointmentView, error)
}

// CreateRequest carries the raw appointment fields from the caller. Mode and
// Location are free text and normalized here.
type CreateRequest struct {
	DateTime    string `json:"date_time" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Mode        string `json:"meeting_mode"`
	Location    string `json:"location"`
	Attendees   *int   `json:"attendees"`
}

// NotFoundError reports an unknown appointment id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("appointment %s does not exist", e.ID)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo        repository.AppointmentRepository
	RoomRepo    repository.RoomRepository
	BookingRepo repository.BookingRepository
	Bookings    booking.Manager
	Suggestions booking.SuggestionEngine
	Reminders   tasks.ReminderScheduler

	DefaultSite    models.Site
	MeetingMinutes int           // window length derived from the appointment instant
	ReminderLead   time.Duration // how far before the appointment a reminder fires
}

func (svc *DefaultAppointmentService) Create(req CreateRequest) (*CreateResult, error) {
	dt, err := models.ParseDateTime(req.DateTime)
	if err != nil {
		// Fatal to the call: nothing is persisted on a malformed date.
		return nil, booking.NewError(booking.CodeValidation, err.Error())
	}

	mode := models.ModeOnline
	if req.Mode != "" {
		mode, err = models.ParseMeetingMode(req.Mode)
		if err != nil {
			return nil, booking.NewError(booking.CodeValidation, err.Error())
		}
	}

	appt := &models.Appointment{
		ID:          uuid.New().String(),
		DateTime:    req.DateTime,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Mode:        mode,
	}
	if req.Attendees != nil {
		appt.Attendees = *req.Attendees
	}
	if err := svc.Repo.Create(appt); err != nil {
		return nil, fmt.Errorf("error persisting appointment: %w", err)
	}

	result := &CreateResult{AppointmentID: appt.ID, Persisted: true}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Appointment created, ID: %s", appt.ID)

	if mode == models.ModeOffline {
		svc.bookForAppointment(appt.ID, dt, req.Location, req.Attendees, &result.Booking, &sb)
	}

	svc.scheduleReminder(appt.ID, appt.Title, dt)

	result.Message = sb.String()
	return result, nil
}

// bookForAppointment runs the room-allocation half of create/update. All of
// its failures are degraded outcomes, never errors: the appointment row is
// already durable.
func (svc *DefaultAppointmentService) bookForAppointment(appointmentID string, dt time.Time, location string, attendees *int, outcome *BookingOutcome, sb *strings.Builder) {
	if location == "" {
		sb.WriteString(", but no meeting location was provided, so no room was booked. Update the appointment with a location to book one.")
		outcome.ErrorCode = booking.CodeValidation
		return
	}
	if attendees == nil {
		sb.WriteString(", but no attendee count was provided, so no room was booked. Update the appointment with an attendee count to book one.")
		outcome.ErrorCode = booking.CodeMissingAttendees
		return
	}

	site, ok := models.NormalizeSite(location)
	if !ok {
		site = svc.DefaultSite
		note := fmt.Sprintf("meeting room site changed from %q to %q", location, site)
		outcome.Notes = append(outcome.Notes, note)
		fmt.Fprintf(sb, " (note: %s)", note)
	}

	date, start, end := svc.window(dt)
	outcome.Attempted = true

	summary, err := svc.Bookings.Resize(booking.ResizeRequest{
		AppointmentID: appointmentID,
		Attendees:     attendees,
		Date:          date,
		Start:         start,
		End:           end,
		Site:          site,
	})
	if err == nil {
		outcome.Booking = summary
		fmt.Fprintf(sb, ", booked room: %s (capacity %d), booking ID: %s",
			summary.RoomName, summary.Capacity, summary.BookingID)
		return
	}

	outcome.Err = err
	switch {
	case booking.HasCode(err, booking.CodeRoomUnavailable):
		outcome.ErrorCode = booking.CodeRoomUnavailable
		alts := svc.Suggestions.Alternatives(date, start, end, site, *attendees)
		outcome.Alternatives = &alts
		fmt.Fprintf(sb, ", but no room is available at %s for %s %s-%s.",
			site, date, models.FormatClock(start), models.FormatClock(end))
		renderAlternatives(sb, &alts)
	case booking.HasCode(err, booking.CodeNoLargerRoom):
		outcome.ErrorCode = booking.CodeNoLargerRoom
		alts := svc.Suggestions.Alternatives(date, start, end, site, *attendees)
		outcome.Alternatives = &alts
		sb.WriteString(", but no larger room is available; the current booking is unchanged.")
		renderAlternatives(sb, &alts)
	case booking.HasCode(err, booking.CodeMissingAttendees):
		outcome.ErrorCode = booking.CodeMissingAttendees
		sb.WriteString(", but no attendee count was provided, so no room was booked.")
	default:
		fmt.Fprintf(sb, ", but the room booking failed: %v", err)
	}
}

func (svc *DefaultAppointmentService) Update(appointmentID string, update models.AppointmentUpdate) (*UpdateResult, error) {
	existing, err := svc.Repo.GetByID(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching appointment %s: %w", appointmentID, err)
	}
	if existing == nil {
		return nil, &NotFoundError{ID: appointmentID}
	}

	result := &UpdateResult{AppointmentID: appointmentID}
	if update.Empty() {
		result.Message = "Nothing to update"
		return result, nil
	}

	// Validate before any mutation.
	if update.DateTime != nil {
		if _, err := models.ParseDateTime(*update.DateTime); err != nil {
			return nil, booking.NewError(booking.CodeValidation, err.Error())
		}
	}
	if update.Mode != nil {
		mode, err := models.ParseMeetingMode(string(*update.Mode))
		if err != nil {
			return nil, booking.NewError(booking.CodeValidation, err.Error())
		}
		update.Mode = &mode
	}

	merged := update.Apply(*existing)
	if err := svc.Repo.Update(appointmentID, update); err != nil {
		return nil, fmt.Errorf("error updating appointment %s: %w", appointmentID, err)
	}
	result.Persisted = true

	var sb strings.Builder
	fmt.Fprintf(&sb, "Appointment %s updated", appointmentID)

	dt, err := models.ParseDateTime(merged.DateTime)
	if err != nil {
		// Stored date predates format validation; booking logic cannot run.
		utils.GetLogger().Warn("stored appointment has unparseable date",
			zap.String("appointment_id", appointmentID), zap.Error(err))
		result.Message = sb.String()
		return result, nil
	}

	hadBooking, _ := svc.liveBooking(appointmentID)

	switch {
	case merged.Mode == models.ModeOnline && hadBooking != nil:
		// Offline to online frees the room.
		if err := svc.Bookings.Cancel(appointmentID); err != nil {
			result.Booking.Err = err
			fmt.Fprintf(&sb, ", but releasing the room booking failed: %v", err)
		} else {
			result.Booking.Attempted = true
			sb.WriteString(", the room booking was cancelled")
		}

	case merged.Mode == models.ModeOffline && svc.bookingFieldsChanged(update, hadBooking):
		var attendees *int
		if merged.Attendees > 0 {
			attendees = &merged.Attendees
		}
		svc.bookForAppointment(appointmentID, dt, merged.Location, attendees, &result.Booking, &sb)
	}

	svc.scheduleReminder(appointmentID, merged.Title, dt)

	result.Message = sb.String()
	return result, nil
}

// bookingFieldsChanged reports whether the update touches a field that feeds
// the booking (date, attendee count, or mode), or whether an offline
// appointment still lacks its room.
func (svc *DefaultAppointmentService) bookingFieldsChanged(update models.AppointmentUpdate, live *models.Booking) bool {
	return update.DateTime != nil || update.Attendees != nil || update.Mode != nil || live == nil
}

func (svc *DefaultAppointmentService) Cancel(appointmentID string) (*CancelResult, error) {
	existing, err := svc.Repo.GetByID(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching appointment %s: %w", appointmentID, err)
	}
	if existing == nil {
		return nil, &NotFoundError{ID: appointmentID}
	}

	result := &CancelResult{AppointmentID: appointmentID}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Appointment %q (ID: %s) cancelled", existing.Title, appointmentID)

	live, room := svc.liveBooking(appointmentID)
	if err := svc.Bookings.Cancel(appointmentID); err != nil {
		return nil, err
	}
	if live != nil {
		result.BookingCancelled = true
		roomName := live.RoomID
		if room != nil {
			roomName = room.Name
		}
		fmt.Fprintf(&sb, ", the room booking %s (booking ID: %s) was cancelled as well", roomName, live.ID)
	}

	if err := svc.Repo.Delete(appointmentID); err != nil {
		return nil, fmt.Errorf("error deleting appointment %s: %w", appointmentID, err)
	}

	if err := svc.Reminders.Drop(appointmentID); err != nil {
		utils.GetLogger().Warn("could not drop reminder",
			zap.String("appointment_id", appointmentID), zap.Error(err))
	}

	result.Message = sb.String()
	return result, nil
}

func (svc *DefaultAppointmentService) List() ([]models.AppointmentView, error) {
	appointments, err := svc.Repo.List()
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}

	views := make([]models.AppointmentView, 0, len(appointments))
	for _, appt := range appointments {
		view := models.AppointmentView{Appointment: appt}
		if appt.Mode == models.ModeOffline {
			if live, room := svc.liveBooking(appt.ID); live != nil && room != nil {
				summary := models.Summarize(*live, *room)
				view.RoomBooking = &summary
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// liveBooking fetches an appointment's booking and its room; either may be
// nil. Lookup failures are logged, not propagated: listings and outcome text
// degrade to omitting the booking detail.
func (svc *DefaultAppointmentService) liveBooking(appointmentID string) (*models.Booking, *models.Room) {
	live, err := svc.BookingRepo.GetByAppointment(appointmentID)
	if err != nil {
		utils.GetLogger().Warn("could not fetch booking",
			zap.String("appointment_id", appointmentID), zap.Error(err))
		return nil, nil
	}
	if live == nil {
		return nil, nil
	}
	room, err := svc.RoomRepo.GetByID(live.RoomID)
	if err != nil {
		utils.GetLogger().Warn("could not fetch room",
			zap.String("room_id", live.RoomID), zap.Error(err))
		return live, nil
	}
	return live, room
}

// window derives the default meeting window from an appointment instant,
// clamped to the same day.
func (svc *DefaultAppointmentService) window(dt time.Time) (date string, start, end int) {
	date = dt.Format(models.DateLayout)
	start = dt.Hour()*60 + dt.Minute()
	end = start + svc.MeetingMinutes
	if end > 24*60 {
		end = 24 * 60
	}
	return date, start, end
}

func (svc *DefaultAppointmentService) scheduleReminder(appointmentID, title string, dt time.Time) {
	fireAt := dt.Add(-svc.ReminderLead)
	if !fireAt.After(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		AppointmentID: appointmentID,
		Title:         title,
		Body:          fmt.Sprintf("Upcoming appointment %q at %s", title, dt.Format(models.DateTimeLayout)),
		FireDate:      fireAt.Format(time.RFC3339),
	}
	if err := svc.Reminders.Schedule(payload, fireAt); err != nil {
		utils.GetLogger().Warn("could not schedule reminder",
			zap.String("appointment_id", appointmentID), zap.Error(err))
	}
}
