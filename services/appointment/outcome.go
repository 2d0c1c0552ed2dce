package appointment

import (
	"fmt"
	"strings"

	"roomly/models"
)

// BookingOutcome is the booking half of an appointment mutation. The
// appointment write and the room allocation are independent results: a failed
// allocation never rolls back the appointment, and both are reported.
type BookingOutcome struct {
	Attempted    bool                   `json:"attempted"`
	Booking      *models.BookingSummary `json:"booking,omitempty"`
	Err          error                  `json:"-"`
	ErrorCode    string                 `json:"error_code,omitempty"`
	Alternatives *models.Alternatives   `json:"alternatives,omitempty"`
	Notes        []string               `json:"notes,omitempty"`
}

// CreateResult reports both halves of an appointment creation.
type CreateResult struct {
	AppointmentID string         `json:"appointment_id"`
	Persisted     bool           `json:"persisted"`
	Booking       BookingOutcome `json:"booking_outcome"`
	Message       string         `json:"message"`
}

// UpdateResult reports both halves of an appointment update.
type UpdateResult struct {
	AppointmentID string         `json:"appointment_id"`
	Persisted     bool           `json:"persisted"`
	Booking       BookingOutcome `json:"booking_outcome"`
	Message       string         `json:"message"`
}

// CancelResult reports an appointment cancellation and its booking cascade.
type CancelResult struct {
	AppointmentID    string `json:"appointment_id"`
	BookingCancelled bool   `json:"booking_cancelled"`
	Message          string `json:"message"`
}

// renderAlternatives appends the suggestion engine's proposals to an outcome
// message in the shape the assistant reads back to the user.
func renderAlternatives(sb *strings.Builder, alts *models.Alternatives) {
	if alts == nil || alts.IsEmpty() {
		return
	}
	if len(alts.Times) > 0 {
		labels := make([]string, 0, len(alts.Times))
		for _, w := range alts.Times {
			labels = append(labels, w.Label)
		}
		fmt.Fprintf(sb, "\nAlternative times: %s", strings.Join(labels, ", "))
	}
	if len(alts.Locations) > 0 {
		labels := make([]string, 0, len(alts.Locations))
		for _, l := range alts.Locations {
			labels = append(labels, fmt.Sprintf("%s (%d rooms)", l.Location, l.Count))
		}
		fmt.Fprintf(sb, "\nAlternative sites: %s", strings.Join(labels, ", "))
	}
}
