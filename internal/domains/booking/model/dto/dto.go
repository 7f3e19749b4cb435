package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"salon/internal/domains/booking/model"
	"salon/shared/constant"
	gModel "salon/shared/model"
	"time"

	"github.com/google/uuid"
)

const (
	MessageConflict       = "Dieser Slot wurde soeben belegt. Wähle bitte eine der verfügbaren Zeiten."
	MessageNeedsManual    = "Danke! Wir prüfen Deinen Termin manuell und bestätigen ihn in Kürze."
	MessageDevConfirmed   = "Termin erfolgreich gebucht! (Development Mode)"
	MessageBookingFailed  = "Fehler beim Buchen des Termins"
	MessageDesignRequired = "Design-Beschreibung oder Bild ist erforderlich"
	MessageBookingMissing = "Booking not found"
	MessageInvalidStatus  = "Invalid status"
	MessageUpdateFailed   = "Failed to update booking"
)

var errDesignRequired = errors.New("designText: " + MessageDesignRequired)

type ImageRequest struct {
	URL  string `json:"url"            validate:"required,url"`
	Name string `json:"name,omitempty"`
}

type CustomerRequest struct {
	FullName  string `json:"fullName"            validate:"required,min=2"`
	Phone     string `json:"phone"               validate:"required,swissphone"`
	Email     string `json:"email,omitempty"     validate:"omitempty,email"`
	Instagram string `json:"instagram,omitempty"`
}

type CreateBookingRequest struct {
	ServiceID    string          `json:"serviceId"              validate:"required"`
	Length       model.Length    `json:"length"                 validate:"required,oneof=small medium long"`
	DesignText   string          `json:"designText,omitempty"`
	DesignImages []ImageRequest  `json:"designImages,omitempty" validate:"omitempty,dive"`
	StartTime    string          `json:"startTime"              validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Customer     CustomerRequest `json:"customer"`
}

// Validate enforces that a design is described by text or by at least one image.
func (c *CreateBookingRequest) Validate() error {
	if c.DesignText == "" && len(c.DesignImages) == 0 {
		return errDesignRequired
	}

	return nil
}

func (c *CreateBookingRequest) Images() model.Images {
	images := make(model.Images, 0, len(c.DesignImages))

	for _, image := range c.DesignImages {
		images = append(images, model.Image{URL: image.URL, Name: image.Name})
	}

	return images
}

// ToModel builds the pending booking. endTime is fixed here from the total duration.
func (c *CreateBookingRequest) ToModel(customerID string, startTime time.Time, durationMin, totalPrice int, now time.Time) model.Booking {
	return model.Booking{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		ServiceID:    c.ServiceID,
		Length:       c.Length,
		DesignText:   c.DesignText,
		DesignImages: c.Images(),
		StartTime:    startTime,
		EndTime:      startTime.Add(time.Duration(durationMin) * time.Minute),
		TotalPrice:   totalPrice,
		Status:       model.StatusPending,
		Source:       constant.SourceWebsite,
		Metadata:     gModel.NewMetadata(now, constant.SourceWebsite),
	}
}

type Outcome string

const (
	OutcomeConfirmed    Outcome = "confirmed"
	OutcomeConflict     Outcome = "conflict"
	OutcomeNeedsManual  Outcome = "needs_manual"
	OutcomeDevConfirmed Outcome = "dev-confirmed"
)

// CreateBookingResponse is one of the four booking outcomes.
type CreateBookingResponse struct {
	Status           Outcome
	BookingID        string
	EventID          string
	Message          string
	AlternativeSlots []json.RawMessage
}

func (r CreateBookingResponse) HTTPStatus() int {
	if r.Status == OutcomeConflict {
		return http.StatusConflict
	}

	return http.StatusOK
}

// Cleared reports whether the submission is finished and the draft can go.
func (r CreateBookingResponse) Cleared() bool {
	return r.Status != OutcomeConflict
}

func (r CreateBookingResponse) MarshalJSON() ([]byte, error) {
	body := map[string]any{"status": r.Status}

	switch r.Status {
	case OutcomeConfirmed:
		body["bookingId"] = r.BookingID
		body["eventId"] = r.EventID
	case OutcomeConflict:
		slots := r.AlternativeSlots
		if slots == nil {
			slots = []json.RawMessage{}
		}

		body["message"] = r.Message
		body["alternativeSlots"] = slots
	default:
		body["bookingId"] = r.BookingID
		body["message"] = r.Message
	}

	return json.Marshal(body) //nolint:wrapcheck
}

func (r *CreateBookingResponse) UnmarshalJSON(data []byte) error {
	var body struct {
		Status           Outcome           `json:"status"`
		BookingID        string            `json:"bookingId"`
		EventID          string            `json:"eventId"`
		Message          string            `json:"message"`
		AlternativeSlots []json.RawMessage `json:"alternativeSlots"`
	}

	if err := json.Unmarshal(data, &body); err != nil {
		return err //nolint:wrapcheck
	}

	*r = CreateBookingResponse(body)

	return nil
}

type UpdateStatusRequest struct {
	BookingID string       `json:"bookingId"`
	Status    model.Status `json:"status"`
	EventID   string       `json:"eventId,omitempty"`
}

type UpdateStatusResponse struct {
	Success bool `json:"success"`
}

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

// Event is published to Kafka keyed by booking id.
type Event struct {
	Type       string       `json:"type"`
	BookingID  string       `json:"bookingId"`
	ServiceID  string       `json:"serviceId,omitempty"`
	Status     model.Status `json:"status"`
	EventID    string       `json:"eventId,omitempty"`
	StartTime  *time.Time   `json:"startTime,omitempty"`
	EndTime    *time.Time   `json:"endTime,omitempty"`
	OccurredAt time.Time    `json:"occurredAt"`
}

func CreatedEvent(booking model.Booking, now time.Time) Event {
	return Event{
		Type:       EventBookingCreated,
		BookingID:  booking.ID,
		ServiceID:  booking.ServiceID,
		Status:     booking.Status,
		StartTime:  &booking.StartTime,
		EndTime:    &booking.EndTime,
		OccurredAt: now,
	}
}

func StatusChangedEvent(bookingID string, status model.Status, eventID string, now time.Time) Event {
	return Event{
		Type:       EventBookingStatusChanged,
		BookingID:  bookingID,
		Status:     status,
		EventID:    eventID,
		OccurredAt: now,
	}
}
