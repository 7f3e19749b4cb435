package automation

//go:generate go run go.uber.org/mock/mockgen -source=./automation.go -destination=./mocks/automation_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"salon/config"
	"salon/infras/otel"
	"salon/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	otelAttrURL    = "http.url"
	otelAttrStatus = "http.status_code"
)

var (
	ErrNotConfigured = errors.New("automation endpoint not configured")
	ErrUnexpected    = errors.New("automation endpoint returned a non-success status")
)

type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type AvailabilityRequest struct {
	Date        string `json:"date"`
	DurationMin int    `json:"durationMin"`
}

type AvailabilityResponse struct {
	Slots []Slot `json:"slots"`
}

type Image struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

type Customer struct {
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// BookingRequest is the booking context forwarded for calendar confirmation.
type BookingRequest struct {
	BookingID    string   `json:"bookingId"`
	ServiceID    string   `json:"serviceId"`
	ServiceName  string   `json:"serviceName"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	Length       string   `json:"length"`
	DesignText   string   `json:"designText,omitempty"`
	DesignImages []Image  `json:"designImages,omitempty"`
	Customer     Customer `json:"customer"`
	Source       string   `json:"source"`
	CalendarID   string   `json:"calendarId,omitempty"`
}

// BookingResponse carries the calendar decision. Slots is kept raw so alternatives
// can be handed back to the client unchanged.
type BookingResponse struct {
	Status  string            `json:"status"`
	EventID string            `json:"eventId"`
	Slots   []json.RawMessage `json:"slots"`
}

// Client talks to the workflow automation service that owns the salon calendar.
type Client interface {
	CheckAvailability(ctx context.Context, req AvailabilityRequest) (AvailabilityResponse, error)
	ConfirmBooking(ctx context.Context, req BookingRequest) (BookingResponse, error)
}

type clientImpl struct {
	hc              *http.Client
	bookingURL      string
	availabilityURL string
	calendarID      string
	otel            otel.Otel
}

func New(config *config.Config, otl otel.Otel) Client {
	return NewWithHTTPClient(config, otl, &http.Client{
		Timeout:   time.Duration(config.External.Automation.TimeoutSeconds) * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func NewWithHTTPClient(config *config.Config, otl otel.Otel, hc *http.Client) Client {
	return &clientImpl{
		hc:              hc,
		bookingURL:      config.External.Automation.BookingURL,
		availabilityURL: config.External.Automation.AvailabilityURL,
		calendarID:      config.External.Automation.CalendarID,
		otel:            otl,
	}
}

func (c *clientImpl) CheckAvailability(ctx context.Context, req AvailabilityRequest) (res AvailabilityResponse, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if c.availabilityURL == "" {
		return res, ErrNotConfigured
	}

	scope.SetAttribute(otelAttrURL, c.availabilityURL)

	if err = c.post(ctx, c.availabilityURL, req, &res); err != nil {
		return res, err
	}

	if res.Slots == nil {
		res.Slots = []Slot{}
	}

	return res, nil
}

func (c *clientImpl) ConfirmBooking(ctx context.Context, req BookingRequest) (res BookingResponse, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ConfirmBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if c.bookingURL == "" {
		return res, ErrNotConfigured
	}

	scope.SetAttribute(otelAttrURL, c.bookingURL)

	if req.CalendarID == "" {
		req.CalendarID = c.calendarID
	}

	if err = c.post(ctx, c.bookingURL, req, &res); err != nil {
		return res, err
	}

	return res, nil
}

func (c *clientImpl) post(ctx context.Context, url string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal automation payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build automation request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("automation request failed")

		return fmt.Errorf("failed to call automation endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)

		log.Warn().Int(otelAttrStatus, resp.StatusCode).Str("url", url).Msg("automation endpoint returned non-success status")

		return fmt.Errorf("%w: %d", ErrUnexpected, resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode automation response: %w", err)
	}

	return nil
}
