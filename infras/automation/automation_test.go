package automation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"salon/config"
	"salon/infras/automation"
	"salon/infras/otel/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otelGlobal "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func newConfig(bookingURL, availabilityURL string) *config.Config {
	cfg := &config.Config{}
	cfg.External.Automation.BookingURL = bookingURL
	cfg.External.Automation.AvailabilityURL = availabilityURL
	cfg.External.Automation.CalendarID = "primary"
	cfg.External.Automation.TimeoutSeconds = 5

	return cfg
}

func TestClient_CheckAvailability(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantSlots []automation.Slot
		wantErr   bool
	}{
		{
			name: "returns slots",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var req automation.AvailabilityRequest
				_ = json.NewDecoder(r.Body).Decode(&req)

				if req.Date != "2025-03-10" || req.DurationMin != 60 {
					w.WriteHeader(http.StatusBadRequest)

					return
				}

				_, _ = w.Write([]byte(`{"slots":[{"time":"09:00","available":true}]}`))
			},
			wantSlots: []automation.Slot{{Time: "09:00", Available: true}},
		},
		{
			name: "missing slots default to empty",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
			wantSlots: []automation.Slot{},
		},
		{
			name: "non success status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: true,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := automation.New(newConfig("", server.URL), mocks.NewOtel())

			res, err := client.CheckAvailability(context.Background(), automation.AvailabilityRequest{Date: "2025-03-10", DurationMin: 60})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSlots, res.Slots)
		})
	}
}

func TestClient_ConfirmBooking(t *testing.T) {
	var received automation.BookingRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&received)

		_, _ = w.Write([]byte(`{"status":"conflict","slots":["10:00",{"time":"11:00"}]}`))
	}))
	defer server.Close()

	client := automation.New(newConfig(server.URL, ""), mocks.NewOtel())

	res, err := client.ConfirmBooking(context.Background(), automation.BookingRequest{BookingID: "b-1", Source: "website"})

	require.NoError(t, err)
	assert.Equal(t, "conflict", res.Status)
	require.Len(t, res.Slots, 2)
	assert.JSONEq(t, `"10:00"`, string(res.Slots[0]))
	assert.JSONEq(t, `{"time":"11:00"}`, string(res.Slots[1]))
	assert.Equal(t, "b-1", received.BookingID)
	assert.Equal(t, "primary", received.CalendarID)
}

func TestClient_NotConfigured(t *testing.T) {
	client := automation.New(newConfig("", ""), mocks.NewOtel())

	_, err := client.ConfirmBooking(context.Background(), automation.BookingRequest{})
	assert.ErrorIs(t, err, automation.ErrNotConfigured)

	_, err = client.CheckAvailability(context.Background(), automation.AvailabilityRequest{})
	assert.ErrorIs(t, err, automation.ErrNotConfigured)
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := server.URL
	server.Close()

	client := automation.New(newConfig(url, url), mocks.NewOtel())

	_, err := client.ConfirmBooking(context.Background(), automation.BookingRequest{BookingID: "b-1"})
	assert.Error(t, err)
}

func TestClient_PropagatesTraceContext(t *testing.T) {
	original := otelGlobal.GetTextMapPropagator()
	otelGlobal.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otelGlobal.SetTextMapPropagator(original) })

	var traceparent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceparent = r.Header.Get("Traceparent")
		_, _ = w.Write([]byte(`{"status":"confirmed","eventId":"evt-1"}`))
	}))
	defer server.Close()

	provider := sdktrace.NewTracerProvider()
	ctx, span := provider.Tracer("test").Start(context.Background(), "booking")
	defer span.End()

	client := automation.New(newConfig(server.URL, ""), mocks.NewOtel())

	_, err := client.ConfirmBooking(ctx, automation.BookingRequest{BookingID: "b-1"})

	require.NoError(t, err)
	assert.Contains(t, traceparent, span.SpanContext().TraceID().String())
}
