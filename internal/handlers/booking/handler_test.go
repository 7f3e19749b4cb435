package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/config"
	"salon/infras/otel/mocks"
	"salon/internal/domains/booking/model/dto"
	serviceMocks "salon/internal/domains/booking/service/mocks"
	"salon/internal/handlers/booking"
	"salon/shared/failure"
	"salon/shared/validator"
	"salon/transport/http/middleware"
)

const validBody = `{
	"serviceId": "svc-gel",
	"length": "medium",
	"designText": "French mit Glitzer",
	"startTime": "2025-03-14T10:00:00+01:00",
	"customer": {"fullName": "Anna Muster", "phone": "+41791234567"}
}`

func newRouter(t *testing.T, svc *serviceMocks.MockBooking) http.Handler {
	t.Helper()

	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)
	handler := booking.New(svc, app, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *serviceMocks.MockBooking)
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name: "confirmed",
			body: validBody,
			setupMock: func(m *serviceMocks.MockBooking) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateBookingResponse{
					Status:    dto.OutcomeConfirmed,
					BookingID: "b-1",
					EventID:   "evt-1",
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"status": "confirmed", "bookingId": "b-1", "eventId": "evt-1"},
		},
		{
			name: "conflict carries alternatives",
			body: validBody,
			setupMock: func(m *serviceMocks.MockBooking) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateBookingResponse{
					Status:           dto.OutcomeConflict,
					Message:          "Termin nicht mehr verfügbar",
					AlternativeSlots: []json.RawMessage{json.RawMessage(`"2025-03-14T11:00:00+01:00"`)},
				}, nil)
			},
			wantStatus: http.StatusConflict,
			wantBody: map[string]any{
				"status":           "conflict",
				"message":          "Termin nicht mehr verfügbar",
				"alternativeSlots": []any{"2025-03-14T11:00:00+01:00"},
			},
		},
		{
			name:       "design missing",
			body:       `{"serviceId":"svc-gel","length":"medium","startTime":"2025-03-14T10:00:00+01:00","customer":{"fullName":"Anna Muster","phone":"+41791234567"}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"serviceId":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown service",
			body: validBody,
			setupMock: func(m *serviceMocks.MockBooking) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateBookingResponse{}, failure.NotFound("Service nicht gefunden"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"error": "Service nicht gefunden"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := serviceMocks.NewMockBooking(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			newRouter(t, svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != nil {
				var got map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.wantBody, got)
			}
		})
	}
}

func TestHandler_CreateBooking_PassesRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := serviceMocks.NewMockBooking(ctrl)
	svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
		assert.Equal(t, "svc-gel", req.ServiceID)
		assert.Equal(t, "Anna Muster", req.Customer.FullName)
		assert.Equal(t, "2025-03-14T10:00:00+01:00", req.StartTime)

		return dto.CreateBookingResponse{Status: dto.OutcomeDevConfirmed, BookingID: "b-2", Message: "ok"}, nil
	})

	rec := httptest.NewRecorder()
	newRouter(t, svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(validBody)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"dev-confirmed","bookingId":"b-2","message":"ok"}`, rec.Body.String())
}

func TestHandler_CreateBooking_FieldRules(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails string
	}{
		{
			name:        "name too short",
			body:        `{"serviceId":"svc-gel","length":"medium","designText":"French","startTime":"2025-03-14T10:00:00+01:00","customer":{"fullName":"A","phone":"+41791234567"}}`,
			wantDetails: "customer.fullName muss mindestens 2 lang sein",
		},
		{
			name:        "phone not swiss",
			body:        `{"serviceId":"svc-gel","length":"medium","designText":"French","startTime":"2025-03-14T10:00:00+01:00","customer":{"fullName":"Anna Muster","phone":"12345"}}`,
			wantDetails: "Ungültige Telefonnummer",
		},
		{
			name:        "email malformed",
			body:        `{"serviceId":"svc-gel","length":"medium","designText":"French","startTime":"2025-03-14T10:00:00+01:00","customer":{"fullName":"Anna Muster","phone":"+41791234567","email":"anna@"}}`,
			wantDetails: "Ungültige E-Mail",
		},
		{
			name:        "length unknown",
			body:        `{"serviceId":"svc-gel","length":"xl","designText":"French","startTime":"2025-03-14T10:00:00+01:00","customer":{"fullName":"Anna Muster","phone":"+41791234567"}}`,
			wantDetails: "length muss einer der Werte small medium long sein",
		},
		{
			name:        "start time not rfc3339",
			body:        `{"serviceId":"svc-gel","length":"medium","designText":"French","startTime":"tomorrow","customer":{"fullName":"Anna Muster","phone":"+41791234567"}}`,
			wantDetails: "startTime muss dem Format 2006-01-02T15:04:05Z07:00 entsprechen",
		},
		{
			name:        "image url invalid",
			body:        `{"serviceId":"svc-gel","length":"medium","designImages":[{"url":"not a url"}],"startTime":"2025-03-14T10:00:00+01:00","customer":{"fullName":"Anna Muster","phone":"+41791234567"}}`,
			wantDetails: "designImages[0].url muss eine gültige URL sein",
		},
		{
			name:        "customer missing",
			body:        `{"serviceId":"svc-gel","length":"medium","designText":"French","startTime":"2025-03-14T10:00:00+01:00"}`,
			wantDetails: "customer.fullName ist erforderlich",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			newRouter(t, serviceMocks.NewMockBooking(ctrl)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var got map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, validator.MessageInvalidInput, got["error"])
			assert.Equal(t, tt.wantDetails, got["details"])
		})
	}
}
