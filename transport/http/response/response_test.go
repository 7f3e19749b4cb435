package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"salon/shared/failure"
	"salon/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation failure has details",
			err:      failure.Validation("Ungültige Eingabedaten", "designText: Design-Beschreibung oder Bild ist erforderlich"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Ungültige Eingabedaten","details":"designText: Design-Beschreibung oder Bild ist erforderlich"}`,
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("lookup: %w", failure.NotFound("Service not found")),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Service not found"}`,
		},
		{
			name:     "raw error is hidden",
			err:      errors.New("pq: relation \"bookings\" does not exist"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Interner Serverfehler"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWithJSONAndBody(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusOK, map[string]int{"step": 2})
	assert.JSONEq(t, `{"data":{"step":2}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	response.WithBody(rec, http.StatusCreated, map[string]bool{"success": true})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestNoCache(t *testing.T) {
	rec := httptest.NewRecorder()

	response.NoCache(rec)

	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
	assert.Equal(t, "0", rec.Header().Get("Expires"))
}
