package catalog_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"salon/infras/otel/mocks"
	"salon/internal/domains/catalog/model/dto"
	serviceMocks "salon/internal/domains/catalog/service/mocks"
	"salon/internal/handlers/catalog"
)

func TestHandler_GetServices(t *testing.T) {
	tests := []struct {
		name       string
		res        dto.GetServicesResponse
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name: "active services",
			res: dto.GetServicesResponse{Services: []dto.ServiceResponse{
				{ID: "svc-1", Name: "Auffüllen Gel", Category: "Auffüllen", DurationMin: 90, BasePrice: 6500, IsActive: true},
			}},
			wantStatus: http.StatusOK,
			wantBody:   `{"services":[{"id":"svc-1","name":"Auffüllen Gel","category":"Auffüllen","durationMin":90,"basePrice":6500,"isActive":true}]}`,
		},
		{
			name:       "database down",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Interner Serverfehler"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := serviceMocks.NewMockCatalog(ctrl)
			svc.EXPECT().GetAll(gomock.Any()).Return(tt.res, tt.err)

			handler := catalog.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
