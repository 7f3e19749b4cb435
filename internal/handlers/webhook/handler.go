package webhook

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/service"
	"salon/shared/constant"
	"salon/shared/validator"
	"salon/transport/http/middleware"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	secret  middleware.Secret
	otel    otel.Otel
}

func New(service service.Booking, secret middleware.Secret, otel otel.Otel) Handler {
	return Handler{
		service: service,
		secret:  secret,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/webhooks", func(routerGroup chi.Router) {
		routerGroup.With(handler.secret.Webhook).Post("/automation", handler.UpdateStatus)
	})
}

// UpdateStatus lets the automation service settle a booking after the fact.
// @Summary Update a booking status
// @Tags Webhook
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string false "Shared secret when configured"
// @Param request body dto.UpdateStatusRequest true "Status update"
// @Success 200 {object} dto.UpdateStatusResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/webhooks/automation [post]
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected webhook body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", req.BookingID).Msg("failed to apply webhook")

		response.WithError(writer, err)

		return
	}

	response.WithBody(writer, http.StatusOK, dto.UpdateStatusResponse{Success: true})
}
