package booking

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
	app     middleware.AppMiddleware
	otel    otel.Otel
}

func New(service service.Booking, app middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service: service,
		app:     app,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.With(handler.app.BookingRateLimit()).Post("/booking", handler.CreateBooking)
}

// CreateBooking handles a booking submission.
// @Summary Book an appointment
// @Description Validate, persist and confirm a booking. Confirmation is delegated when an automation endpoint is configured.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking submission"
// @Success 200 {object} dto.CreateBookingResponse "confirmed, needs_manual or dev-confirmed"
// @Failure 409 {object} dto.CreateBookingResponse "conflict with alternative slots"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected booking submission")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + res.BookingID + " finished with " + string(res.Status))

	response.WithBody(writer, res.HTTPStatus(), res)
}
