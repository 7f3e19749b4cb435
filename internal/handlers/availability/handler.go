package availability

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/availability/model/dto"
	"salon/internal/domains/availability/service"
	"salon/shared/constant"
	"salon/shared/validator"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/availability", handler.GetAvailability)
}

// GetAvailability lists the slots of one day.
// @Summary Get free slots
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.AvailabilityRequest true "Day and duration"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [post]
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	req := dto.AvailabilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", req.Date).Msg("failed to get availability")

		response.WithError(writer, err)

		return
	}

	response.WithBody(writer, http.StatusOK, res)
}
