package catalog

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/catalog/service"
	"salon/shared/constant"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/services", handler.GetServices)
}

// GetServices lists the bookable services.
// @Summary List services
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.GetServicesResponse
// @Failure 500 {object} response.Error
// @Router /v1/services [get]
func (handler *Handler) GetServices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(writer, err)

		return
	}

	response.WithBody(writer, http.StatusOK, res)
}
