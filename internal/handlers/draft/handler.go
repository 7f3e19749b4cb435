package draft

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/draft/model"
	"salon/internal/domains/draft/model/dto"
	"salon/internal/domains/draft/service"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/validator"
	"salon/transport/http/middleware"
	"salon/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Draft
	session middleware.Session
	app     middleware.AppMiddleware
	otel    otel.Otel
}

func New(service service.Draft, session middleware.Session, app middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service: service,
		session: session,
		app:     app,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/draft", func(routerGroup chi.Router) {
		routerGroup.Use(handler.session.Session)

		routerGroup.Get("/", handler.GetDraft)
		routerGroup.Patch("/", handler.UpdateDraft)
		routerGroup.Delete("/", handler.ResetDraft)
		routerGroup.Post("/images", handler.AddImage)
		routerGroup.Delete("/images/{index}", handler.RemoveImage)
		routerGroup.Put("/step", handler.SetStep)
		routerGroup.Get("/steps/{step}", handler.GetStep)
		routerGroup.Get("/quote", handler.GetQuote)
		routerGroup.With(handler.app.BookingRateLimit()).Post("/submit", handler.Submit)
	})
}

// GetDraft returns the draft of the calling browser.
// @Summary Get the booking draft
// @Tags Draft
// @Produce json
// @Success 200 {object} response.Data[model.Draft]
// @Failure 500 {object} response.Error
// @Router /v1/draft [get]
func (handler *Handler) GetDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	res, err := handler.service.Get(ctx, middleware.SessionID(ctx))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateDraft writes the fields present in the body.
// @Summary Update the booking draft
// @Tags Draft
// @Accept json
// @Produce json
// @Param request body dto.UpdateDraftRequest true "Partial draft"
// @Success 200 {object} response.Data[model.Draft]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/draft [patch]
func (handler *Handler) UpdateDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDraft")
	defer scope.End()

	req := dto.UpdateDraftRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	handler.respond(writer, scope, func() (model.Draft, error) {
		return handler.service.Update(ctx, middleware.SessionID(ctx), req)
	})
}

// ResetDraft throws the draft away.
// @Summary Reset the booking draft
// @Tags Draft
// @Produce json
// @Success 200 {object} response.Data[model.Draft]
// @Failure 500 {object} response.Error
// @Router /v1/draft [delete]
func (handler *Handler) ResetDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetDraft")
	defer scope.End()

	if err := handler.service.Reset(ctx, middleware.SessionID(ctx)); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, model.New())
}

// AddImage appends an uploaded design picture.
// @Summary Add a design image
// @Tags Draft
// @Accept json
// @Produce json
// @Param request body dto.AddImageRequest true "Image"
// @Success 200 {object} response.Data[model.Draft]
// @Failure 400 {object} response.Error
// @Router /v1/draft/images [post]
func (handler *Handler) AddImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddImage")
	defer scope.End()

	req := dto.AddImageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	handler.respond(writer, scope, func() (model.Draft, error) {
		return handler.service.AddImage(ctx, middleware.SessionID(ctx), req.ToModel())
	})
}

// RemoveImage drops the design picture at index.
// @Summary Remove a design image
// @Tags Draft
// @Produce json
// @Param index path int true "Position in the image list"
// @Success 200 {object} response.Data[model.Draft]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/draft/images/{index} [delete]
func (handler *Handler) RemoveImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveImage")
	defer scope.End()

	index, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamIndex))
	if err != nil {
		err = failure.Validation(validator.MessageInvalidInput, "index: must be a number")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	handler.respond(writer, scope, func() (model.Draft, error) {
		return handler.service.RemoveImage(ctx, middleware.SessionID(ctx), index)
	})
}

// SetStep moves the wizard. Forward moves need the steps in between to be complete.
// @Summary Navigate the wizard
// @Tags Draft
// @Accept json
// @Produce json
// @Param request body dto.SetStepRequest true "Target step"
// @Success 200 {object} response.Data[model.Draft]
// @Failure 400 {object} response.Error
// @Router /v1/draft/step [put]
func (handler *Handler) SetStep(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetStep")
	defer scope.End()

	req := dto.SetStepRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	handler.respond(writer, scope, func() (model.Draft, error) {
		return handler.service.SetStep(ctx, middleware.SessionID(ctx), req.Step)
	})
}

// GetStep reports whether a step is complete.
// @Summary Check a wizard step
// @Tags Draft
// @Produce json
// @Param step path int true "Step 1 to 5"
// @Success 200 {object} response.Data[dto.StepResponse]
// @Failure 400 {object} response.Error
// @Router /v1/draft/steps/{step} [get]
func (handler *Handler) GetStep(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStep")
	defer scope.End()

	step, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamStep))
	if err != nil {
		err = failure.Validation(validator.MessageInvalidInput, "step: must be a number")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	valid, err := handler.service.IsValid(ctx, middleware.SessionID(ctx), step)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.StepResponse{Step: step, Valid: valid})
}

// GetQuote prices the draft.
// @Summary Quote the draft
// @Tags Draft
// @Produce json
// @Success 200 {object} response.Data[any] "durationMin, price and formattedPrice"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/draft/quote [get]
func (handler *Handler) GetQuote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuote")
	defer scope.End()

	res, err := handler.service.Quote(ctx, middleware.SessionID(ctx))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Submit books the draft.
// @Summary Submit the draft
// @Tags Draft
// @Produce json
// @Success 200 {object} map[string]any "booking outcome"
// @Failure 409 {object} map[string]any "booking outcome"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/draft/submit [post]
func (handler *Handler) Submit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	res, err := handler.service.Submit(ctx, middleware.SessionID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit draft")

		response.WithError(writer, err)

		return
	}

	response.WithBody(writer, res.HTTPStatus(), res)
}

func (handler *Handler) respond(writer http.ResponseWriter, scope otel.Scope, fn func() (model.Draft, error)) {
	res, err := fn()
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
