package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"salon/infras/otel"
	bookingModel "salon/internal/domains/booking/model"
	bookingDto "salon/internal/domains/booking/model/dto"
	bookingService "salon/internal/domains/booking/service"
	catalogService "salon/internal/domains/catalog/service"
	"salon/internal/domains/draft/model"
	"salon/internal/domains/draft/model/dto"
	"salon/internal/domains/draft/repository"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/timezone"
	"salon/shared/validator"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Draft interface {
	Get(ctx context.Context, sessionID string) (model.Draft, error)
	Update(ctx context.Context, sessionID string, req dto.UpdateDraftRequest) (model.Draft, error)
	SetService(ctx context.Context, sessionID, serviceID string) (model.Draft, error)
	SetDesignText(ctx context.Context, sessionID, text string) (model.Draft, error)
	AddImage(ctx context.Context, sessionID string, image bookingModel.Image) (model.Draft, error)
	RemoveImage(ctx context.Context, sessionID string, index int) (model.Draft, error)
	SetLength(ctx context.Context, sessionID string, length bookingModel.Length) (model.Draft, error)
	SetDate(ctx context.Context, sessionID, date string) (model.Draft, error)
	SetTime(ctx context.Context, sessionID, clock string) (model.Draft, error)
	SetCustomer(ctx context.Context, sessionID string, patch dto.CustomerPatch) (model.Draft, error)
	SetStep(ctx context.Context, sessionID string, step int) (model.Draft, error)
	Reset(ctx context.Context, sessionID string) error
	IsValid(ctx context.Context, sessionID string, step int) (bool, error)
	Quote(ctx context.Context, sessionID string) (bookingModel.Quote, error)
	Submit(ctx context.Context, sessionID string) (bookingDto.CreateBookingResponse, error)
}

type serviceImpl struct {
	storage repository.Storage
	catalog catalogService.Catalog
	booking bookingService.Booking
	otel    otel.Otel
}

func New(storage repository.Storage, catalog catalogService.Catalog, booking bookingService.Booking, otel otel.Otel) Draft {
	return &serviceImpl{
		storage: storage,
		catalog: catalog,
		booking: booking,
		otel:    otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, sessionID string) (res model.Draft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Draft.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.load(ctx, sessionID)
}

func (s *serviceImpl) Update(ctx context.Context, sessionID string, req dto.UpdateDraftRequest) (model.Draft, error) {
	return s.mutate(ctx, sessionID, "Update", func(draft *model.Draft) error {
		req.Apply(draft)

		return nil
	})
}

func (s *serviceImpl) SetService(ctx context.Context, sessionID, serviceID string) (model.Draft, error) {
	return s.mutate(ctx, sessionID, "SetService", func(draft *model.Draft) error {
		draft.ServiceID = serviceID

		return nil
	})
}

func (s *serviceImpl) SetDesignText(ctx context.Context, sessionID, text string) (model.Draft, error) {
	return s.mutate(ctx, sessionID, "SetDesignText", func(draft *model.Draft) error {
		draft.DesignText = text

		return nil
	})
}

func (s *serviceImpl) AddImage(ctx context.Context, sessionID string, image bookingModel.Image) (model.Draft, error) {
	return s.mutate(ctx, sessionID, "AddImage", func(draft *model.Draft) error {
		draft.DesignImages = append(draft.DesignImages, image)

		return nil
	})
}

func (s *serviceImpl) RemoveImage(ctx context.Context, sessionID string, index int) (model.Draft, error) {
	return s.mutate(ctx, sessionID, "RemoveImage", func(draft *model.Draft) error {
		if !draft.RemoveImage(index) {
			return failure.NotFound(dto.MessageImageMissing) // nolint:wrapcheck
		}

		return nil
	})
}

func (s *serviceImpl) SetLength(ctx context.Context, sessionID string, length bookingModel.Length) (model.Draft, error) {
	return s.mutate(ctx, sessionID, "SetLength", func(draft *model.Draft) error {
		if !length.Valid() {
			return failure.Validation(validator.MessageInvalidInput, "length: must be one of small, medium, long") // nolint:wrapcheck
		}

		draft.Length = length

		return nil
	})
}

func (s *serviceImpl) SetDate(ctx context.Context, sessionID, date string) (model.Draft, error) {
	return s.mutate(ctx, sessionID, "SetDate", func(draft *model.Draft) error {
		draft.Date = date

		return nil
	})
}

func (s *serviceImpl) SetTime(ctx context.Context, sessionID, clock string) (model.Draft, error) {
	return s.mutate(ctx, sessionID, "SetTime", func(draft *model.Draft) error {
		draft.Time = clock

		return nil
	})
}

// SetCustomer merges the patch into the stored customer.
func (s *serviceImpl) SetCustomer(ctx context.Context, sessionID string, patch dto.CustomerPatch) (model.Draft, error) {
	return s.mutate(ctx, sessionID, "SetCustomer", func(draft *model.Draft) error {
		draft.Customer = patch.Apply(draft.Customer)

		return nil
	})
}

// SetStep always allows going back. Going forward needs every step being left to be valid.
func (s *serviceImpl) SetStep(ctx context.Context, sessionID string, step int) (model.Draft, error) {
	return s.mutate(ctx, sessionID, "SetStep", func(draft *model.Draft) error {
		if step < model.FirstStep || step > model.LastStep {
			return failure.Validation(validator.MessageInvalidInput, "step: must be between 1 and 5") // nolint:wrapcheck
		}

		if step > draft.CurrentStep && !draft.CanAdvance(step) {
			return failure.BadRequestFromString(dto.MessageStepLocked) // nolint:wrapcheck
		}

		draft.CurrentStep = step

		return nil
	})
}

func (s *serviceImpl) Reset(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Draft.Reset")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.storage.Delete(ctx, sessionID); err != nil {
		log.Error().Err(err).Msg("failed to reset draft")

		return failure.InternalFromString(dto.MessageDraftFailed) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) IsValid(ctx context.Context, sessionID string, step int) (valid bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Draft.IsValid")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}

	return draft.IsValid(step), nil
}

// Quote prices the draft the same way the booking will be priced.
func (s *serviceImpl) Quote(ctx context.Context, sessionID string) (res bookingModel.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Draft.Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.load(ctx, sessionID)
	if err != nil {
		return res, err
	}

	if draft.ServiceID == "" {
		return res, failure.Validation(validator.MessageInvalidInput, "serviceId: is required") // nolint:wrapcheck
	}

	service, err := s.catalog.Get(ctx, draft.ServiceID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return bookingModel.NewQuote(service.DurationMin, service.BasePrice, draft.Length), nil
}

// Submit books the draft. The draft survives a conflict or an error so the customer can retry.
func (s *serviceImpl) Submit(ctx context.Context, sessionID string) (res bookingDto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Draft.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.load(ctx, sessionID)
	if err != nil {
		return res, err
	}

	req, err := toBookingRequest(draft)
	if err != nil {
		return res, err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.booking.Create(ctx, req)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if res.Cleared() {
		if err := s.storage.Delete(ctx, sessionID); err != nil {
			log.Error().Err(err).Str("bookingId", res.BookingID).Msg("failed to clear submitted draft")
		}
	}

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, sessionID string) (model.Draft, error) {
	draft, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load draft")

		return draft, failure.InternalFromString(dto.MessageDraftFailed) // nolint:wrapcheck
	}

	return draft, nil
}

// mutate reads the stored draft, applies fn and writes it back. Nothing is written when fn fails.
func (s *serviceImpl) mutate(ctx context.Context, sessionID, operation string, fn func(draft *model.Draft) error) (res model.Draft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Draft."+operation)
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.load(ctx, sessionID)
	if err != nil {
		return res, err
	}

	if err = fn(&draft); err != nil {
		return res, err
	}

	if err = s.storage.Save(ctx, sessionID, draft); err != nil {
		log.Error().Err(err).Str("operation", operation).Msg("failed to save draft")

		return res, failure.InternalFromString(dto.MessageDraftFailed) // nolint:wrapcheck
	}

	return draft, nil
}

func toBookingRequest(draft model.Draft) (bookingDto.CreateBookingRequest, error) {
	req := bookingDto.CreateBookingRequest{
		ServiceID:  draft.ServiceID,
		Length:     draft.Length,
		DesignText: draft.DesignText,
	}

	for _, image := range draft.DesignImages {
		req.DesignImages = append(req.DesignImages, bookingDto.ImageRequest{URL: image.URL, Name: image.Name})
	}

	if draft.Customer != nil {
		req.Customer = bookingDto.CustomerRequest{
			FullName:  draft.Customer.FullName,
			Phone:     draft.Customer.Phone,
			Email:     draft.Customer.Email,
			Instagram: draft.Customer.Instagram,
		}
	}

	if draft.Date != "" && draft.Time != "" {
		start, err := timezone.ParseDayClock(draft.Date, draft.Time)
		if err != nil {
			return req, failure.Validation(validator.MessageInvalidInput, "startTime: "+strconv.Quote(draft.Date+" "+draft.Time)+" is not a valid date and time") // nolint:wrapcheck
		}

		req.StartTime = start.Format(constant.DateFormat)
	}

	return req, nil
}
