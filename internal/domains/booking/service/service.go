package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"salon/config"
	"salon/infras/automation"
	"salon/infras/kafka"
	"salon/infras/otel"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/repository"
	catalogService "salon/internal/domains/catalog/service"
	customerModel "salon/internal/domains/customer/model"
	customerRepo "salon/internal/domains/customer/repository"
	"salon/shared"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/failure"
	gModel "salon/shared/model"
	"salon/shared/timezone"
	"salon/shared/validator"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	// Create persists a validated submission and resolves it to one of the four outcomes.
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest) error
	// GetBlocking lists pending and confirmed bookings intersecting [from, to).
	GetBlocking(ctx context.Context, from, to time.Time) ([]model.Booking, error)
}

type serviceImpl struct {
	repo         repository.Booking
	customerRepo customerRepo.Customer
	catalog      catalogService.Catalog
	automation   automation.Client
	kafka        kafka.Client
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	customerRepo customerRepo.Customer,
	catalog catalogService.Catalog,
	automation automation.Client,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customerRepo,
		catalog:      catalog,
		automation:   automation,
		kafka:        kafka,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	service, err := s.catalog.Get(ctx, req.ServiceID)
	if err != nil {
		if failure.GetCode(err) == http.StatusNotFound {
			return res, err //nolint:wrapcheck
		}

		log.Error().Err(err).Str("serviceId", req.ServiceID).Msg("failed to get service")

		return res, failure.InternalFromString(dto.MessageBookingFailed) // nolint:wrapcheck
	}

	startTime, err := time.Parse(constant.DateFormat, req.StartTime)
	if err != nil {
		return res, failure.Validation(validator.MessageInvalidInput, "startTime: "+err.Error()) // nolint:wrapcheck
	}

	quote := model.NewQuote(service.DurationMin, service.BasePrice, req.Length)
	now := timezone.Now()

	customerID, err := s.customerRepo.Upsert(ctx, toCustomer(req.Customer, now))
	if err != nil {
		log.Error().Err(err).Msg("failed to upsert customer")

		return res, failure.InternalFromString(dto.MessageBookingFailed) // nolint:wrapcheck
	}

	booking := req.ToModel(customerID, startTime, quote.DurationMin, quote.Price, now)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, failure.InternalFromString(dto.MessageBookingFailed) // nolint:wrapcheck
	}

	s.publish(ctx, dto.CreatedEvent(booking, now))

	if !s.cfg.HasAutomationBooking() {
		return s.selfConfirm(ctx, booking.ID)
	}

	return s.delegate(ctx, req, service.Name, booking), nil
}

// delegate makes the single confirmation attempt. Every failure ends in manual review.
func (s *serviceImpl) delegate(ctx context.Context, req dto.CreateBookingRequest, serviceName string, booking model.Booking) dto.CreateBookingResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".delegate")
	defer scope.End()

	needsManual := dto.CreateBookingResponse{
		Status:    dto.OutcomeNeedsManual,
		BookingID: booking.ID,
		Message:   dto.MessageNeedsManual,
	}

	result, err := s.automation.ConfirmBooking(ctx, toAutomationRequest(req, serviceName, booking))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", booking.ID).Msg("automation booking confirmation failed")

		return needsManual
	}

	switch {
	case result.Status == string(model.StatusConfirmed) && result.EventID != "":
		if err = s.setStatus(ctx, booking.ID, model.StatusConfirmed, result.EventID, constant.ActorAutomation); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to store booking confirmation")

			return needsManual
		}

		return dto.CreateBookingResponse{
			Status:    dto.OutcomeConfirmed,
			BookingID: booking.ID,
			EventID:   result.EventID,
		}
	case result.Status == string(dto.OutcomeConflict):
		return dto.CreateBookingResponse{
			Status:           dto.OutcomeConflict,
			Message:          dto.MessageConflict,
			AlternativeSlots: result.Slots,
		}
	default:
		log.Warn().Str("bookingId", booking.ID).Str("status", result.Status).Msg("booking requires manual review")

		return needsManual
	}
}

func (s *serviceImpl) selfConfirm(ctx context.Context, bookingID string) (dto.CreateBookingResponse, error) {
	if err := s.setStatus(ctx, bookingID, model.StatusConfirmed, "", constant.ActorSystem); err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to confirm booking locally")

		return dto.CreateBookingResponse{}, failure.InternalFromString(dto.MessageBookingFailed) // nolint:wrapcheck
	}

	return dto.CreateBookingResponse{
		Status:    dto.OutcomeDevConfirmed,
		BookingID: bookingID,
		Message:   dto.MessageDevConfirmed,
	}, nil
}

// UpdateStatus overwrites status and event id of an existing booking. A missing event id clears it.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.BookingID == constant.Empty || req.Status == constant.Empty {
		return failure.MissingFieldsError //nolint:wrapcheck
	}

	if !req.Status.Valid() {
		return failure.BadRequestFromString(dto.MessageInvalidStatus) // nolint:wrapcheck
	}

	if _, err = uuid.Parse(req.BookingID); err != nil {
		return failure.NotFound(dto.MessageBookingMissing) // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(req.BookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return failure.InternalFromString(dto.MessageUpdateFailed) // nolint:wrapcheck
	}

	if !exist {
		return failure.NotFound(dto.MessageBookingMissing) // nolint:wrapcheck
	}

	if err = s.setStatus(ctx, req.BookingID, req.Status, req.EventID, constant.ActorAutomation); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return failure.InternalFromString(dto.MessageUpdateFailed) // nolint:wrapcheck
	}

	log.Info().Str("bookingId", req.BookingID).Str("status", string(req.Status)).Msg("booking status updated")

	return nil
}

func (s *serviceImpl) setStatus(ctx context.Context, bookingID string, status model.Status, eventID, actor string) error {
	var event *string
	if eventID != constant.Empty {
		event = &eventID
	}

	fields := shared.StampModified(map[string]any{
		model.FieldStatus:  status,
		model.FieldEventID: event,
	}, actor)

	if err := s.repo.Update(ctx, fields, shared.FilterByID(bookingID, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	s.publish(ctx, dto.StatusChangedEvent(bookingID, status, eventID, timezone.Now()))

	return nil
}

func (s *serviceImpl) GetBlocking(ctx context.Context, from, to time.Time) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBlocking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    []model.Status{model.StatusPending, model.StatusConfirmed},
				Operator: gDto.FilterOperatorIn,
			},
			gDto.Filter{
				ArgName:  "range_end",
				Field:    model.FieldStartTime,
				Value:    to,
				Operator: gDto.FilterOperatorLess,
			},
			gDto.Filter{
				ArgName:  "range_start",
				Field:    model.FieldEndTime,
				Value:    from,
				Operator: gDto.FilterOperatorGreater,
			},
		},
	}

	params := gDto.QueryParams{Sorts: []gDto.Sort{{Field: model.FieldStartTime, Dir: gDto.SortDirAsc}}}

	res, err = s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocking bookings")

		return res, fmt.Errorf("failed to get blocking bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) publish(ctx context.Context, event dto.Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic, kafka.Message{
			Key:     event.BookingID,
			Value:   event,
			Headers: map[string]string{kafka.HeaderEventType: event.Type},
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Str("type", event.Type).Msg("failed to publish booking event")
		}
	}()
}

func toCustomer(req dto.CustomerRequest, now time.Time) customerModel.Customer {
	customer := customerModel.Customer{
		ID:       uuid.NewString(),
		FullName: req.FullName,
		Phone:    req.Phone,
		Metadata: gModel.NewMetadata(now, constant.SourceWebsite),
	}

	if req.Email != constant.Empty {
		customer.Email = &req.Email
	}

	if req.Instagram != constant.Empty {
		customer.Instagram = &req.Instagram
	}

	return customer
}

func toAutomationRequest(req dto.CreateBookingRequest, serviceName string, booking model.Booking) automation.BookingRequest {
	images := make([]automation.Image, 0, len(booking.DesignImages))
	for _, image := range booking.DesignImages {
		images = append(images, automation.Image{URL: image.URL, Name: image.Name})
	}

	return automation.BookingRequest{
		BookingID:    booking.ID,
		ServiceID:    booking.ServiceID,
		ServiceName:  serviceName,
		StartTime:    req.StartTime,
		EndTime:      booking.EndTime.UTC().Format(time.RFC3339),
		Length:       string(booking.Length),
		DesignText:   booking.DesignText,
		DesignImages: images,
		Customer: automation.Customer{
			FullName:  req.Customer.FullName,
			Phone:     req.Customer.Phone,
			Email:     req.Customer.Email,
			Instagram: req.Customer.Instagram,
		},
		Source: booking.Source,
	}
}
