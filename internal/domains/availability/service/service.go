package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"salon/config"
	"salon/infras/automation"
	"salon/infras/otel"
	"salon/internal/domains/availability/model"
	"salon/internal/domains/availability/model/dto"
	bookingService "salon/internal/domains/booking/service"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/timezone"
	"salon/shared/validator"
	"time"

	"github.com/rs/zerolog/log"
)

const nextDateOffsetDays = 7

type Availability interface {
	Get(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type Option func(*serviceImpl)

// WithClock replaces the wall clock used for the lead time.
func WithClock(now func() time.Time) Option {
	return func(s *serviceImpl) {
		s.now = now
	}
}

type serviceImpl struct {
	automation automation.Client
	booking    bookingService.Booking
	generator  Generator
	cfg        *config.Config
	otel       otel.Otel
	now        func() time.Time
}

func New(automation automation.Client, booking bookingService.Booking, cfg *config.Config, otel otel.Otel, opts ...Option) Availability {
	schedule := model.Schedule{
		OpeningHour:     cfg.Schedule.OpeningHour,
		ClosingHour:     cfg.Schedule.ClosingHour,
		SlotMinutes:     cfg.Schedule.SlotMinutes,
		LeadTimeMinutes: cfg.Schedule.LeadTimeMinutes,
		PaddingMinutes:  cfg.Schedule.PaddingMinutes,
	}

	svc := &serviceImpl{
		automation: automation,
		booking:    booking,
		generator:  NewGenerator(schedule, timezone.GetLocation()),
		cfg:        cfg,
		otel:       otel,
		now:        timezone.Now,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

// Get prefers the automation service and silently falls back to local generation.
// nextDate is always one week after the requested day.
func (s *serviceImpl) Get(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.DayFormat, req.Date)
	if err != nil {
		return res, failure.Validation(validator.MessageInvalidInput, "date: "+err.Error()) // nolint:wrapcheck
	}

	res.NextDate = day.AddDate(0, 0, nextDateOffsetDays).Format(constant.DayFormat)

	if s.cfg.HasAutomationAvailability() {
		external, err := s.automation.CheckAvailability(ctx, automation.AvailabilityRequest{
			Date:        req.Date,
			DurationMin: req.DurationMin,
		})
		if err == nil {
			res.Slots = make([]model.TimeSlot, 0, len(external.Slots))
			for _, slot := range external.Slots {
				res.Slots = append(res.Slots, model.TimeSlot{Time: slot.Time, Available: slot.Available})
			}

			return res, nil
		}

		log.Warn().Err(err).Str("date", req.Date).Msg("automation availability failed, generating slots locally")
	}

	res.Slots, err = s.generate(ctx, day, req.DurationMin)
	if err != nil {
		return res, err
	}

	return res, nil
}

func (s *serviceImpl) generate(ctx context.Context, day time.Time, durationMin int) ([]model.TimeSlot, error) {
	open, closing := s.generator.Window(day)
	padding := s.generator.Padding()

	busy, err := s.booking.GetBlocking(ctx, open.Add(-padding), closing.Add(padding))
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for availability")

		return nil, failure.InternalFromString(dto.MessageAvailabilityFailed) // nolint:wrapcheck
	}

	return s.generator.Generate(day, durationMin, s.now(), busy), nil
}
