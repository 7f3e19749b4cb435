package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/infras/otel/mocks"
	bookingModel "salon/internal/domains/booking/model"
	bookingDto "salon/internal/domains/booking/model/dto"
	bookingMocks "salon/internal/domains/booking/service/mocks"
	catalogDto "salon/internal/domains/catalog/model/dto"
	catalogService "salon/internal/domains/catalog/service"
	catalogMocks "salon/internal/domains/catalog/service/mocks"
	draftMocks "salon/internal/domains/draft/mocks"
	"salon/internal/domains/draft/model"
	"salon/internal/domains/draft/model/dto"
	"salon/internal/domains/draft/repository"
	"salon/internal/domains/draft/service"
	"salon/shared/failure"
	"salon/shared/timezone"
)

const session = "session-a"

type fixture struct {
	storage repository.Storage
	catalog *catalogMocks.MockCatalog
	booking *bookingMocks.MockBooking
	svc     service.Draft
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		storage: repository.NewMemory(),
		catalog: catalogMocks.NewMockCatalog(ctrl),
		booking: bookingMocks.NewMockBooking(ctrl),
	}
	f.svc = service.New(f.storage, f.catalog, f.booking, mocks.NewOtel())

	return f
}

func ptr[T any](v T) *T {
	return &v
}

func fill(t *testing.T, f *fixture) {
	t.Helper()

	ctx := context.Background()

	_, err := f.svc.SetService(ctx, session, "svc-gel")
	require.NoError(t, err)
	_, err = f.svc.SetDesignText(ctx, session, "french tips")
	require.NoError(t, err)
	_, err = f.svc.SetLength(ctx, session, bookingModel.LengthMedium)
	require.NoError(t, err)
	_, err = f.svc.SetDate(ctx, session, "2025-03-14")
	require.NoError(t, err)
	_, err = f.svc.SetTime(ctx, session, "10:30")
	require.NoError(t, err)
	_, err = f.svc.SetCustomer(ctx, session, dto.CustomerPatch{FullName: ptr("Anna Muster"), Phone: ptr("+41791234567")})
	require.NoError(t, err)
}

func TestDraftService_Setters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.svc.Get(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, model.New(), draft)

	fill(t, f)

	_, err = f.svc.AddImage(ctx, session, bookingModel.Image{URL: "https://cdn.example.ch/designs/a.png", Name: "a.png"})
	require.NoError(t, err)

	draft, err = f.svc.Get(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "svc-gel", draft.ServiceID)
	assert.Equal(t, "french tips", draft.DesignText)
	assert.Equal(t, bookingModel.LengthMedium, draft.Length)
	assert.Equal(t, "2025-03-14", draft.Date)
	assert.Equal(t, "10:30", draft.Time)
	assert.Equal(t, &model.Customer{FullName: "Anna Muster", Phone: "+41791234567"}, draft.Customer)
	assert.Len(t, draft.DesignImages, 1)

	for step := model.FirstStep; step <= model.LastStep; step++ {
		valid, err := f.svc.IsValid(ctx, session, step)
		require.NoError(t, err)
		assert.True(t, valid, "step %d", step)
	}
}

func TestDraftService_SetCustomer_Merges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SetCustomer(ctx, session, dto.CustomerPatch{FullName: ptr("Anna"), Email: ptr("anna@example.ch")})
	require.NoError(t, err)

	draft, err := f.svc.SetCustomer(ctx, session, dto.CustomerPatch{Phone: ptr("0791234567"), FullName: ptr("Anna Muster")})
	require.NoError(t, err)

	assert.Equal(t, &model.Customer{FullName: "Anna Muster", Phone: "0791234567", Email: "anna@example.ch"}, draft.Customer)
}

func TestDraftService_IsValid_ReadsCurrentDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	valid, err := f.svc.IsValid(ctx, session, model.StepDesign)
	require.NoError(t, err)
	assert.False(t, valid)

	_, err = f.svc.AddImage(ctx, session, bookingModel.Image{URL: "https://a"})
	require.NoError(t, err)

	valid, err = f.svc.IsValid(ctx, session, model.StepDesign)
	require.NoError(t, err)
	assert.True(t, valid)

	_, err = f.svc.RemoveImage(ctx, session, 0)
	require.NoError(t, err)

	valid, err = f.svc.IsValid(ctx, session, model.StepDesign)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestDraftService_RemoveImage_OutOfRange(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.RemoveImage(context.Background(), session, 2)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestDraftService_SetLength_Invalid(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SetLength(context.Background(), session, bookingModel.Length("xl"))

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestDraftService_SetStep(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(t *testing.T, f *fixture)
		step     int
		wantStep int
		wantCode int
	}{
		{
			name:     "forward blocked on empty draft",
			step:     2,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "forward after service",
			prepare: func(t *testing.T, f *fixture) {
				_, err := f.svc.SetService(context.Background(), session, "svc-gel")
				require.NoError(t, err)
			},
			step:     2,
			wantStep: 2,
		},
		{
			name: "skipping ahead checks every step in between",
			prepare: func(t *testing.T, f *fixture) {
				_, err := f.svc.SetService(context.Background(), session, "svc-gel")
				require.NoError(t, err)
			},
			step:     4,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "jump to the last step on a full draft",
			prepare: func(t *testing.T, f *fixture) {
				fill(t, f)
			},
			step:     5,
			wantStep: 5,
		},
		{
			name:     "out of range",
			step:     6,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "same step",
			step:     1,
			wantStep: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.prepare != nil {
				tt.prepare(t, f)
			}

			draft, err := f.svc.SetStep(context.Background(), session, tt.step)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStep, draft.CurrentStep)
		})
	}
}

func TestDraftService_SetStep_BackwardsAlwaysAllowed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	fill(t, f)

	_, err := f.svc.SetStep(ctx, session, 5)
	require.NoError(t, err)

	_, err = f.svc.SetService(ctx, session, "")
	require.NoError(t, err)

	draft, err := f.svc.SetStep(ctx, session, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, draft.CurrentStep)
}

func TestDraftService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SetDesignText(ctx, session, "keep me")
	require.NoError(t, err)

	draft, err := f.svc.Update(ctx, session, dto.UpdateDraftRequest{
		ServiceID: ptr("svc-gel"),
		Length:    ptr(bookingModel.LengthLong),
		Customer:  &dto.CustomerPatch{Phone: ptr("0791234567")},
	})

	require.NoError(t, err)
	assert.Equal(t, "svc-gel", draft.ServiceID)
	assert.Equal(t, "keep me", draft.DesignText)
	assert.Equal(t, bookingModel.LengthLong, draft.Length)
	assert.Equal(t, "0791234567", draft.Customer.Phone)
}

func TestDraftService_Reset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	fill(t, f)

	require.NoError(t, f.svc.Reset(ctx, session))

	draft, err := f.svc.Get(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, model.New(), draft)
}

func TestDraftService_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := draftMocks.NewMockStorage(ctrl)
	svc := service.New(storage, catalogMocks.NewMockCatalog(ctrl), bookingMocks.NewMockBooking(ctrl), mocks.NewOtel())

	storage.EXPECT().Load(gomock.Any(), session).Return(model.New(), nil)
	storage.EXPECT().Save(gomock.Any(), session, gomock.Any()).Return(errors.New("connection refused"))

	_, err := svc.SetService(context.Background(), session, "svc-gel")

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Equal(t, dto.MessageDraftFailed, err.Error())

	storage.EXPECT().Load(gomock.Any(), session).Return(model.Draft{}, errors.New("connection refused"))

	_, err = svc.Get(context.Background(), session)

	require.Error(t, err)
	assert.Equal(t, dto.MessageDraftFailed, err.Error())
}

func TestDraftService_Quote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Quote(ctx, session)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	fill(t, f)

	f.catalog.EXPECT().Get(gomock.Any(), "svc-gel").Return(catalogDto.ServiceResponse{ID: "svc-gel", DurationMin: 60, BasePrice: 6500}, nil)

	quote, err := f.svc.Quote(ctx, session)

	require.NoError(t, err)
	assert.Equal(t, bookingModel.Quote{DurationMin: 70, Price: 7500, FormattedPrice: "CHF 75.00"}, quote)
}

func TestDraftService_Submit(t *testing.T) {
	tests := []struct {
		name      string
		result    bookingDto.CreateBookingResponse
		err       error
		wantKept  bool
		wantError bool
	}{
		{
			name:   "confirmed clears the draft",
			result: bookingDto.CreateBookingResponse{Status: bookingDto.OutcomeConfirmed, BookingID: "b-1", EventID: "evt-1"},
		},
		{
			name:   "needs manual clears the draft",
			result: bookingDto.CreateBookingResponse{Status: bookingDto.OutcomeNeedsManual, BookingID: "b-1"},
		},
		{
			name:   "dev confirmed clears the draft",
			result: bookingDto.CreateBookingResponse{Status: bookingDto.OutcomeDevConfirmed, BookingID: "b-1"},
		},
		{
			name:     "conflict keeps the draft",
			result:   bookingDto.CreateBookingResponse{Status: bookingDto.OutcomeConflict},
			wantKept: true,
		},
		{
			name:      "error keeps the draft",
			err:       failure.NotFound(catalogService.MessageServiceNotFound),
			wantKept:  true,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			fill(t, f)

			f.booking.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req bookingDto.CreateBookingRequest) (bookingDto.CreateBookingResponse, error) {
					assert.Equal(t, "svc-gel", req.ServiceID)
					assert.Equal(t, bookingModel.LengthMedium, req.Length)
					assert.Equal(t, "french tips", req.DesignText)
					assert.Equal(t, "Anna Muster", req.Customer.FullName)

					want, err := timezone.ParseDayClock("2025-03-14", "10:30")
					require.NoError(t, err)
					assert.Equal(t, want.Format("2006-01-02T15:04:05Z07:00"), req.StartTime)

					return tt.result, tt.err
				})

			res, err := f.svc.Submit(ctx, session)

			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.result.Status, res.Status)
			}

			draft, err := f.svc.Get(ctx, session)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKept, draft.ServiceID != "")
		})
	}
}

func TestDraftService_Submit_Incomplete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SetService(ctx, session, "svc-gel")
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, session)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestDraftService_Submit_BadClock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	fill(t, f)

	_, err := f.svc.SetTime(ctx, session, "25:99")
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, session)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
