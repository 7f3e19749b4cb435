package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/config"
	"salon/infras/otel/mocks"
	bookingModel "salon/internal/domains/booking/model"
	"salon/internal/domains/draft/model"
	"salon/internal/domains/draft/repository"
	"salon/shared/cache"
	cacheMocks "salon/shared/cache/mocks"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemory()

	draft, err := storage.Load(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, model.New(), draft)

	draft.ServiceID = "svc-gel"
	draft.DesignImages = append(draft.DesignImages, bookingModel.Image{URL: "https://a"})
	draft.Customer = &model.Customer{FullName: "Anna"}
	require.NoError(t, storage.Save(ctx, "session-a", draft))

	draft.DesignImages[0].URL = "https://changed"
	draft.Customer.FullName = "Changed"

	stored, err := storage.Load(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, "svc-gel", stored.ServiceID)
	assert.Equal(t, "https://a", stored.DesignImages[0].URL)
	assert.Equal(t, "Anna", stored.Customer.FullName)

	other, err := storage.Load(ctx, "session-b")
	require.NoError(t, err)
	assert.Empty(t, other.ServiceID)

	require.NoError(t, storage.Delete(ctx, "session-a"))

	stored, err = storage.Load(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, model.New(), stored)
}

func TestRedisStorage_Load(t *testing.T) {
	tests := []struct {
		name    string
		cached  model.Draft
		getErr  error
		want    model.Draft
		wantErr bool
	}{
		{
			name:   "stored draft",
			cached: model.Draft{ServiceID: "svc-gel", DesignImages: bookingModel.Images{}, CurrentStep: 2},
			want:   model.Draft{ServiceID: "svc-gel", DesignImages: bookingModel.Images{}, CurrentStep: 2},
		},
		{
			name:   "normalises an old entry",
			cached: model.Draft{ServiceID: "svc-gel"},
			want:   model.Draft{ServiceID: "svc-gel", DesignImages: bookingModel.Images{}, CurrentStep: 1},
		},
		{
			name:   "missing key",
			getErr: fmt.Errorf("failed to get cache value: %w", cache.Nil),
			want:   model.New(),
		},
		{
			name:    "redis down",
			getErr:  errors.New("connection refused"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockCache.EXPECT().
				Get(gomock.Any(), "draft:session-a", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, value any) error {
					if tt.getErr != nil {
						return tt.getErr
					}

					*value.(*model.Draft) = tt.cached

					return nil
				})

			storage := repository.NewRedis(mockCache, 3600, mocks.NewOtel())

			draft, err := storage.Load(context.Background(), "session-a")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, draft)
		})
	}
}

func TestRedisStorage_SaveDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	draft := model.New()

	mockCache.EXPECT().Save(gomock.Any(), "draft:session-a", draft, 3600).Return(nil)
	mockCache.EXPECT().Delete(gomock.Any(), "draft:session-a").Return(errors.New("connection refused"))

	storage := repository.NewRedis(mockCache, 3600, mocks.NewOtel())

	assert.NoError(t, storage.Save(context.Background(), "session-a", draft))
	assert.Error(t, storage.Delete(context.Background(), "session-a"))
}

func TestNew_PicksBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Draft.Storage = repository.StorageMemory

	storage := repository.New(cfg, nil, mocks.NewOtel())

	require.NoError(t, storage.Save(context.Background(), "s", model.New()))
}
