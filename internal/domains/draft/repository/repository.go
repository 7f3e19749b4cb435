package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"salon/config"
	"salon/infras/otel"
	bookingModel "salon/internal/domains/booking/model"
	"salon/internal/domains/draft/model"
	"salon/shared"
	"salon/shared/cache"
	"salon/shared/constant"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	cacheDraft = "draft"

	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Storage keeps one draft per browser session. Load on an unknown session returns an empty draft.
type Storage interface {
	Load(ctx context.Context, sessionID string) (model.Draft, error)
	Save(ctx context.Context, sessionID string, draft model.Draft) error
	Delete(ctx context.Context, sessionID string) error
}

// New picks the backend configured in APP_DRAFT_STORAGE.
func New(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Storage {
	if cfg.App.Draft.Storage == StorageMemory {
		log.Warn().Msg("draft storage is in memory, drafts are lost on restart")

		return NewMemory()
	}

	return NewRedis(cache, cfg.App.Draft.TTLSeconds, otel)
}

type redisStorage struct {
	cache      cache.RedisCache
	ttlSeconds int
	otel       otel.Otel
}

func NewRedis(cache cache.RedisCache, ttlSeconds int, otel otel.Otel) Storage {
	return &redisStorage{
		cache:      cache,
		ttlSeconds: ttlSeconds,
		otel:       otel,
	}
}

func (r *redisStorage) Load(ctx context.Context, sessionID string) (draft model.Draft, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DraftLoad")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.cache.Get(ctx, shared.BuildCacheKey(cacheDraft, sessionID), &draft)
	if errors.Is(err, cache.Nil) {
		return model.New(), nil
	}

	if err != nil {
		return draft, fmt.Errorf("failed to load draft: %w", err)
	}

	if draft.DesignImages == nil {
		draft.DesignImages = model.New().DesignImages
	}

	if draft.CurrentStep < model.FirstStep {
		draft.CurrentStep = model.FirstStep
	}

	return draft, nil
}

func (r *redisStorage) Save(ctx context.Context, sessionID string, draft model.Draft) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DraftSave")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.cache.Save(ctx, shared.BuildCacheKey(cacheDraft, sessionID), draft, r.ttlSeconds); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

func (r *redisStorage) Delete(ctx context.Context, sessionID string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DraftDelete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.cache.Delete(ctx, shared.BuildCacheKey(cacheDraft, sessionID)); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}

type memoryStorage struct {
	mu     sync.RWMutex
	drafts map[string]model.Draft
}

func NewMemory() Storage {
	return &memoryStorage{drafts: map[string]model.Draft{}}
}

func (m *memoryStorage) Load(_ context.Context, sessionID string) (model.Draft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	draft, ok := m.drafts[sessionID]
	if !ok {
		return model.New(), nil
	}

	return clone(draft), nil
}

func (m *memoryStorage) Save(_ context.Context, sessionID string, draft model.Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.drafts[sessionID] = clone(draft)

	return nil
}

func (m *memoryStorage) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.drafts, sessionID)

	return nil
}

// clone detaches the slice and pointer fields so callers never share state with the map.
func clone(draft model.Draft) model.Draft {
	images := make(bookingModel.Images, len(draft.DesignImages))
	copy(images, draft.DesignImages)
	draft.DesignImages = images

	if draft.Customer != nil {
		customer := *draft.Customer
		draft.Customer = &customer
	}

	return draft
}
