package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"salon/config"
	"salon/infras/otel"
	"salon/internal/domains/catalog/model"
	"salon/internal/domains/catalog/model/dto"
	"salon/internal/domains/catalog/repository"
	"salon/shared"
	"salon/shared/cache"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetService    = "catalog:get"
	cacheGetAllService = "catalog:gets"

	MessageServiceNotFound = "Service not found"
)

type Catalog interface {
	GetAll(ctx context.Context) (dto.GetServicesResponse, error)
	Get(ctx context.Context, id string) (dto.ServiceResponse, error)
	Invalidate(ctx context.Context)
}

type serviceImpl struct {
	repo  repository.Service
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Service, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll lists the active services ordered by category, then name.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllService)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	params := gDto.QueryParams{
		Sorts: []gDto.Sort{
			{Field: model.FieldCategory, Dir: gDto.SortDirAsc},
			{Field: model.FieldName, Dir: gDto.SortDirAsc},
		},
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

// Get returns the service with the given id whether it is active or not.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = uuid.Parse(id); err != nil {
		return res, failure.NotFound(MessageServiceNotFound) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetService, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for service")

		return res, nil
	}

	service, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty {
		return res, failure.NotFound(MessageServiceNotFound) // nolint:wrapcheck
	}

	res.FromModel(service)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service to cache")
		}
	}()

	return res, nil
}

// Invalidate drops every cached catalog entry, used after the catalog is reseeded.
func (s *serviceImpl) Invalidate(ctx context.Context) {
	for _, prefix := range []string{cacheGetAllService, cacheGetService} {
		if err := s.cache.Clear(ctx, shared.CacheKeyPattern(prefix)); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate catalog cache")
		}
	}
}
