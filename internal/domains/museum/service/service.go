package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Museum=MockMuseumService

import (
	"context"
	"darshan/config"
	"darshan/infras/otel"
	"darshan/internal/domains/museum/model"
	"darshan/internal/domains/museum/model/dto"
	"darshan/internal/domains/museum/repository"
	"darshan/shared"
	"darshan/shared/cache"
	"darshan/shared/constant"
	gDto "darshan/shared/dto"
	"darshan/shared/failure"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	CacheGetMuseum    = "museum:get"
	CacheGetAllMuseum = "museum:get_all"
	CacheCountMuseum  = "museum:count"

	errMuseumNotFound = "museum not found"
)

type Museum interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMuseumsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.MuseumResponse, error)
	Update(ctx context.Context, req dto.UpdateMuseumRequest, id string) error
}

type serviceImpl struct {
	repo  repository.Museum
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Museum, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Museum {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMuseumsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".museum.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(CacheGetAllMuseum, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for museums")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	museums, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get museums")

		return res, fmt.Errorf("failed to get museums: %w", err)
	}

	res.FromModels(museums, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save museums to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".museum.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(CacheCountMuseum, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count museums")

		return 0, fmt.Errorf("failed to count museums: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save museum count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MuseumResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".museum.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, parseErr := uuid.Parse(id); parseErr != nil {
		return res, failure.NotFound(errMuseumNotFound) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(CacheGetMuseum, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	museum, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("museum_id", id).Msg("failed to get museum")

		return res, fmt.Errorf("failed to get museum: %w", err)
	}

	if museum.ID == "" {
		return res, failure.NotFound(errMuseumNotFound) //nolint:wrapcheck
	}

	res.FromModel(museum)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save museum to cache")
		}
	}()

	return res, nil
}

// Update edits the fee schedule and visiting information. The name is the
// booking lookup key and cannot be changed here.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMuseumRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".museum.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.Validation("update request cannot be empty") //nolint:wrapcheck
	}

	if _, parseErr := uuid.Parse(id); parseErr != nil {
		return failure.NotFound(errMuseumNotFound) //nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)
	if actor == "" {
		actor = constant.ContextSystem
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if museum exists")

		return fmt.Errorf("failed to check if museum exists: %w", err)
	}

	if !exist {
		return failure.NotFound(errMuseumNotFound) //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, actor), filter); err != nil {
		log.Error().Err(err).Msg("failed to update museum")

		return fmt.Errorf("failed to update museum: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, CacheGetMuseum)
		shared.InvalidateCaches(c, s.cache, CacheGetAllMuseum)
	}()

	return nil
}
