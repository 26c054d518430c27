package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Event=MockEventService

import (
	"context"
	"darshan/config"
	"darshan/infras/otel"
	"darshan/internal/domains/event/model"
	"darshan/internal/domains/event/model/dto"
	"darshan/internal/domains/event/repository"
	museumModel "darshan/internal/domains/museum/model"
	museumRepo "darshan/internal/domains/museum/repository"
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
	CacheGetAllEvent = "event:get_all"
)

type Event interface {
	ListByMuseum(ctx context.Context, museumID string, req gDto.QueryParams) (dto.GetEventsResponse, error)
	Create(ctx context.Context, museumID string, req dto.CreateEventRequest) (dto.EventResponse, error)
}

type serviceImpl struct {
	repo       repository.Event
	museumRepo museumRepo.Museum
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Event, museumRepo museumRepo.Museum, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Event {
	return &serviceImpl{
		repo:       repo,
		museumRepo: museumRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) ListByMuseum(ctx context.Context, museumID string, req gDto.QueryParams) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.ListByMuseum")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureMuseum(ctx, museumID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(museumID, model.FieldMuseumID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(CacheGetAllEvent, museumID), req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("museum_id", museumID).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	if req.SortBy == "" {
		req.SortBy = model.FieldStartsAt
		req.SortDir = gDto.SortDirAsc
	}

	events, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Str("museum_id", museumID).Msg("failed to get events")

		return res, fmt.Errorf("failed to get events: %w", err)
	}

	res.FromModels(events, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save events to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, museumID string, req dto.CreateEventRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureMuseum(ctx, museumID); err != nil {
		return res, err
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)
	if actor == "" {
		actor = constant.ContextSystem
	}

	event, err := req.ToModel(museumID, actor)
	if err != nil {
		return res, failure.Validation("starts_at must match the format " + constant.DateFormat) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, event); err != nil {
		log.Error().Err(err).Str("museum_id", museumID).Msg("failed to create event")

		return res, fmt.Errorf("failed to create event: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(CacheGetAllEvent, museumID))
	}()

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) ensureMuseum(ctx context.Context, museumID string) error {
	if _, err := uuid.Parse(museumID); err != nil {
		return failure.NotFound("museum not found") //nolint:wrapcheck
	}

	exist, err := s.museumRepo.Exist(ctx, shared.FilterByID(museumID, museumModel.FieldID, museumModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("museum_id", museumID).Msg("failed to check if museum exists")

		return fmt.Errorf("failed to check if museum exists: %w", err)
	}

	if !exist {
		return failure.NotFound("museum not found") //nolint:wrapcheck
	}

	return nil
}
