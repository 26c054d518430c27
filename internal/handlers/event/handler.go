package event

import (
	"darshan/infras/otel"
	"darshan/internal/domains/event/model/dto"
	"darshan/internal/domains/event/service"
	"darshan/shared/constant"
	gDto "darshan/shared/dto"
	"darshan/shared/validator"
	"darshan/transport/http/middleware"
	"darshan/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Event
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Event, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/museums/{id}/events", handler.GetEvents)
	router.With(handler.middleware.APIKey).Post("/museums/{id}/events", handler.CreateEvent)
}

// GetEvents lists the events of one museum, earliest first.
// @Summary List museum events
// @Tags Event
// @Produce json
// @Param id path string true "Museum ID"
// @Success 200 {object} dto.GetEventsResponse
// @Failure 404 {object} response.Error
// @Router /v1/museums/{id}/events [get]
func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	museumID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	events, err := handler.service.ListByMuseum(ctx, museumID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("museum_id", museumID).Msg("failed to get events")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, events)
}

func (handler *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	museumID := chi.URLParam(r, constant.RequestParamID)

	req := dto.CreateEventRequest{}
	if err := validator.Validate(http.MaxBytesReader(w, r.Body, constant.RequestMaxBody), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	event, err := handler.service.Create(ctx, museumID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("museum_id", museumID).Msg("failed to create event")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, event)
}
