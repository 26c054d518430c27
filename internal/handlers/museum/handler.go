package museum

import (
	"darshan/infras/otel"
	"darshan/internal/domains/museum/model"
	"darshan/internal/domains/museum/model/dto"
	"darshan/internal/domains/museum/service"
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
	service    service.Museum
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Museum, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/museums", handler.GetMuseums)
	router.Get("/museums/{id}", handler.GetMuseumByID)
	router.With(handler.middleware.APIKey).Patch("/museums/{id}", handler.UpdateMuseum)
}

// GetMuseums lists museums.
// @Summary List museums
// @Description Case-insensitive substring filter on name and location, paginated.
// @Tags Museum
// @Produce json
// @Param name query string false "Filter by name"
// @Param location query string false "Filter by location"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetMuseumsResponse
// @Failure 500 {object} response.Error
// @Router /v1/museums [get]
func (handler *Handler) GetMuseums(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMuseums")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	for _, field := range []string{model.FieldName, model.FieldLocation} {
		value := r.URL.Query().Get(field)
		if value == "" {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorLike,
			Value:    value,
			Table:    model.TableName,
		})
	}

	museums, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get museums")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, museums)
}

// GetMuseumByID returns one museum with its fee schedule.
// @Summary Get a museum
// @Tags Museum
// @Produce json
// @Param id path string true "Museum ID"
// @Success 200 {object} dto.MuseumResponse
// @Failure 404 {object} response.Error
// @Router /v1/museums/{id} [get]
func (handler *Handler) GetMuseumByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMuseumByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	museum, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("museum_id", id).Msg("failed to get museum")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, museum)
}

// UpdateMuseum edits fees and visiting information.
// @Summary Update a museum
// @Tags Museum
// @Accept json
// @Produce json
// @Param id path string true "Museum ID"
// @Param request body dto.UpdateMuseumRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/museums/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateMuseum(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMuseum")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMuseumRequest{}
	if err := validator.Validate(http.MaxBytesReader(w, r.Body, constant.RequestMaxBody), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("museum_id", id).Msg("failed to update museum")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Museum updated")

	response.WithMessage(w, http.StatusOK, "Museum updated successfully")
}
