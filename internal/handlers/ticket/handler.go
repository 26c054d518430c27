package ticket

import (
	"darshan/infras/otel"
	"darshan/internal/domains/ticket/model/dto"
	"darshan/internal/domains/ticket/service"
	"darshan/shared/constant"
	"darshan/shared/validator"
	"darshan/transport/http/middleware"
	"darshan/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// singular prefix kept for clients of the first release
var prefixes = []string{"/tickets", "/ticket"}

type Handler struct {
	service    service.Ticket
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Ticket, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	for _, prefix := range prefixes {
		router.Route(prefix, func(router chi.Router) {
			router.Post("/", handler.BookTicket)
			router.With(handler.middleware.APIKey).Get("/summary", handler.GetSummary)
			router.Post("/{id}/verify", handler.VerifyPayment)
			router.Post("/{id}/verify-entry", handler.VerifyEntry)
			router.Post("/{id}/payment-intent", handler.CreatePaymentIntent)
		})
	}
}

// BookTicket prices and stores a pending ticket.
// @Summary Book a ticket
// @Tags Ticket
// @Accept json
// @Produce json
// @Param request body dto.CreateTicketRequest true "Booking request"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/tickets [post]
func (handler *Handler) BookTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookTicket")
	defer scope.End()

	req := dto.CreateTicketRequest{}
	if err := validator.Validate(http.MaxBytesReader(w, r.Body, constant.RequestMaxBody), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("museum_name", req.MuseumName).Msg("failed to book ticket")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket booked")

	response.WithJSON(w, http.StatusCreated, booking)
}

// VerifyPayment settles a ticket against a processor transaction.
// @Summary Verify a payment
// @Tags Ticket
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param request body dto.VerifyPaymentRequest true "Transaction"
// @Success 200 {object} dto.VerifyPaymentResponse
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/tickets/{id}/verify [post]
func (handler *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.VerifyPaymentRequest{}
	if err := validator.Validate(http.MaxBytesReader(w, r.Body, constant.RequestMaxBody), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.VerifyPayment(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("ticket_id", id).Msg("failed to verify payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) VerifyEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyEntry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.VerifyEntryRequest{}
	if err := validator.Validate(http.MaxBytesReader(w, r.Body, constant.RequestMaxBody), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.VerifyEntry(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("ticket_id", id).Msg("entry verification failed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePaymentIntent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.CreatePaymentIntent(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("ticket_id", id).Msg("failed to create payment intent")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetSummary reports sales totals.
// @Summary Sales summary
// @Tags Ticket
// @Produce json
// @Param museum_id query string false "Museum ID"
// @Param payment_status query string false "Payment status"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} response.Error
// @Router /v1/tickets/summary [get]
// @Security ApiKeyAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	query := r.URL.Query()

	req := dto.SummaryRequest{
		MuseumID:      query.Get(constant.RequestParamMuseumID),
		PaymentStatus: query.Get(constant.RequestParamPaymentStatus),
	}
	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate summary query")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Summary(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
