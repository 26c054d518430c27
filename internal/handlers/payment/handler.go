package payment

import (
	"bytes"
	"darshan/config"
	"darshan/infras/otel"
	"darshan/internal/domains/ticket/model/dto"
	"darshan/internal/domains/ticket/service"
	"darshan/shared/constant"
	"darshan/shared/failure"
	"darshan/transport/http/response"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templates embed.FS

var paymentPage = template.Must(template.ParseFS(templates, "templates/payment.html"))

type Handler struct {
	service service.Ticket
	config  *config.Config
	otel    otel.Otel
}

type paymentPageData struct {
	Ticket         dto.PaymentViewResponse
	Currency       string
	PublishableKey string
	Error          string
}

func New(service service.Ticket, config *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		config:  config,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/payment-webhook", handler.Webhook)
	router.Get("/payment/{id}", handler.PaymentView)
}

// Webhook receives signed processor events.
// @Summary Payment processor webhook
// @Tags Payment
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Processor signature"
// @Success 200 {object} dto.WebhookResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/payment-webhook [post]
func (handler *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Webhook")
	defer scope.End()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constant.RequestMaxBody))
	if err != nil {
		err = failure.BadRequest(fmt.Errorf("failed to read webhook payload: %w", err))

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook payload")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.HandleWebhook(ctx, payload, r.Header.Get(constant.RequestHeaderStripeSignature))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to handle webhook")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("webhook.outcome", res.Outcome)

	response.WithJSON(w, http.StatusOK, res)
}

// PaymentView renders the checkout page of a ticket. The token comes from the checkout URL
// handed out at booking.
func (handler *Handler) PaymentView(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PaymentView")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	token := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamToken))

	data := paymentPageData{
		Currency:       strings.ToUpper(handler.config.Payment.Currency),
		PublishableKey: handler.config.Payment.Stripe.PublishableKey,
	}

	code := http.StatusOK

	view, err := handler.service.PaymentView(ctx, id, token)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("ticket_id", id).Msg("failed to load payment view")

		code = failure.GetCode(err)
		data.Error = failure.Message(err)

		if failure.GetKind(err) == failure.KindInternal {
			data.Error = constant.ResponseErrorInternal
		}
	}

	data.Ticket = view

	var body bytes.Buffer
	if err := paymentPage.Execute(&body, data); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render payment page")

		response.WithError(w, err)

		return
	}

	response.WithHTML(w, code, body.Bytes())
}
