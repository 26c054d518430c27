package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"
	"darshan/config"
	"darshan/infras/otel"
	"darshan/shared/constant"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	MetadataTicketID = "ticket_id"

	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentCanceled  = "payment_intent.canceled"
	EventChargeRefunded   = "charge.refunded"

	defaultTimeout   = 10 * time.Second
	defaultTolerance = 300 * time.Second
	minorUnits       = 100
)

var (
	ErrDisabled         = errors.New("payment processor disabled")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedEvent   = errors.New("malformed webhook event")
)

// Intent is the processor side of a checkout.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// Event is a verified webhook notification. TicketID is empty when the
// processor object carries no ticket metadata.
type Event struct {
	ID              string
	Type            string
	TicketID        string
	PaymentIntentID string
}

type Processor interface {
	Enabled() bool
	CreateIntent(ctx context.Context, ticketID string, amount decimal.Decimal) (Intent, error)
	ParseWebhook(payload []byte, signature string) (Event, error)
}

type stripeProcessor struct {
	api           *client.API
	currency      string
	webhookSecret string
	tolerance     time.Duration
	timeout       time.Duration
	otel          otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Processor {
	timeout := time.Duration(cfg.Payment.Stripe.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	tolerance := time.Duration(cfg.Payment.Stripe.WebhookToleranceSeconds) * time.Second
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}

	currency := strings.ToLower(cfg.Payment.Currency)
	if currency == "" {
		currency = string(stripe.CurrencyINR)
	}

	processor := &stripeProcessor{
		currency:      currency,
		webhookSecret: cfg.Payment.Stripe.WebhookSecret,
		tolerance:     tolerance,
		timeout:       timeout,
		otel:          otel,
	}

	if cfg.Payment.Stripe.Enable && cfg.Payment.Stripe.SecretKey != "" {
		processor.api = &client.API{}
		processor.api.Init(cfg.Payment.Stripe.SecretKey, nil)

		log.Info().Str("currency", currency).Msg("Stripe payment processor initialized")
	} else {
		log.Warn().Msg("Stripe disabled, bookings will not create payment intents")
	}

	return processor
}

func (p *stripeProcessor) Enabled() bool {
	return p.api != nil
}

// CreateIntent creates a payment intent for the ticket total. The ticket id is
// both the idempotency key and the metadata the webhook resolves the ticket from.
func (p *stripeProcessor) CreateIntent(ctx context.Context, ticketID string, amount decimal.Decimal) (res Intent, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".stripe.CreateIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !p.Enabled() {
		return res, ErrDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount.Mul(decimal.NewFromInt(minorUnits)).Round(0).IntPart()),
		Currency: stripe.String(p.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata(MetadataTicketID, ticketID)
	params.SetIdempotencyKey("ticket-intent-" + ticketID)

	scope.SetAttributes(map[string]any{
		"payment.ticket_id": ticketID,
		"payment.amount":    amount.StringFixed(2),
		"payment.currency":  p.currency,
	})

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		log.Error().Err(err).Str("ticket_id", ticketID).Msg("failed to create payment intent")

		return res, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}, nil
}

// ParseWebhook verifies the Stripe-Signature header before decoding anything.
func (p *stripeProcessor) ParseWebhook(payload []byte, signature string) (Event, error) {
	if p.webhookSecret == "" || signature == "" {
		return Event{}, ErrInvalidSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret, webhook.ConstructEventOptions{
		Tolerance:                p.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		log.Warn().Err(err).Msg("stripe webhook signature verification failed")

		return Event{}, fmt.Errorf("%w: %s", ErrInvalidSignature, err.Error())
	}

	res := Event{
		ID:   event.ID,
		Type: string(event.Type),
	}

	if event.Data == nil || len(event.Data.Raw) == 0 {
		return res, ErrMalformedEvent
	}

	switch res.Type {
	case EventPaymentSucceeded, EventPaymentCanceled:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return res, fmt.Errorf("%w: %s", ErrMalformedEvent, err.Error())
		}

		res.PaymentIntentID = intent.ID
		res.TicketID = intent.Metadata[MetadataTicketID]
	case EventChargeRefunded:
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return res, fmt.Errorf("%w: %s", ErrMalformedEvent, err.Error())
		}

		if charge.PaymentIntent != nil {
			res.PaymentIntentID = charge.PaymentIntent.ID
		}

		res.TicketID = charge.Metadata[MetadataTicketID]
	}

	return res, nil
}
